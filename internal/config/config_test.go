package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyplan/qengine/internal/problemgen"
	"github.com/studyplan/qengine/internal/skill"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, uint64(0), cfg.Engine.Seed)

	gen := cfg.Generator()
	def := problemgen.DefaultConfig()
	assert.Equal(t, def.WeakShare, gen.WeakShare)
	assert.Equal(t, def.RecentWindow, gen.RecentWindow)
	assert.Equal(t, def.MaxOptions, gen.MaxOptions)
	assert.Equal(t, skill.DefaultLabels(), gen.Labels)
	assert.Len(t, gen.Validators, len(def.Validators))
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
engine:
  seed: 42
  weak_share: 0.5
categories:
  grammar: [grammar, dilbilgisi]
`)
	t.Setenv("QENGINE_ENGINE_RECENT_WINDOW", "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, uint64(42), cfg.Engine.Seed)
	assert.Equal(t, 12, cfg.Engine.RecentWindow)

	labels, err := cfg.LabelMap()
	require.NoError(t, err)
	assert.Equal(t, []string{"grammar", "dilbilgisi"}, labels[skill.CategoryGrammar])
	assert.Equal(t, []string{"reading"}, labels[skill.CategoryReading])

	gen := cfg.Generator()
	assert.InDelta(t, 0.5, gen.WeakShare, 1e-9)
	c, ok := gen.Labels.Resolve("Dilbilgisi testi")
	assert.True(t, ok)
	assert.Equal(t, skill.CategoryGrammar, c)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"weak share", "engine:\n  weak_share: 1.5\n"},
		{"max options", "engine:\n  max_options: 6\n"},
		{"start difficulty", "engine:\n  general_start_difficulty: 0\n"},
		{"unknown category", "categories:\n  history: [history]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
