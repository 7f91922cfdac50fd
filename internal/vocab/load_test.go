package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Sample(t *testing.T) {
	entries, err := LoadFile("../../data/vocabulary.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	found := FindByWords(entries, []string{"Abundant"})
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].Difficulty)
	assert.Contains(t, found[0].RelatedWords, "plentiful")
}

func TestLoadFile_EmptyWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  - word: ok\n  - definition: missing\n"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "entry 1")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
