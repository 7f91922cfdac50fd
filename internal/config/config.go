package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/studyplan/qengine/internal/problemgen"
	"github.com/studyplan/qengine/internal/skill"
)

// EnvPrefix prefixes every environment override, e.g. QENGINE_LOG_LEVEL.
const EnvPrefix = "QENGINE"

// Config holds all configuration for the engine and CLI.
type Config struct {
	Log        LogConfig           `mapstructure:"log"`
	Database   DatabaseConfig      `mapstructure:"database"`
	Templates  TemplatesConfig     `mapstructure:"templates"`
	Engine     EngineConfig        `mapstructure:"engine"`
	Categories map[string][]string `mapstructure:"categories"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig holds database configuration. An empty Path means the
// store's default location.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// TemplatesConfig locates the template bank file.
type TemplatesConfig struct {
	Path string `mapstructure:"path"`
}

// EngineConfig tunes question generation.
type EngineConfig struct {
	// Seed makes generation reproducible; 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`

	WeakShare              float64 `mapstructure:"weak_share"`
	WeakThreshold          float64 `mapstructure:"weak_threshold"`
	LearningZone           float64 `mapstructure:"learning_zone"`
	RecentWindow           int     `mapstructure:"recent_window"`
	GeneralStartDifficulty int     `mapstructure:"general_start_difficulty"`
	WeakAreaDrillSize      int     `mapstructure:"weak_area_drill_size"`
	MaxOptions             int     `mapstructure:"max_options"`
	VocabDistractors       int     `mapstructure:"vocab_distractors"`
	DrillDistractorWords   int     `mapstructure:"drill_distractor_words"`
}

// Load reads configuration from defaults, an optional config file and
// QENGINE_* environment variables, in increasing priority. With an empty
// path it looks for qengine.yaml in the working directory and in
// $XDG_CONFIG_HOME/qengine; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("qengine")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "qengine"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults mirrors problemgen.DefaultConfig so that a bare install
// behaves like the library defaults.
func setDefaults(v *viper.Viper) {
	def := problemgen.DefaultConfig()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.path", "")
	v.SetDefault("templates.path", "templates.yaml")

	v.SetDefault("engine.seed", 0)
	v.SetDefault("engine.weak_share", def.WeakShare)
	v.SetDefault("engine.weak_threshold", def.WeakThreshold)
	v.SetDefault("engine.learning_zone", def.LearningZone)
	v.SetDefault("engine.recent_window", def.RecentWindow)
	v.SetDefault("engine.general_start_difficulty", def.GeneralStartDifficulty)
	v.SetDefault("engine.weak_area_drill_size", def.WeakAreaDrillSize)
	v.SetDefault("engine.max_options", def.MaxOptions)
	v.SetDefault("engine.vocab_distractors", def.VocabDistractors)
	v.SetDefault("engine.drill_distractor_words", def.DrillDistractorWords)

	for c, labels := range skill.DefaultLabels() {
		v.SetDefault("categories."+strings.ToLower(string(c)), labels)
	}
}

// Validate checks value ranges that would make generation misbehave.
func (c *Config) Validate() error {
	e := c.Engine
	if e.WeakShare < 0 || e.WeakShare > 1 {
		return fmt.Errorf("engine.weak_share %v must be between 0 and 1", e.WeakShare)
	}
	if e.WeakThreshold < 0 || e.WeakThreshold > 1 {
		return fmt.Errorf("engine.weak_threshold %v must be between 0 and 1", e.WeakThreshold)
	}
	if e.LearningZone < 0 || e.LearningZone > 1 {
		return fmt.Errorf("engine.learning_zone %v must be between 0 and 1", e.LearningZone)
	}
	if e.MaxOptions < 2 || e.MaxOptions > 4 {
		return fmt.Errorf("engine.max_options %d must be between 2 and 4", e.MaxOptions)
	}
	if e.GeneralStartDifficulty < 1 || e.GeneralStartDifficulty > 5 {
		return fmt.Errorf("engine.general_start_difficulty %d must be between 1 and 5", e.GeneralStartDifficulty)
	}
	if _, err := c.LabelMap(); err != nil {
		return err
	}
	return nil
}

// LabelMap converts the categories section into a label map.
func (c *Config) LabelMap() (skill.LabelMap, error) {
	if len(c.Categories) == 0 {
		return skill.DefaultLabels(), nil
	}
	m := make(skill.LabelMap, len(c.Categories))
	for name, labels := range c.Categories {
		cat, err := skill.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("categories: %w", err)
		}
		m[cat] = labels
	}
	return m, nil
}

// Generator returns the problemgen configuration described by c.
func (c *Config) Generator() problemgen.Config {
	g := problemgen.DefaultConfig()
	g.WeakShare = c.Engine.WeakShare
	g.WeakThreshold = c.Engine.WeakThreshold
	g.LearningZone = c.Engine.LearningZone
	g.RecentWindow = c.Engine.RecentWindow
	g.GeneralStartDifficulty = c.Engine.GeneralStartDifficulty
	g.WeakAreaDrillSize = c.Engine.WeakAreaDrillSize
	g.MaxOptions = c.Engine.MaxOptions
	g.VocabDistractors = c.Engine.VocabDistractors
	g.DrillDistractorWords = c.Engine.DrillDistractorWords
	if labels, err := c.LabelMap(); err == nil {
		g.Labels = labels
	}
	return g
}
