package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads settings from path (optional), applies QUIZZER_* environment
// overrides and defaults, then normalizes and validates them.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	baseDir := ""
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		baseDir = filepath.Dir(path)
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	Normalize(&cfg, baseDir)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("questions_file", defaults.QuestionsFile)
	v.SetDefault("pass_ratio", defaults.PassRatio)
	v.SetDefault("ui", defaults.UI)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("distractors", defaults.Distractors)
}
