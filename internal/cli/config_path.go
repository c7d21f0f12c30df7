package cli

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"quizzer/internal/config"
)

// resolveConfigPath normalizes an explicit settings path or finds one from CWD.
// An empty result means no settings file is in use.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config file not found: %s", abs)
		}
		return "", fmt.Errorf("stat config file: %w", err)
	}
	return abs, nil
}

// loadSettings reads the settings file and environment, then applies the
// flags the user set explicitly.
func loadSettings(flags *flag.FlagSet, configPath string) (config.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return config.Config{}, err
	}
	flags.Visit(func(f *flag.Flag) {
		applyFlag(&cfg, f)
	})
	config.Normalize(&cfg, "")
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlag copies a set flag over the matching setting.
func applyFlag(cfg *config.Config, f *flag.Flag) {
	value := f.Value.(flag.Getter).Get()
	switch f.Name {
	case "file":
		cfg.QuestionsFile = value.(string)
	case "ui":
		cfg.UI = value.(string)
	case "distractors":
		cfg.Distractors = value.(string)
	case "pass-ratio":
		cfg.PassRatio = value.(float64)
	case "no-color":
		cfg.NoColor = value.(bool)
	case "verbose":
		cfg.Verbose = value.(bool)
	case "log-file":
		cfg.LogFile = value.(string)
	}
}
