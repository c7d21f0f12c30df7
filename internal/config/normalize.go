package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values and resolves file paths relative to baseDir.
func Normalize(cfg *Config, baseDir string) {
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	cfg.Distractors = strings.ToLower(strings.TrimSpace(cfg.Distractors))
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	if baseDir == "" {
		return
	}
	cfg.QuestionsFile = resolvePath(baseDir, cfg.QuestionsFile)
	cfg.LogFile = resolvePath(baseDir, cfg.LogFile)
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
