package config

import "quizzer/internal/question"

// Config holds quiz settings loaded from .quizzer.yml, the environment and defaults.
type Config struct {
	Version       int     `mapstructure:"version"`
	QuestionsFile string  `mapstructure:"questions_file"`
	PassRatio     float64 `mapstructure:"pass_ratio"`
	UI            string  `mapstructure:"ui"`
	NoColor       bool    `mapstructure:"no_color"`
	Verbose       bool    `mapstructure:"verbose"`
	LogFile       string  `mapstructure:"log_file"`
	Distractors   string  `mapstructure:"distractors"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Version:       1,
		QuestionsFile: question.DefaultFileName,
		PassRatio:     0.8,
		UI:            "auto",
		Distractors:   "reject",
	}
}
