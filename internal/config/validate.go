package config

import (
	"fmt"
	"strings"

	"quizzer/internal/quiz"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks settings for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.QuestionsFile == "" {
		add("questions_file", "is required")
	}
	if cfg.PassRatio <= 0 || cfg.PassRatio > 1 {
		add("pass_ratio", fmt.Sprintf("must be > 0 and <= 1, got %v", cfg.PassRatio))
	}
	switch cfg.UI {
	case "auto", "live", "plain":
	default:
		add("ui", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI))
	}
	if _, err := quiz.ParseDistractorMode(cfg.Distractors); err != nil {
		add("distractors", err.Error())
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
