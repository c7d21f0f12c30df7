package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quizzer/internal/question"
)

const defaultConfig = `version: 1
questions_file: "questions.json"
pass_ratio: 0.8
ui: auto
distractors: reject
`

const sampleQuestions = `{
  "title": "Craps Keys Quiz",
  "questions": {
    "Odds": {
      "What does a Yo (11) pay?": "15 to 1",
      "What does Any Craps pay?": "7 to 1",
      "What does Snake Eyes (2) pay?": "30 to 1",
      "What does Ace-Deuce (3) pay?": "15 to 1 on the hop",
      "What does Any Seven pay?": "4 to 1"
    },
    "Rules": {
      "Is a 7 a natural on the come out roll?": "Yes",
      "Does a 12 win on the pass line?": "No",
      "Can the shooter change dice mid-roll?": "No"
    }
  }
}
`

// Scaffold writes a settings file and a sample question file into dir.
// Existing files are only replaced when force is set.
func Scaffold(dir string, force bool) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("target directory is required")
	}
	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, ConfigFileName), defaultConfig},
		{filepath.Join(dir, question.DefaultFileName), sampleQuestions},
	}
	for _, file := range files {
		info, err := os.Stat(file.path)
		if err == nil {
			if info.IsDir() {
				return nil, fmt.Errorf("path %q is a directory", file.path)
			}
			if !force {
				return nil, fmt.Errorf("file already exists at %q (use --force to overwrite)", file.path)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %s: %w", file.path, err)
		}
	}
	written := make([]string, 0, len(files))
	for _, file := range files {
		if err := os.WriteFile(file.path, []byte(file.content), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", file.path, err)
		}
		written = append(written, file.path)
	}
	return written, nil
}
