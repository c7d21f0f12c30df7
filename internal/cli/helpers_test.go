package cli

import (
	"os"
	"path/filepath"
	"testing"

	"quizzer/internal/testutil"
)

// yesBankJSON has one yes/no topic whose answers are all Yes, so option 1 is
// always correct.
const yesBankJSON = `{
  "title": "House Rules",
  "questions": {
    "Rules": {
      "Is a 7 a natural on the come out roll?": "Yes",
      "Is an 11 a natural on the come out roll?": "Yes"
    }
  }
}`

// thinBankJSON has a multiple-choice topic with only two distinct answers.
const thinBankJSON = `{
  "title": "Thin",
  "questions": {
    "Pairs": {
      "Left?": "West",
      "Right?": "East"
    }
  }
}`

func writeBank(t *testing.T, name, payload string) string {
	t.Helper()
	return testutil.WriteQuestionFile(t, name, payload)
}

// writeSettings writes a .quizzer.yml next to a question file and returns its path.
func writeSettings(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ".quizzer.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}
