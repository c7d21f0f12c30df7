package testutil

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"quizzer/internal/question"
)

// SampleQuestionsJSON is a question file with one multiple-choice topic and one yes/no topic.
const SampleQuestionsJSON = `{
  "title": "Craps Keys Quiz",
  "questions": {
    "Capitals": {
      "Capital of France?": "Paris",
      "Capital of Spain?": "Madrid",
      "Capital of Italy?": "Rome",
      "Capital of Germany?": "Berlin",
      "Capital of Austria?": "Vienna"
    },
    "Rules": {
      "Is a 7 a natural on the come out roll?": "Yes",
      "Can you bet the field on the come out roll?": "yes",
      "Does a 12 win on the pass line?": "No"
    }
  }
}`

// Rand returns a deterministic random source for tests.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// WriteQuestionFile writes payload to name inside a temp dir and returns its path.
func WriteQuestionFile(t testing.TB, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write question file: %v", err)
	}
	return path
}

// Capitals returns a topic of five multiple-choice questions.
func Capitals() []question.Question {
	return []question.Question{
		{Prompt: "Capital of France?", Answer: "Paris", Topic: "Capitals"},
		{Prompt: "Capital of Spain?", Answer: "Madrid", Topic: "Capitals"},
		{Prompt: "Capital of Italy?", Answer: "Rome", Topic: "Capitals"},
		{Prompt: "Capital of Germany?", Answer: "Berlin", Topic: "Capitals"},
		{Prompt: "Capital of Austria?", Answer: "Vienna", Topic: "Capitals"},
	}
}

// YesNo returns n yes/no questions in topic "Rules".
func YesNo(n int) []question.Question {
	questions := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		answer := "Yes"
		if i%2 == 1 {
			answer = "no"
		}
		questions = append(questions, question.Question{
			Prompt: "Rule " + string(rune('A'+i)) + "?",
			Answer: answer,
			Topic:  "Rules",
		})
	}
	return questions
}
