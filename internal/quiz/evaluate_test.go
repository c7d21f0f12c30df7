package quiz

import (
	"testing"

	"quizzer/internal/question"
)

// TestEvaluateIsPure verifies Evaluate leaves its input untouched and scores case-insensitively.
func TestEvaluateIsPure(t *testing.T) {
	state := State{
		Score:      3,
		Required:   4,
		Current:    question.Question{Prompt: "Capital of France?", Answer: "Paris", Topic: "A"},
		Options:    []string{"Paris", "Rome", "Madrid", "Berlin"},
		Presenting: true,
	}
	outcome, next := Evaluate(state, "PARIS")
	if state.Score != 3 || !state.Presenting {
		t.Fatalf("input state was modified: %+v", state)
	}
	if !outcome.Correct || outcome.Delta != 1 || !outcome.Done || outcome.Progress != 100 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if next.Score != 4 || next.Presenting || next.Options != nil || next.Answered != 1 {
		t.Fatalf("unexpected next state: %+v", next)
	}
}

// TestProgressUnclamped verifies progress can go negative or above 100.
func TestProgressUnclamped(t *testing.T) {
	cases := []struct {
		score, required int
		want            float64
	}{
		{4, 8, 50},
		{-2, 8, -25},
		{10, 8, 125},
		{1, 0, 100},
		{-1, 0, -100},
	}
	for _, tc := range cases {
		if got := Progress(tc.score, tc.required); got != tc.want {
			t.Fatalf("Progress(%d, %d) = %v, want %v", tc.score, tc.required, got, tc.want)
		}
	}
}

// TestFeedbackMessages verifies the acknowledgment text.
func TestFeedbackMessages(t *testing.T) {
	heading, message := Feedback(Outcome{Correct: true, Score: 2, Required: 8})
	if heading != "Correct" || message != "Correct! Your score is now 2. You need 8 to pass." {
		t.Fatalf("unexpected correct feedback %q %q", heading, message)
	}
	heading, message = Feedback(Outcome{CorrectAnswer: "Paris", Score: -1, Required: 8})
	if heading != "Incorrect" || message != "Incorrect. The correct answer was Paris. Your score is now -1. You need 8 to pass." {
		t.Fatalf("unexpected incorrect feedback %q %q", heading, message)
	}
}
