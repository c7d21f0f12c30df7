package quiz

import (
	"math"

	"quizzer/internal/question"
)

// DefaultPassRatio is the share of the question set that must be scored to pass.
const DefaultPassRatio = 0.8

// State is the complete scoring state of a session.
type State struct {
	Score      int
	Required   int
	Answered   int
	Current    question.Question
	Options    []string
	Presenting bool
	Done       bool
}

// Outcome is the result of answering one question.
type Outcome struct {
	Answer        string
	CorrectAnswer string
	Correct       bool
	Delta         int
	Score         int
	Required      int
	Progress      float64
	Done          bool
}

// RequiredScore returns floor(ratio * total).
func RequiredScore(total int, ratio float64) int {
	if total <= 0 {
		return 0
	}
	if ratio <= 0 {
		ratio = DefaultPassRatio
	}
	// Round away float noise before flooring so 0.8*10 stays 8.
	return int(math.Floor(float64(total)*ratio + 1e-9))
}

// Progress returns 100 * score / required without clamping. A zero
// requirement is treated as one so the value stays finite.
func Progress(score, required int) float64 {
	if required <= 0 {
		required = 1
	}
	return float64(score) / float64(required) * 100
}

// Evaluate scores an answer against the presented question and returns the
// outcome with the next state. It does not check that a question is presented.
func Evaluate(state State, answer string) (Outcome, State) {
	correct := question.AnswersEqual(answer, state.Current.Answer)
	delta := -1
	if correct {
		delta = 1
	}
	next := state
	next.Score += delta
	next.Answered++
	next.Options = nil
	next.Presenting = false
	next.Done = next.Score >= next.Required
	return Outcome{
		Answer:        answer,
		CorrectAnswer: state.Current.Answer,
		Correct:       correct,
		Delta:         delta,
		Score:         next.Score,
		Required:      next.Required,
		Progress:      Progress(next.Score, next.Required),
		Done:          next.Done,
	}, next
}
