package quiz

import (
	"fmt"
	"math/rand/v2"

	"quizzer/internal/question"
)

// DistractorCount is the number of wrong answers shown with a multiple-choice question.
const DistractorCount = 3

// DistractorMode controls what happens when a topic has too few wrong answers.
type DistractorMode string

const (
	// DistractorsReject refuses to start a session that contains a short topic.
	DistractorsReject DistractorMode = "reject"
	// DistractorsFallback shows every available wrong answer when fewer than
	// DistractorCount exist. Questions with none are still rejected.
	DistractorsFallback DistractorMode = "fallback"
)

// ParseDistractorMode validates a mode name; empty selects DistractorsReject.
func ParseDistractorMode(value string) (DistractorMode, error) {
	switch DistractorMode(value) {
	case "", DistractorsReject:
		return DistractorsReject, nil
	case DistractorsFallback:
		return DistractorsFallback, nil
	default:
		return "", fmt.Errorf("invalid distractor mode %q (expected reject|fallback)", value)
	}
}

var yesNoOptions = []string{"Yes", "No"}

// Distractors returns the distinct wrong answers available for current: answers
// of other questions in the same topic that are neither yes/no nor equal to
// the correct answer, in question order.
func Distractors(questions []question.Question, current question.Question) []string {
	seen := map[string]struct{}{question.NormalizeAnswerText(current.Answer): {}}
	pool := make([]string, 0)
	for _, candidate := range questions {
		if candidate.Topic != current.Topic || candidate.Prompt == current.Prompt {
			continue
		}
		if question.IsYesNo(candidate.Answer) {
			continue
		}
		key := question.NormalizeAnswerText(candidate.Answer)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, candidate.Answer)
	}
	return pool
}

// CheckDistractors verifies every question in the set can be given an option set.
func CheckDistractors(questions []question.Question, mode DistractorMode) error {
	var shortfalls []Shortfall
	for _, current := range questions {
		if question.IsYesNo(current.Answer) {
			continue
		}
		available := len(Distractors(questions, current))
		if available >= DistractorCount {
			continue
		}
		if mode == DistractorsFallback && available > 0 {
			continue
		}
		shortfalls = append(shortfalls, Shortfall{
			Topic:     current.Topic,
			Prompt:    current.Prompt,
			Available: available,
			Needed:    DistractorCount,
		})
	}
	if len(shortfalls) > 0 {
		return &InsufficientDistractorsError{Shortfalls: shortfalls}
	}
	return nil
}

// BuildOptions returns the shuffled answer choices for current. Yes/no
// questions always get exactly Yes and No.
func BuildOptions(rng *rand.Rand, questions []question.Question, current question.Question, mode DistractorMode) ([]string, error) {
	if question.IsYesNo(current.Answer) {
		return append([]string(nil), yesNoOptions...), nil
	}
	pool := Distractors(questions, current)
	need := DistractorCount
	if len(pool) < need {
		if mode != DistractorsFallback || len(pool) == 0 {
			return nil, &InsufficientDistractorsError{Shortfalls: []Shortfall{{
				Topic:     current.Topic,
				Prompt:    current.Prompt,
				Available: len(pool),
				Needed:    DistractorCount,
			}}}
		}
		need = len(pool)
	}
	options := make([]string, 0, need+1)
	for _, index := range rng.Perm(len(pool))[:need] {
		options = append(options, pool[index])
	}
	options = append(options, current.Answer)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}
