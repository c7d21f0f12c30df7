package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoQuestions indicates a session was requested with nothing to ask.
	ErrNoQuestions = errors.New("no questions to ask")
	// ErrInsufficientDistractors indicates a topic cannot supply enough wrong answers.
	ErrInsufficientDistractors = errors.New("not enough wrong answers in topic")
	// ErrSessionOver indicates the required score was already reached.
	ErrSessionOver = errors.New("quiz session is over")
	// ErrNoRound indicates an answer was given while no question is presented.
	ErrNoRound = errors.New("no question is being presented")
	// ErrUnknownOption indicates an answer that is not one of the presented options.
	ErrUnknownOption = errors.New("answer is not one of the presented options")
	// ErrCancelled indicates the user dismissed a view without confirming.
	ErrCancelled = errors.New("cancelled")
)

// Shortfall describes a question whose topic cannot fill its option set.
type Shortfall struct {
	Topic     string
	Prompt    string
	Available int
	Needed    int
}

// InsufficientDistractorsError lists every question that cannot be asked.
type InsufficientDistractorsError struct {
	Shortfalls []Shortfall
}

// Error renders the shortfalls grouped by topic.
func (err *InsufficientDistractorsError) Error() string {
	if err == nil || len(err.Shortfalls) == 0 {
		return ErrInsufficientDistractors.Error()
	}
	topics := make([]string, 0)
	counts := map[string]int{}
	for _, shortfall := range err.Shortfalls {
		if _, seen := counts[shortfall.Topic]; !seen {
			topics = append(topics, shortfall.Topic)
		}
		counts[shortfall.Topic]++
	}
	parts := make([]string, 0, len(topics))
	for _, topic := range topics {
		parts = append(parts, fmt.Sprintf("%q (%d questions)", topic, counts[topic]))
	}
	return fmt.Sprintf("%s: each multiple-choice question needs %d distinct wrong answers from its topic; short topics: %s",
		ErrInsufficientDistractors.Error(), DistractorCount, strings.Join(parts, ", "))
}

// Is matches ErrInsufficientDistractors.
func (err *InsufficientDistractorsError) Is(target error) bool {
	return target == ErrInsufficientDistractors
}
