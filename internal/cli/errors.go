package cli

import (
	"errors"
	"fmt"
	"io"

	"quizzer/internal/question"
	"quizzer/internal/quiz"
)

// reportError prints err under a heading matching its kind and returns the exit code.
func reportError(stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, quiz.ErrCancelled):
		fmt.Fprintln(stderr, "Quiz cancelled.")
		return ExitCancelled
	case errors.Is(err, question.ErrFileMissing):
		fmt.Fprintf(stderr, "File Not Found: %v\n", err)
	case errors.Is(err, question.ErrMalformedData):
		fmt.Fprintf(stderr, "File Error: %v\n", err)
	case errors.Is(err, quiz.ErrInsufficientDistractors):
		fmt.Fprintf(stderr, "Question Error: %v\n", err)
	case errors.Is(err, question.ErrUnknownTopic), errors.Is(err, quiz.ErrNoQuestions):
		fmt.Fprintf(stderr, "Topic Error: %v\n", err)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitError
}
