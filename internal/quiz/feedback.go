package quiz

import "fmt"

// Feedback returns the heading and message shown after an answer.
func Feedback(outcome Outcome) (string, string) {
	if outcome.Correct {
		return "Correct", fmt.Sprintf("Correct! Your score is now %d. You need %d to pass.", outcome.Score, outcome.Required)
	}
	return "Incorrect", fmt.Sprintf("Incorrect. The correct answer was %s. Your score is now %d. You need %d to pass.",
		outcome.CorrectAnswer, outcome.Score, outcome.Required)
}

// SummaryLine returns the closing line for a finished or abandoned session.
func SummaryLine(summary Summary) string {
	if summary.Passed {
		return fmt.Sprintf("Passed with score %d/%d after %d questions.", summary.Score, summary.Required, summary.Rounds)
	}
	return fmt.Sprintf("Quiz abandoned at score %d/%d.", summary.Score, summary.Required)
}
