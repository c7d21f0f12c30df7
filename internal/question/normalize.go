package question

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// AnswersEqual reports whether two answers match case-insensitively.
func AnswersEqual(a, b string) bool {
	return NormalizeAnswerText(a) == NormalizeAnswerText(b)
}

// IsYesNo reports whether an answer is a plain yes or no.
func IsYesNo(answer string) bool {
	switch NormalizeAnswerText(answer) {
	case "yes", "no":
		return true
	default:
		return false
	}
}
