package quiz

// SessionInfo describes a session as it starts.
type SessionInfo struct {
	ID        string
	Topic     string
	Questions int
	Required  int
}

// Summary describes a session as it ends.
type Summary struct {
	ID       string
	Passed   bool
	Score    int
	Required int
	Rounds   int
}

// Round is one presented question.
type Round struct {
	Number   int
	Question string
	Topic    string
	Options  []string
	Score    int
	Required int
	Progress float64
}

// Observer receives session lifecycle events for UI or logging.
type Observer interface {
	// OnSessionStart signals the start of a session.
	OnSessionStart(info SessionInfo)
	// OnRound signals a question being presented.
	OnRound(sessionID string, round Round)
	// OnAnswer delivers the outcome of an answer.
	OnAnswer(sessionID string, outcome Outcome)
	// OnSessionEnd signals the session passed or was abandoned.
	OnSessionEnd(summary Summary)
}
