package logging

import (
	"go.uber.org/zap"

	"quizzer/internal/quiz"
)

// SessionObserver logs session lifecycle events.
type SessionObserver struct {
	logger *zap.Logger
}

// NewSessionObserver wraps a logger as a quiz.Observer.
func NewSessionObserver(logger *zap.Logger) *SessionObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionObserver{logger: logger}
}

// OnSessionStart logs the session parameters.
func (o *SessionObserver) OnSessionStart(info quiz.SessionInfo) {
	o.logger.Info("session started",
		zap.String("session_id", info.ID),
		zap.String("topic", info.Topic),
		zap.Int("questions", info.Questions),
		zap.Int("required_score", info.Required),
	)
}

// OnRound logs a presented question.
func (o *SessionObserver) OnRound(sessionID string, round quiz.Round) {
	o.logger.Debug("question presented",
		zap.String("session_id", sessionID),
		zap.Int("round", round.Number),
		zap.String("topic", round.Topic),
		zap.String("question", round.Question),
		zap.Int("options", len(round.Options)),
	)
}

// OnAnswer logs the scoring result of an answer.
func (o *SessionObserver) OnAnswer(sessionID string, outcome quiz.Outcome) {
	o.logger.Info("answer evaluated",
		zap.String("session_id", sessionID),
		zap.Bool("correct", outcome.Correct),
		zap.Int("delta", outcome.Delta),
		zap.Int("score", outcome.Score),
		zap.Int("required_score", outcome.Required),
		zap.Float64("progress", outcome.Progress),
	)
}

// OnSessionEnd logs how the session finished.
func (o *SessionObserver) OnSessionEnd(summary quiz.Summary) {
	o.logger.Info("session ended",
		zap.String("session_id", summary.ID),
		zap.Bool("passed", summary.Passed),
		zap.Int("score", summary.Score),
		zap.Int("required_score", summary.Required),
		zap.Int("rounds", summary.Rounds),
	)
}
