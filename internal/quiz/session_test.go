package quiz

import (
	"errors"
	"testing"

	"quizzer/internal/question"
	"quizzer/internal/testutil"
)

// recorder captures observer callbacks.
type recorder struct {
	starts  []SessionInfo
	rounds  []Round
	answers []Outcome
	ends    []Summary
}

func (r *recorder) OnSessionStart(info SessionInfo)    { r.starts = append(r.starts, info) }
func (r *recorder) OnRound(_ string, round Round)      { r.rounds = append(r.rounds, round) }
func (r *recorder) OnAnswer(_ string, outcome Outcome) { r.answers = append(r.answers, outcome) }
func (r *recorder) OnSessionEnd(summary Summary)       { r.ends = append(r.ends, summary) }

func newTestSession(t *testing.T, questions []question.Question, observers ...Observer) *Session {
	t.Helper()
	session, err := NewSession(questions, Options{Topic: "Capitals", Rand: testutil.Rand(7), Observers: observers})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func answerRound(t *testing.T, session *Session, correct bool) Outcome {
	t.Helper()
	round, err := session.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	want := session.State().Current.Answer
	for _, option := range round.Options {
		if question.AnswersEqual(option, want) == correct {
			outcome, err := session.Answer(option)
			if err != nil {
				t.Fatalf("answer: %v", err)
			}
			return outcome
		}
	}
	t.Fatalf("no suitable option in %v", round.Options)
	return Outcome{}
}

// TestRequiredScore verifies floor(0.8 * total).
func TestRequiredScore(t *testing.T) {
	cases := []struct {
		total int
		ratio float64
		want  int
	}{
		{10, 0.8, 8},
		{5, 0.8, 4},
		{3, 0.8, 2},
		{1, 0.8, 0},
		{7, 0, 5},
		{10, 1, 10},
		{0, 0.8, 0},
	}
	for _, tc := range cases {
		if got := RequiredScore(tc.total, tc.ratio); got != tc.want {
			t.Fatalf("RequiredScore(%d, %v) = %d, want %d", tc.total, tc.ratio, got, tc.want)
		}
	}
}

// TestNewSessionRejectsEmptyAndShortSets verifies precondition failures.
func TestNewSessionRejectsEmptyAndShortSets(t *testing.T) {
	if _, err := NewSession(nil, Options{}); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if _, err := NewSession(testutil.Capitals()[:3], Options{}); !errors.Is(err, ErrInsufficientDistractors) {
		t.Fatalf("expected ErrInsufficientDistractors, got %v", err)
	}
	if _, err := NewSession(testutil.Capitals(), Options{Distractors: "sometimes"}); err == nil {
		t.Fatalf("expected invalid mode error")
	}
}

// TestSessionScoring verifies +1/-1 scoring without a floor.
func TestSessionScoring(t *testing.T) {
	session := newTestSession(t, testutil.Capitals())
	if session.State().Required != 4 {
		t.Fatalf("expected required 4, got %d", session.State().Required)
	}
	outcome := answerRound(t, session, false)
	if outcome.Correct || outcome.Delta != -1 || outcome.Score != -1 {
		t.Fatalf("unexpected outcome after wrong answer: %+v", outcome)
	}
	outcome = answerRound(t, session, false)
	if outcome.Score != -2 {
		t.Fatalf("expected score -2, got %d", outcome.Score)
	}
	if outcome.Progress != -50 {
		t.Fatalf("expected progress -50, got %v", outcome.Progress)
	}
	outcome = answerRound(t, session, true)
	if !outcome.Correct || outcome.Delta != 1 || outcome.Score != -1 {
		t.Fatalf("unexpected outcome after correct answer: %+v", outcome)
	}
}

// TestSessionTerminatesAtRequiredScore verifies the session ends exactly at the threshold.
func TestSessionTerminatesAtRequiredScore(t *testing.T) {
	rec := &recorder{}
	session := newTestSession(t, testutil.Capitals(), rec)
	for i := 1; i <= 4; i++ {
		outcome := answerRound(t, session, true)
		if outcome.Progress != Progress(i, 4) {
			t.Fatalf("expected progress %v, got %v", Progress(i, 4), outcome.Progress)
		}
		if outcome.Done != (i == 4) || session.Done() != (i == 4) {
			t.Fatalf("unexpected done=%v after %d correct answers", outcome.Done, i)
		}
	}
	if _, err := session.Next(); !errors.Is(err, ErrSessionOver) {
		t.Fatalf("expected ErrSessionOver, got %v", err)
	}
	if len(rec.starts) != 1 || len(rec.rounds) != 4 || len(rec.answers) != 4 || len(rec.ends) != 1 {
		t.Fatalf("unexpected observer calls: %+v", rec)
	}
	if !rec.ends[0].Passed || rec.ends[0].Rounds != 4 {
		t.Fatalf("unexpected summary: %+v", rec.ends[0])
	}
}

// TestSessionZeroRequirementChecksAfterAnswer verifies termination is only checked after answering.
func TestSessionZeroRequirementChecksAfterAnswer(t *testing.T) {
	session := newTestSession(t, testutil.YesNo(1))
	if session.Done() {
		t.Fatalf("session must not end before the first answer")
	}
	if outcome := answerRound(t, session, false); outcome.Done {
		t.Fatalf("expected session to continue below zero")
	}
	if outcome := answerRound(t, session, true); !outcome.Done || outcome.Score != 0 {
		t.Fatalf("expected session to end at score 0, got %+v", outcome)
	}
}

// TestSessionAnswerGuards verifies answers need a presented round and a listed option.
func TestSessionAnswerGuards(t *testing.T) {
	session := newTestSession(t, testutil.Capitals())
	if _, err := session.Answer("Paris"); !errors.Is(err, ErrNoRound) {
		t.Fatalf("expected ErrNoRound, got %v", err)
	}
	first, err := session.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	again, err := session.Next()
	if err != nil || again.Number != first.Number || again.Question != first.Question {
		t.Fatalf("expected Next to repeat the presented round, got %+v", again)
	}
	if _, err := session.Answer("Atlantis"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

// TestSessionAbandon verifies abandonment reports an unpassed summary once.
func TestSessionAbandon(t *testing.T) {
	rec := &recorder{}
	session := newTestSession(t, testutil.Capitals(), rec)
	answerRound(t, session, true)
	session.Abandon()
	session.Abandon()
	if len(rec.ends) != 1 || rec.ends[0].Passed || rec.ends[0].Score != 1 {
		t.Fatalf("unexpected end events: %+v", rec.ends)
	}
	if line := SummaryLine(rec.ends[0]); line != "Quiz abandoned at score 1/4." {
		t.Fatalf("unexpected summary line %q", line)
	}
}

// TestSessionDrawsWithReplacement verifies questions are drawn from the full set
// every round, so a prompt can repeat before every prompt has been seen.
func TestSessionDrawsWithReplacement(t *testing.T) {
	total := len(testutil.Capitals())
	repeatedEarly := false
	for seed := uint64(1); seed <= 10; seed++ {
		session, err := NewSession(testutil.Capitals(), Options{Rand: testutil.Rand(seed)})
		if err != nil {
			t.Fatalf("new session: %v", err)
		}
		seen := map[string]int{}
		for i := 0; i < 200; i++ {
			round, err := session.Next()
			if err != nil {
				t.Fatalf("seed %d round %d: next: %v", seed, i, err)
			}
			if seen[round.Question] > 0 && len(seen) < total {
				repeatedEarly = true
			}
			seen[round.Question]++
			want := session.State().Current.Answer
			correct := i%2 == 0
			for _, option := range round.Options {
				if question.AnswersEqual(option, want) == correct {
					if _, err := session.Answer(option); err != nil {
						t.Fatalf("seed %d round %d: answer: %v", seed, i, err)
					}
					break
				}
			}
			if session.Done() {
				t.Fatalf("seed %d: alternating answers should never pass", seed)
			}
			if len(session.questions) != total {
				t.Fatalf("seed %d: question set shrank to %d", seed, len(session.questions))
			}
		}
		if len(seen) != total {
			t.Fatalf("seed %d: expected every prompt to be drawn, got %v", seed, seen)
		}
		if got := session.State().Answered; got != 200 {
			t.Fatalf("seed %d: expected 200 answers, got %d", seed, got)
		}
	}
	if !repeatedEarly {
		t.Fatalf("expected at least one prompt to repeat before all were drawn")
	}
}
