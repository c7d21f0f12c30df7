package live

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/testutil"
)

func newModel(t *testing.T, questions []question.Question) (QuizModel, *quiz.Session) {
	t.Helper()
	session, err := quiz.NewSession(questions, quiz.Options{Rand: testutil.Rand(11)})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return NewQuizModel(session, "Craps Keys Quiz", Options{NoColor: true}), session
}

// correctIndex returns the option index holding the right answer.
func correctIndex(t *testing.T, m QuizModel, session *quiz.Session) int {
	t.Helper()
	for i, option := range m.round.Options {
		if question.AnswersEqual(option, session.State().Current.Answer) {
			return i
		}
	}
	t.Fatalf("no correct option in %v", m.round.Options)
	return -1
}

// TestQuizModelPresentsQuestion verifies the first question and its options render.
func TestQuizModelPresentsQuestion(t *testing.T) {
	model, _ := newModel(t, testutil.Capitals())
	view := model.View()
	if !strings.Contains(view, "Craps Keys Quiz") || !strings.Contains(view, model.round.Question) {
		t.Fatalf("expected title and question in view:\n%s", view)
	}
	for _, option := range model.round.Options {
		if !strings.Contains(view, option) {
			t.Fatalf("expected option %q in view", option)
		}
	}
}

// TestQuizModelAnswerAndAdvance verifies answering shows feedback and enter moves on.
func TestQuizModelAnswerAndAdvance(t *testing.T) {
	model, session := newModel(t, testutil.Capitals())
	index := correctIndex(t, model, session)
	next, cmd := model.Update(runeMsg(rune('1' + index)))
	if cmd != nil {
		t.Fatalf("expected no command after a non-final answer")
	}
	model = next.(QuizModel)
	if model.phase != phaseFeedback || !model.outcome.Correct {
		t.Fatalf("expected correct feedback, got phase %d outcome %+v", model.phase, model.outcome)
	}
	if !strings.Contains(model.View(), "Correct! Your score is now 1. You need 4 to pass.") {
		t.Fatalf("expected acknowledgment in view:\n%s", model.View())
	}
	next, _ = model.Update(keyMsg(tea.KeyEnter))
	model = next.(QuizModel)
	if model.phase != phasePresenting || model.round.Number != 2 {
		t.Fatalf("expected second round, got phase %d round %d", model.phase, model.round.Number)
	}
}

// TestQuizModelWrongAnswerRevealsCorrect verifies the incorrect acknowledgment.
func TestQuizModelWrongAnswerRevealsCorrect(t *testing.T) {
	model, session := newModel(t, testutil.Capitals())
	want := session.State().Current.Answer
	model.cursor = (correctIndex(t, model, session) + 1) % len(model.round.Options)
	next, _ := model.Update(keyMsg(tea.KeyEnter))
	model = next.(QuizModel)
	if model.outcome.Correct || model.outcome.Score != -1 {
		t.Fatalf("expected wrong answer, got %+v", model.outcome)
	}
	if !strings.Contains(model.View(), "The correct answer was "+want) {
		t.Fatalf("expected correct answer revealed:\n%s", model.View())
	}
}

// TestQuizModelQuitsWhenPassed verifies the screen quits after the passing acknowledgment.
func TestQuizModelQuitsWhenPassed(t *testing.T) {
	model, session := newModel(t, testutil.YesNo(1))
	model.cursor = correctIndex(t, model, session)
	next, _ := model.Update(keyMsg(tea.KeyEnter))
	model = next.(QuizModel)
	if !model.outcome.Done {
		t.Fatalf("expected session to be done")
	}
	next, cmd := model.Update(keyMsg(tea.KeyEnter))
	if !isQuit(cmd) {
		t.Fatalf("expected quit after passing")
	}
	summary, err := next.(QuizModel).Result()
	if err != nil || !summary.Passed {
		t.Fatalf("expected passed summary, got %+v %v", summary, err)
	}
}

// TestQuizModelQuitAbandons verifies q abandons the session.
func TestQuizModelQuitAbandons(t *testing.T) {
	model, _ := newModel(t, testutil.Capitals())
	next, cmd := model.Update(runeMsg('q'))
	if !isQuit(cmd) {
		t.Fatalf("expected quit")
	}
	if _, err := next.(QuizModel).Result(); !errors.Is(err, quiz.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

// TestQuizModelCursorWraps verifies up/down wrap around the options.
func TestQuizModelCursorWraps(t *testing.T) {
	model, _ := newModel(t, testutil.Capitals())
	next, _ := model.Update(keyMsg(tea.KeyUp))
	if next.(QuizModel).cursor != len(model.round.Options)-1 {
		t.Fatalf("expected cursor to wrap to the last option")
	}
}

// TestClampPercent verifies only the bar drawing is clamped.
func TestClampPercent(t *testing.T) {
	if clampPercent(-50) != 0 || clampPercent(150) != 1 || clampPercent(50) != 0.5 {
		t.Fatalf("unexpected clamp results")
	}
}

// TestQuizModelQuitAfterPassingKeepsResult verifies quitting from the final
// acknowledgment still reports a passed session.
func TestQuizModelQuitAfterPassingKeepsResult(t *testing.T) {
	for _, quit := range []tea.KeyMsg{runeMsg('q'), keyMsg(tea.KeyEsc), keyMsg(tea.KeyCtrlC)} {
		model, session := newModel(t, testutil.YesNo(1))
		model.cursor = correctIndex(t, model, session)
		next, _ := model.Update(keyMsg(tea.KeyEnter))
		model = next.(QuizModel)
		if !model.outcome.Done {
			t.Fatalf("expected session to be done")
		}
		next, cmd := model.Update(quit)
		if !isQuit(cmd) {
			t.Fatalf("%s: expected quit", quit)
		}
		summary, err := next.(QuizModel).Result()
		if err != nil {
			t.Fatalf("%s: expected no error after passing, got %v", quit, err)
		}
		if !summary.Passed {
			t.Fatalf("%s: expected passed summary, got %+v", quit, summary)
		}
	}
}
