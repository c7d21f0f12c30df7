package live

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/testutil"
)

func TestRendererSelectTopicFromInput(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	var out bytes.Buffer
	renderer := New(Options{NoColor: true, Input: strings.NewReader("j\r"), Output: &out, Context: ctx})
	got, err := renderer.SelectTopic([]string{"Capitals", "Rules", question.AllTopics})
	if err != nil {
		t.Fatalf("select topic: %v", err)
	}
	if got != "Rules" {
		t.Fatalf("expected Rules, got %q", got)
	}
}

func TestRendererPlayQuitFromInput(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	session, err := quiz.NewSession(testutil.Capitals(), quiz.Options{Rand: testutil.Rand(5)})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	renderer := New(Options{NoColor: true, Input: strings.NewReader("q"), Output: &bytes.Buffer{}, Context: ctx})
	summary, err := renderer.Play(session, "Craps Keys Quiz")
	if !errors.Is(err, quiz.ErrCancelled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if summary.Passed {
		t.Fatalf("abandoned session must not pass")
	}
}
