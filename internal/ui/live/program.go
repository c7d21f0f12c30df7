package live

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizzer/internal/quiz"
)

// Options configures the full-screen UI.
type Options struct {
	NoColor bool
	Input   io.Reader
	Output  io.Writer
	// AltScreen runs each screen in the terminal's alternate buffer.
	AltScreen bool
	// Context stops a running screen when cancelled.
	Context context.Context
}

// Renderer runs the topic selector and quiz screens as Bubble Tea programs.
type Renderer struct {
	opts Options
}

// New builds a Renderer; nil streams default to stdin/stdout.
func New(opts Options) *Renderer {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Renderer{opts: opts}
}

// SelectTopic blocks until a topic is confirmed. Quitting returns quiz.ErrCancelled.
func (r *Renderer) SelectTopic(choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no topics to choose from")
	}
	final, err := r.run(NewTopicModel(choices, r.opts))
	if err != nil {
		return "", err
	}
	model, ok := final.(TopicModel)
	if !ok {
		return "", fmt.Errorf("unexpected topic model %T", final)
	}
	choice, confirmed := model.Choice()
	if !confirmed {
		return "", quiz.ErrCancelled
	}
	return choice, nil
}

// Play runs the quiz screen until the session passes or the user quits.
func (r *Renderer) Play(session *quiz.Session, title string) (quiz.Summary, error) {
	final, err := r.run(NewQuizModel(session, title, r.opts))
	if err != nil {
		session.Abandon()
		return session.Summary(), err
	}
	model, ok := final.(QuizModel)
	if !ok {
		return session.Summary(), fmt.Errorf("unexpected quiz model %T", final)
	}
	return model.Result()
}

func (r *Renderer) run(model tea.Model) (tea.Model, error) {
	options := []tea.ProgramOption{tea.WithInput(r.opts.Input), tea.WithOutput(r.opts.Output)}
	if r.opts.AltScreen {
		options = append(options, tea.WithAltScreen())
	}
	if r.opts.Context != nil {
		options = append(options, tea.WithContext(r.opts.Context))
	}
	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		return nil, fmt.Errorf("run terminal ui: %w", err)
	}
	return final, nil
}
