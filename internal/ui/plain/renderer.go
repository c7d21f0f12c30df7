package plain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizzer/internal/quiz"
)

// Options configures the console renderer.
type Options struct {
	NoColor bool
}

// Renderer runs the topic selector and quiz as numbered console prompts.
type Renderer struct {
	reader  *bufio.Reader
	out     io.Writer
	noColor bool
}

// New builds a Renderer reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Renderer {
	return &Renderer{reader: bufio.NewReader(in), out: out, noColor: opts.NoColor}
}

// SelectTopic lists the choices and blocks until one is confirmed. An empty
// line confirms the first choice; end of input or "q" returns quiz.ErrCancelled.
func (r *Renderer) SelectTopic(choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no topics to choose from")
	}
	fmt.Fprintln(r.out, r.stylize("Select a Topic:", lipgloss.Color("33")))
	for i, choice := range choices {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, choice)
	}
	for {
		fmt.Fprintf(r.out, "Topic [%s]: ", choices[0])
		line, err := readLine(r.reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.TrimSpace(line)
		if err == io.EOF && line == "" {
			fmt.Fprintln(r.out)
			return "", quiz.ErrCancelled
		}
		if isQuit(line) {
			return "", quiz.ErrCancelled
		}
		if line == "" {
			return choices[0], nil
		}
		if index, ok := parseChoice(line, choices); ok {
			return choices[index], nil
		}
		if err == io.EOF {
			return "", quiz.ErrCancelled
		}
		fmt.Fprintf(r.out, "Please enter a number between 1 and %d.\n", len(choices))
	}
}

// Play asks questions until the session passes. End of input or "q"
// abandons the session and returns quiz.ErrCancelled.
func (r *Renderer) Play(session *quiz.Session, title string) (quiz.Summary, error) {
	fmt.Fprintln(r.out, r.stylize(title, lipgloss.Color("33")))
	for !session.Done() {
		round, err := session.Next()
		if err != nil {
			session.Abandon()
			return session.Summary(), err
		}
		r.printRound(round)
		index, err := r.readAnswer(round.Options)
		if err != nil {
			session.Abandon()
			return session.Summary(), err
		}
		outcome, err := session.Answer(round.Options[index])
		if err != nil {
			session.Abandon()
			return session.Summary(), err
		}
		r.printFeedback(outcome)
	}
	return session.Summary(), nil
}

func (r *Renderer) printRound(round quiz.Round) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.stylize(fmt.Sprintf("Progress: %.0f%% (score %d/%d)", round.Progress, round.Score, round.Required), lipgloss.Color("242")))
	fmt.Fprintf(r.out, "Q%d. %s\n", round.Number, round.Question)
	for i, option := range round.Options {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, option)
	}
}

func (r *Renderer) readAnswer(options []string) (int, error) {
	for {
		fmt.Fprint(r.out, "Answer: ")
		line, err := readLine(r.reader)
		if err != nil && err != io.EOF {
			return 0, err
		}
		if isQuit(line) {
			return 0, quiz.ErrCancelled
		}
		if index, ok := parseChoice(line, options); ok {
			return index, nil
		}
		if err == io.EOF {
			fmt.Fprintln(r.out)
			return 0, quiz.ErrCancelled
		}
		fmt.Fprintf(r.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

func (r *Renderer) printFeedback(outcome quiz.Outcome) {
	heading, message := quiz.Feedback(outcome)
	color := lipgloss.Color("196")
	if outcome.Correct {
		color = lipgloss.Color("42")
	}
	fmt.Fprintf(r.out, "%s %s\n", r.stylize("["+heading+"]", color), message)
}

// stylize applies optional color styling.
func (r *Renderer) stylize(text string, color lipgloss.Color) string {
	if r.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
