package live

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizzer/internal/quiz"
)

// phase is the quiz screen state.
type phase int

const (
	// phasePresenting shows a question and waits for an answer.
	phasePresenting phase = iota
	// phaseFeedback shows the acknowledgment for the last answer.
	phaseFeedback
	// phaseFinished means the program is quitting.
	phaseFinished
)

// QuizModel is the question screen. It drives a quiz.Session and only renders it.
type QuizModel struct {
	session   *quiz.Session
	title     string
	round     quiz.Round
	cursor    int
	phase     phase
	outcome   quiz.Outcome
	progress  progress.Model
	help      help.Model
	keys      keyMap
	styles    styles
	err       error
	abandoned bool
}

// NewQuizModel presents the first question of session.
func NewQuizModel(session *quiz.Session, title string, opts Options) QuizModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage())
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill("#ffffff"), progress.WithWidth(40), progress.WithoutPercentage())
		bar.Full = '#'
		bar.Empty = '-'
	}
	m := QuizModel{
		session:  session,
		title:    title,
		progress: bar,
		help:     help.New(),
		keys:     defaultKeyMap(),
		styles:   newStyles(opts.NoColor),
	}
	return m.advance()
}

// Init implements tea.Model.
func (m QuizModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tea.SetWindowTitle(windowTitle)
}

// Update handles answer selection, acknowledgment and quitting.
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(typed.Width-20, 10), 60)
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			m.phase = phaseFinished
			if m.session.Done() {
				return m, tea.Quit
			}
			m.session.Abandon()
			m.abandoned = true
			return m, tea.Quit
		}
		switch m.phase {
		case phasePresenting:
			return m.updatePresenting(typed)
		case phaseFeedback:
			if key.Matches(typed, m.keys.Dismiss) {
				if m.outcome.Done {
					m.phase = phaseFinished
					return m, tea.Quit
				}
				m = m.advance()
				if m.err != nil {
					return m, tea.Quit
				}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m QuizModel) updatePresenting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.round.Options)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + count) % count
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % count
	case key.Matches(msg, m.keys.Pick):
		index := int(msg.Runes[0] - '1')
		if index < count {
			m.cursor = index
			return m.answer()
		}
	case key.Matches(msg, m.keys.Choose):
		return m.answer()
	}
	return m, nil
}

func (m QuizModel) answer() (tea.Model, tea.Cmd) {
	outcome, err := m.session.Answer(m.round.Options[m.cursor])
	if err != nil {
		m.err = err
		m.phase = phaseFinished
		return m, tea.Quit
	}
	m.outcome = outcome
	m.phase = phaseFeedback
	return m, nil
}

// advance clears the current question and presents the next one.
func (m QuizModel) advance() QuizModel {
	round, err := m.session.Next()
	if err != nil {
		m.err = err
		m.phase = phaseFinished
		return m
	}
	m.round = round
	m.cursor = 0
	m.outcome = quiz.Outcome{}
	m.phase = phasePresenting
	return m
}

// View renders the title, progress, question and either the options or the acknowledgment.
func (m QuizModel) View() string {
	if m.phase == phaseFinished {
		return ""
	}
	sections := []string{
		m.styles.Title.Render(m.title),
		m.renderProgress(),
		m.styles.Question.Render(m.round.Question),
	}
	if m.phase == phaseFeedback {
		sections = append(sections, m.renderFeedback(), m.help.View(feedbackHelp(m.keys)))
	} else {
		sections = append(sections, m.renderOptions(), m.help.View(presentingHelp(m.keys)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m QuizModel) renderProgress() string {
	state := m.session.State()
	value := m.session.Progress()
	bar := m.progress.ViewAs(clampPercent(value))
	return bar + " " + m.styles.Score.Render(fmt.Sprintf("%.0f%%  score %d/%d", value, state.Score, state.Required))
}

func (m QuizModel) renderOptions() string {
	buttons := make([]string, 0, len(m.round.Options))
	for i, option := range m.round.Options {
		label := fmt.Sprintf("%d. %s", i+1, option)
		style := m.styles.Option
		if i == m.cursor {
			style = m.styles.Selected
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, buttons...)
}

func (m QuizModel) renderFeedback() string {
	heading, message := quiz.Feedback(m.outcome)
	headingStyle := m.styles.Incorrect
	if m.outcome.Correct {
		headingStyle = m.styles.Correct
	}
	body := strings.Join([]string{
		headingStyle.Render(heading),
		message,
		m.styles.Muted.Render("Press enter to continue."),
	}, "\n\n")
	return m.styles.Modal.Render(body)
}

// Result reports how the screen ended.
func (m QuizModel) Result() (quiz.Summary, error) {
	if m.err != nil {
		return m.session.Summary(), m.err
	}
	if m.abandoned {
		return m.session.Summary(), quiz.ErrCancelled
	}
	if !m.session.Done() {
		return m.session.Summary(), errors.New("quiz ended before the required score was reached")
	}
	return m.session.Summary(), nil
}

// clampPercent maps a percentage onto the bar's 0..1 range. Only the drawing
// is clamped; the printed value is not.
func clampPercent(value float64) float64 {
	return min(max(value/100, 0), 1)
}
