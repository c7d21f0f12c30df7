package live

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles for both screens.
type styles struct {
	Title     lipgloss.Style
	Question  lipgloss.Style
	Option    lipgloss.Style
	Selected  lipgloss.Style
	Score     lipgloss.Style
	Modal     lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Muted     lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			Title:     plain.Bold(true).MarginBottom(1),
			Question:  plain.Width(questionWidth).MarginBottom(1),
			Option:    plain.Padding(0, 2).Border(lipgloss.NormalBorder()),
			Selected:  plain.Padding(0, 2).Border(lipgloss.DoubleBorder()),
			Score:     plain,
			Modal:     plain.Padding(1, 2).Border(lipgloss.NormalBorder()).Width(questionWidth),
			Correct:   plain.Bold(true),
			Incorrect: plain.Bold(true),
			Muted:     plain,
		}
	}
	return styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).MarginBottom(1),
		Question:  lipgloss.NewStyle().Width(questionWidth).MarginBottom(1),
		Option:    lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Selected:  lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Foreground(lipgloss.Color("39")).Bold(true),
		Score:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Modal:     lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("244")).Width(questionWidth),
		Correct:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Incorrect: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

const questionWidth = 60

const windowTitle = "Quiz"
