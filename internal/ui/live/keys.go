package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shared by the topic and quiz screens.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Pick    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "answer"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// presentingHelp is shown while a question awaits an answer.
type presentingHelp keyMap

func (k presentingHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Pick, k.Quit}
}

func (k presentingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// feedbackHelp is shown while the acknowledgment is on screen.
type feedbackHelp keyMap

func (k feedbackHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Quit}
}

func (k feedbackHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
