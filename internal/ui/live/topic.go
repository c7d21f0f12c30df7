package live

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// topicItem is a selectable topic in the list.
type topicItem string

func (i topicItem) Title() string       { return string(i) }
func (i topicItem) Description() string { return "" }
func (i topicItem) FilterValue() string { return string(i) }

// TopicModel is the topic selection screen. The first choice is preselected.
type TopicModel struct {
	list      list.Model
	keys      keyMap
	choice    string
	confirmed bool
}

// NewTopicModel builds the selector for the given choices.
func NewTopicModel(choices []string, opts Options) TopicModel {
	items := make([]list.Item, 0, len(choices))
	for _, choice := range choices {
		items = append(items, topicItem(choice))
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	l := list.New(items, delegate, 40, max(len(items)+6, 10))
	l.Title = "Select a Topic:"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	if opts.NoColor {
		l.Styles = list.DefaultStyles()
		l.Styles.Title = l.Styles.Title.UnsetBackground().UnsetForeground()
	}
	return TopicModel{list: l, keys: defaultKeyMap()}
}

// Init implements tea.Model.
func (m TopicModel) Init() tea.Cmd {
	return nil
}

// Update confirms on enter and cancels on quit keys; everything else moves the list.
func (m TopicModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.confirmed = false
			return m, tea.Quit
		case key.Matches(typed, m.keys.Choose):
			if item, ok := m.list.SelectedItem().(topicItem); ok {
				m.choice = string(item)
				m.confirmed = true
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m TopicModel) View() string {
	if m.confirmed {
		return ""
	}
	return m.list.View()
}

// Choice returns the confirmed topic and whether the user confirmed at all.
func (m TopicModel) Choice() (string, bool) {
	return m.choice, m.confirmed
}
