package input

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user dismisses the picker without
// choosing anything.
var ErrCancelled = errors.New("selection cancelled")

// Choice is one selectable entry in the convention picker: a registry name
// plus a sample identifier rendered in that convention.
type Choice struct {
	Name   string
	Sample string
}

type choiceItem Choice

func (i choiceItem) Title() string       { return i.Name }
func (i choiceItem) Description() string { return i.Sample }
func (i choiceItem) FilterValue() string { return i.Name }

type pickerModel struct {
	list      list.Model
	choice    string
	cancelled bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Don't steal keys while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.choice = item.Name
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// SelectConvention shows a full-screen filterable picker and returns the
// name the user chose. Returns ErrCancelled if they backed out.
func SelectConvention(title string, choices []Choice) (string, error) {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem(c)
	}

	l := list.New(items, list.NewDefaultDelegate(), 48, 20)
	l.Title = title
	l.SetShowStatusBar(false)

	final, err := tea.NewProgram(pickerModel{list: l}, tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("failed to show convention picker: %w", err)
	}

	result := final.(pickerModel)
	if result.cancelled || result.choice == "" {
		return "", ErrCancelled
	}
	return result.choice, nil
}
