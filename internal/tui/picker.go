package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var pickerKeys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "next"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "choose"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc", "q"),
		key.WithHelp("q", "quit"),
	),
}

// option is one selectable entry. Disabled options are shown but can never
// be chosen.
type option struct {
	label   string
	enabled bool
}

// picker is a single-choice Bubble Tea model: the cursor only rests on
// enabled options and the program quits once a choice is made or the player
// quits
type picker struct {
	context string
	options []option
	cursor  int
	chosen  int // -1 until chosen
	aborted bool

	keys keyMap
	help help.Model
}

func newPicker(context string, options []option) *picker {
	p := &picker{
		context: context,
		options: options,
		cursor:  -1,
		chosen:  -1,
		keys:    pickerKeys,
		help:    help.New(),
	}
	p.cursor = p.nextEnabled(-1, 1)
	return p
}

// nextEnabled returns the next enabled option from i in direction dir, or i
// when there is none
func (p *picker) nextEnabled(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(p.options); j += dir {
		if p.options[j].enabled {
			return j
		}
	}
	return i
}

func (p *picker) Init() tea.Cmd {
	return nil
}

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			p.aborted = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Left):
			p.cursor = p.nextEnabled(p.cursor, -1)
		case key.Matches(msg, p.keys.Right):
			p.cursor = p.nextEnabled(p.cursor, 1)
		case key.Matches(msg, p.keys.Choose):
			if p.cursor >= 0 && p.options[p.cursor].enabled {
				p.chosen = p.cursor
				return p, tea.Quit
			}
		}
	}
	return p, nil
}

func (p *picker) View() string {
	if p.chosen >= 0 || p.aborted {
		return ""
	}

	cells := make([]string, len(p.options))
	for i, o := range p.options {
		label := o.label
		if !o.enabled {
			label = DisabledStyle.Render(label)
		}
		if i == p.cursor {
			cells[i] = SelectedStyle.Render(label)
		} else {
			cells[i] = OptionStyle.Render(label)
		}
	}

	var sb strings.Builder
	sb.WriteString(p.context)
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	sb.WriteString("\n")
	sb.WriteString(p.help.View(p.keys))
	sb.WriteString("\n")
	return sb.String()
}
