package uiutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stoner-cli/stoner/internal/utils/colors"
)

// SuggestionSource answers a query with the suggestions to show.
type SuggestionSource func(ctx context.Context, query string) ([]string, error)

const validationMessage = "type a repo name"

type autocompleteKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

var autocompleteKeys = autocompleteKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "move down"),
	),
	Complete: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c", "cancel"),
	),
}

func (k autocompleteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Complete, k.Select, k.Cancel}
}

func (k autocompleteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type suggestionsMsg struct {
	seq   int
	items []string
}

// RepositorySearchModel is a text input with suggestions that are refreshed
// from a SuggestionSource on every edit. Every query is tagged with a sequence
// number and only the answer to the latest query is shown.
type RepositorySearchModel struct {
	ctx      context.Context
	title    string
	source   SuggestionSource
	pageSize int
	onSelect func(string) tea.Cmd

	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	seq        int
	loading    bool
	items      []string
	cursor     int
	validation string
	selected   string
	done       bool
}

func NewRepositorySearchModel(
	ctx context.Context,
	title string,
	source SuggestionSource,
	pageSize int,
	onSelect func(string) tea.Cmd,
) *RepositorySearchModel {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "start typing to search"
	input.Focus()
	if pageSize <= 0 {
		pageSize = 5
	}
	return &RepositorySearchModel{
		ctx:      ctx,
		title:    title,
		source:   source,
		pageSize: pageSize,
		onSelect: onSelect,
		input:    input,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		loading:  true,
	}
}

func (m *RepositorySearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.query(m.seq, ""))
}

func (m *RepositorySearchModel) query(seq int, q string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.source(m.ctx, q)
		if err != nil {
			return err
		}
		return suggestionsMsg{seq, items}
	}
}

// Selected returns the selected suggestion once the user has picked one.
func (m *RepositorySearchModel) Selected() (string, bool) {
	return m.selected, m.done
}

func (m *RepositorySearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.items = msg.items
		m.cursor = 0
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		switch {
		case key.Matches(msg, autocompleteKeys.Cancel):
			m.done = true
			return m, ErrCmd(ErrCancelled)
		case key.Matches(msg, autocompleteKeys.Select):
			if m.loading || len(m.items) == 0 {
				m.validation = validationMessage
				return m, nil
			}
			m.selected = m.items[m.cursor]
			m.done = true
			m.input.Blur()
			return m, m.onSelect(m.selected)
		case key.Matches(msg, autocompleteKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, autocompleteKeys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, autocompleteKeys.Complete):
			if len(m.items) == 0 {
				return m, nil
			}
			m.input.SetValue(m.items[m.cursor])
			m.input.CursorEnd()
			return m, m.refresh()
		}
		prev := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == prev {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.refresh())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *RepositorySearchModel) refresh() tea.Cmd {
	m.seq++
	m.loading = true
	m.validation = ""
	return m.query(m.seq, m.input.Value())
}

func (m *RepositorySearchModel) View() string {
	title := colors.QuestionStyle.Render(m.title + ":")
	if m.done {
		if m.selected == "" {
			return title
		}
		return title + " " + colors.UserInputStyle.Render(m.selected)
	}

	line := title + " " + m.input.View()
	if m.loading {
		line += " " + m.spinner.View()
	}
	lines := []string{line}

	start := m.cursor / m.pageSize * m.pageSize
	end := min(start+m.pageSize, len(m.items))
	for i := start; i < end; i++ {
		if i == m.cursor {
			lines = append(lines, colors.UserInputStyle.Render("❯ "+m.items[i]))
		} else {
			lines = append(lines, "  "+m.items[i])
		}
	}
	if rest := len(m.items) - end; rest > 0 {
		lines = append(lines, colors.FaintStyle.Render(fmt.Sprintf("  (%d more)", rest)))
	}
	if !m.loading && len(m.items) == 0 && m.input.Value() != "" {
		lines = append(lines, colors.FaintStyle.Render("  no matches"))
	}
	if m.validation != "" {
		lines = append(lines, colors.FailureStyle.Render(m.validation))
	}
	lines = append(lines, m.help.View(autocompleteKeys))
	return strings.Join(lines, "\n")
}
