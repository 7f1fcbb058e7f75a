// Package ui is the terminal front end of the user-search screen. It wires
// key events into the search controller and profile detail state machines and
// renders whatever they say the screen should show.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"socialcli/internal/client/api"
	"socialcli/internal/client/models"
	"socialcli/internal/client/profile"
	"socialcli/internal/client/search"
	"socialcli/internal/logging"
)

type searchResultMsg struct {
	term  string
	users []models.User
	err   error
}

type followResultMsg struct {
	user *models.User
	err  error
}

type model struct {
	api     api.Client
	search  *search.Controller
	detail  *profile.Detail
	log     logging.Logger
	timeout time.Duration

	input   textinput.Model
	spinner spinner.Model
	modal   viewport.Model
	cursor  int
	width   int
	height  int
}

// Run starts the interactive search screen and blocks until the user quits.
func Run(apiClient api.Client, ctrl *search.Controller, detail *profile.Detail, timeout time.Duration, log logging.Logger) error {
	m := newModel(apiClient, ctrl, detail, timeout, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newModel(apiClient api.Client, ctrl *search.Controller, detail *profile.Detail, timeout time.Duration, log logging.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Search users"
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return model{
		api:     apiClient,
		search:  ctrl,
		detail:  detail,
		log:     log,
		timeout: timeout,
		input:   ti,
		spinner: sp,
		modal:   viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = min(60, msg.Width-6)
		m.modal.Width = min(70, msg.Width-4)
		m.modal.Height = max(msg.Height-8, 5)
		m.renderDetail()

	case searchResultMsg:
		// Results are applied in arrival order; with overlapping lookups the
		// last one to land owns the screen.
		m.search.ApplyResults(context.Background(), msg.users, msg.err)
		m.cursor = 0

	case followResultMsg:
		m.detail.ApplyFollowResult(context.Background(), msg.user, msg.err)
		m.renderDetail()

	case spinner.TickMsg:
		if m.search.Loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.detail.Visible() {
		return m.handleDetailKey(msg)
	}

	switch msg.String() {
	case "enter":
		if m.search.SubmitQuery(m.input.Value()) {
			return m, tea.Batch(m.searchCmd(m.input.Value()), m.spinner.Tick)
		}
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case "tab":
		return m.activateSelection()

	case "ctrl+x":
		if m.search.Display() == search.DisplayRecent {
			entries := m.search.Recent().Entries()
			if m.cursor < len(entries) {
				m.search.DismissRecent(context.Background(), entries[m.cursor].ID)
				m.clampCursor()
			}
		}
		return m, nil

	case "esc":
		// On a screen with nothing to clear, esc backs out of the app.
		if m.input.Value() == "" && len(m.search.Results()) == 0 && !m.search.Loading() {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.search.Clear()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.search.SetQuery(m.input.Value())
	m.clampCursor()
	return m, cmd
}

func (m model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f":
		if u := m.detail.User(); u != nil {
			return m, m.followCmd(u.ID)
		}
		return m, nil

	case "esc", "q":
		m.detail.Close()
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// activateSelection opens the selected result card, or re-runs the search for
// the selected recent entry.
func (m model) activateSelection() (tea.Model, tea.Cmd) {
	switch m.search.Display() {
	case search.DisplayResults:
		results := m.search.Results()
		if m.cursor < len(results) {
			m.detail.Open(results[m.cursor])
			m.renderDetail()
		}

	case search.DisplayRecent:
		entries := m.search.Recent().Entries()
		if m.cursor < len(entries) {
			term, run := m.search.SelectRecent(entries[m.cursor])
			m.input.SetValue(term)
			m.input.CursorEnd()
			m.cursor = 0
			if run {
				return m, tea.Batch(m.searchCmd(term), m.spinner.Tick)
			}
		}
	}
	return m, nil
}

func (m *model) rowCount() int {
	switch m.search.Display() {
	case search.DisplayResults:
		return len(m.search.Results())
	case search.DisplayRecent:
		return m.search.Recent().Len()
	default:
		return 0
	}
}

func (m *model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m model) searchCmd(term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		users, err := m.api.SearchUsers(ctx, term)
		return searchResultMsg{term: term, users: users, err: err}
	}
}

func (m model) followCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		user, err := m.api.ToggleFollow(ctx, userID)
		return followResultMsg{user: user, err: err}
	}
}
