// Package tui drives the leaderboard page lifecycle: one bubbletea event
// loop whose only suspension points are the auth check, row fetches, and
// logout. Everything else is synchronous.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KenW28/Push-Up-Analyzer/internal/controller"
	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
	"github.com/KenW28/Push-Up-Analyzer/internal/session"
	"github.com/KenW28/Push-Up-Analyzer/internal/source"
)

// Config wires the model to its collaborators. Updates may be nil when no
// live event stream is configured; RefreshEvery of zero disables polling.
type Config struct {
	Gate         session.Gate
	Source       source.DataSource
	LoginURL     string
	RefreshEvery time.Duration
	Updates      <-chan struct{}
	Width        int
	Height       int
}

type Model struct {
	ctrl *controller.Controller
	cfg  Config

	width  int
	height int

	updatedAt   time.Time
	logoutBusy  bool
	alert       string
	redirecting bool
}

func InitialModel(cfg Config) Model {
	return Model{
		ctrl:   controller.New(),
		cfg:    cfg,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Redirected reports whether the session ended in navigation to the login
// boundary; the caller surfaces the login URL after the program exits.
func (m Model) Redirected() bool { return m.redirecting }

type authMsg struct {
	view session.View
	err  error
}

type rowsMsg struct {
	token uint64
	rows  []leaderboard.ScoredRow
	err   error
}

type logoutDoneMsg struct {
	err error
}

type tickMsg time.Time

type liveMsg struct{}

func (m Model) Init() tea.Cmd {
	m.ctrl.BeginAuth()

	cmds := []tea.Cmd{m.resolveAuth()}
	if m.cfg.RefreshEvery > 0 {
		cmds = append(cmds, tickCmd(m.cfg.RefreshEvery))
	}
	if m.cfg.Updates != nil {
		cmds = append(cmds, waitForUpdate(m.cfg.Updates))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case authMsg:
		req, ok := m.ctrl.ApplyAuth(msg.view, msg.err)
		if ok {
			return m, m.fetch(req)
		}
		if m.ctrl.State() == controller.StateRedirect {
			m.redirecting = true
			return m, tea.Quit
		}
		// Degraded auth check: stay put and show the note.
		return m, nil

	case rowsMsg:
		if !m.ctrl.ApplyRows(msg.token, msg.rows, msg.err) {
			return m, nil
		}
		switch m.ctrl.State() {
		case controller.StateRedirect:
			m.redirecting = true
			return m, tea.Quit
		case controller.StateRendered:
			m.updatedAt = time.Now()
		}

	case logoutDoneMsg:
		if msg.err != nil {
			m.logoutBusy = false
			m.alert = "Logout failed. Try again."
			return m, nil
		}
		m.redirecting = true
		return m, tea.Quit

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.cfg.RefreshEvery)}
		if req, ok := m.ctrl.Refresh(); ok {
			cmds = append(cmds, m.fetch(req))
		}
		return m, tea.Batch(cmds...)

	case liveMsg:
		cmds := []tea.Cmd{waitForUpdate(m.cfg.Updates)}
		if req, ok := m.ctrl.Refresh(); ok {
			cmds = append(cmds, m.fetch(req))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "s":
		if req, ok := m.ctrl.SetScope(nextScope(m.ctrl.Filters().Scope)); ok {
			return m, m.fetch(req)
		}

	case "w":
		if req, ok := m.ctrl.SetWindow(nextWindow(m.ctrl.Filters().Window)); ok {
			return m, m.fetch(req)
		}

	case "r":
		if req, ok := m.ctrl.Refresh(); ok {
			return m, m.fetch(req)
		}

	case "l":
		if !m.logoutBusy {
			m.logoutBusy = true
			m.alert = ""
			return m, m.logout()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.redirecting {
		if m.cfg.LoginURL != "" {
			return "Redirecting to login: " + m.cfg.LoginURL + "\n"
		}
		return "Redirecting to login...\n"
	}
	return renderBoard(m.ctrl.View(), m.updatedAt, m.logoutBusy, m.alert)
}

func (m Model) resolveAuth() tea.Cmd {
	gate := m.cfg.Gate
	return func() tea.Msg {
		v, err := gate.Resolve(context.Background())
		return authMsg{view: v, err: err}
	}
}

func (m Model) fetch(req controller.Request) tea.Cmd {
	src := m.cfg.Source
	return func() tea.Msg {
		rows, err := src.FetchRows(context.Background(), req.Filters.Scope, req.Filters.Window)
		return rowsMsg{token: req.Token, rows: rows, err: err}
	}
}

func (m Model) logout() tea.Cmd {
	gate := m.cfg.Gate
	return func() tea.Msg {
		return logoutDoneMsg{err: gate.Logout(context.Background())}
	}
}

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForUpdate(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-updates
		return liveMsg{}
	}
}

func nextScope(s leaderboard.Scope) leaderboard.Scope {
	if s == leaderboard.ScopeGlobal {
		return leaderboard.ScopeFriends
	}
	return leaderboard.ScopeGlobal
}

func nextWindow(w leaderboard.Window) leaderboard.Window {
	switch w {
	case leaderboard.WindowMonth:
		return leaderboard.WindowMinute
	case leaderboard.WindowMinute:
		return leaderboard.WindowHalfMin
	default:
		return leaderboard.WindowMonth
	}
}
