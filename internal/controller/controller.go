// Package controller owns the refresh cycle: gate the session, fetch rows
// for the current filters, rank them, and hand the result to the view.
// Filter changes supersede in-flight fetches; only the response matching
// the most recently issued request is ever applied.
package controller

import (
	"errors"

	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
	"github.com/KenW28/Push-Up-Analyzer/internal/session"
	"github.com/KenW28/Push-Up-Analyzer/internal/source"
)

// State of the refresh cycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingAuth
	StateAwaitingData
	StateRendered
	StateError
	// StateRedirect means navigation to the login boundary: the session is
	// missing, expired, or could not be checked. Terminal.
	StateRedirect
)

// ErrorMessage is the single message shown in place of the board when a
// fetch fails.
const ErrorMessage = "Error loading leaderboard."

// Filters is the scope/window pair a fetch is issued for.
type Filters struct {
	Scope  leaderboard.Scope
	Window leaderboard.Window
}

func DefaultFilters() Filters {
	return Filters{Scope: leaderboard.ScopeGlobal, Window: leaderboard.WindowMonth}
}

// Request tells the caller which fetch to perform. The token comes back
// with the response so stale results can be discarded.
type Request struct {
	Token   uint64
	Filters Filters
}

// View is everything the renderer needs for one paint.
type View struct {
	State    State
	Rows     []leaderboard.RankedRow
	Filters  Filters
	Session  session.View
	AuthNote string
	Error    string
}

type Controller struct {
	state    State
	filters  Filters
	seq      uint64
	authed   bool
	session  session.View
	authNote string
	rows     []leaderboard.RankedRow
	errMsg   string
}

func New() *Controller {
	return &Controller{state: StateIdle, filters: DefaultFilters()}
}

func (c *Controller) State() State     { return c.state }
func (c *Controller) Filters() Filters { return c.filters }

func (c *Controller) View() View {
	return View{
		State:    c.state,
		Rows:     c.rows,
		Filters:  c.filters,
		Session:  c.session,
		AuthNote: c.authNote,
		Error:    c.errMsg,
	}
}

// BeginAuth starts the cycle. Called once, on initialization.
func (c *Controller) BeginAuth() {
	c.state = StateAwaitingAuth
}

// ApplyAuth consumes the gate's answer. On a logged-in session it issues
// the first fetch request. An explicit "not logged in" redirects to the
// login boundary. A failed check is degraded but non-fatal: the auth
// label gets a note and the pipeline halts with no identity.
func (c *Controller) ApplyAuth(v session.View, err error) (Request, bool) {
	if err != nil {
		c.authNote = "Auth check failed"
		c.state = StateError
		return Request{}, false
	}
	if !v.LoggedIn {
		c.state = StateRedirect
		return Request{}, false
	}
	c.authed = true
	c.session = v
	return c.issue(), true
}

// SetScope updates the filter state and supersedes any in-flight fetch.
// No fetch is issued before auth has completed.
func (c *Controller) SetScope(s leaderboard.Scope) (Request, bool) {
	c.filters.Scope = s
	return c.reenter()
}

// SetWindow updates the filter state and supersedes any in-flight fetch.
func (c *Controller) SetWindow(w leaderboard.Window) (Request, bool) {
	c.filters.Window = w
	return c.reenter()
}

// Refresh re-enters the fetch cycle with the current filters unchanged.
func (c *Controller) Refresh() (Request, bool) {
	return c.reenter()
}

func (c *Controller) reenter() (Request, bool) {
	if !c.authed {
		return Request{}, false
	}
	switch c.state {
	case StateAwaitingData, StateRendered, StateError:
		return c.issue(), true
	default:
		// Navigating away; nothing left to refresh.
		return Request{}, false
	}
}

func (c *Controller) issue() Request {
	c.seq++
	c.state = StateAwaitingData
	return Request{Token: c.seq, Filters: c.filters}
}

// ApplyRows consumes a fetch result. A token that is no longer current
// means a newer request superseded this one; the result is discarded and
// the view untouched. Returns whether the view changed.
func (c *Controller) ApplyRows(token uint64, rows []leaderboard.ScoredRow, err error) bool {
	if token != c.seq || c.state != StateAwaitingData {
		return false
	}

	if errors.Is(err, source.ErrUnauthorized) {
		c.state = StateRedirect
		return true
	}
	if err != nil {
		c.rows = nil
		c.errMsg = ErrorMessage
		c.state = StateError
		return true
	}

	c.rows = leaderboard.Rank(rows)
	c.errMsg = ""
	c.state = StateRendered
	return true
}
