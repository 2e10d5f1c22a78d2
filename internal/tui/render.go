package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KenW28/Push-Up-Analyzer/internal/controller"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginTop(1).
			MarginBottom(1)

	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	goldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	silverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	bronzeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// renderBoard is a pure projection of the controller view onto the screen.
// updatedAt is the time of the last successful render; it is zero until
// data has loaded and is deliberately left alone on errors.
func renderBoard(v controller.View, updatedAt time.Time, logoutBusy bool, alert string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("💪 Push-Up Leaderboard") + "\n\n")

	// Auth label. A degraded auth check shows its note instead.
	if v.AuthNote != "" {
		b.WriteString(errorStyle.Render(v.AuthNote) + "\n\n")
	} else if v.Session.Username != "" {
		b.WriteString(fmt.Sprintf("Logged in as: %s\n\n", v.Session.Username))
	}

	b.WriteString(infoStyle.Render(fmt.Sprintf("Scope: %s   Window: %s", v.Filters.Scope, v.Filters.Window)))
	b.WriteString("\n\n")

	switch {
	case v.State == controller.StateIdle || v.State == controller.StateAwaitingAuth:
		b.WriteString("Checking login...\n")
	case v.State == controller.StateError && v.Error != "":
		b.WriteString(renderErrorRow(v.Error))
	case v.State == controller.StateError:
		// Auth failed before any data loaded; the note above says so.
	default:
		b.WriteString(renderRows(v))
	}

	if v.State != controller.StateError && !updatedAt.IsZero() {
		b.WriteString("\n" + mutedStyle.Render("Last updated: "+updatedAt.Format("Jan 2, 3:04:05 PM")) + "\n")
	}

	if alert != "" {
		b.WriteString("\n" + errorStyle.Render(alert) + "\n")
	}

	logoutLabel := "l logout"
	if logoutBusy {
		logoutLabel = "logging out..."
	}
	b.WriteString("\n" + mutedStyle.Render("s scope · w window · r refresh · "+logoutLabel+" · q quit"))

	return b.String()
}

func renderRows(v controller.View) string {
	if v.State == controller.StateAwaitingData && len(v.Rows) == 0 {
		return "Loading leaderboard...\n"
	}
	if len(v.Rows) == 0 {
		return "No entries yet\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-6s %-20s %10s\n", "Rank", "User", "Reps"))

	for _, row := range v.Rows {
		rank := fmt.Sprintf("#%d", row.Rank)

		var displayRank string
		switch row.Rank {
		case 1:
			displayRank = goldStyle.Render(rank) + strings.Repeat(" ", 7-len(rank))
		case 2:
			displayRank = silverStyle.Render(rank) + strings.Repeat(" ", 7-len(rank))
		case 3:
			displayRank = bronzeStyle.Render(rank) + strings.Repeat(" ", 7-len(rank))
		default:
			displayRank = fmt.Sprintf("%-7s", rank)
		}

		b.WriteString(fmt.Sprintf("%s%-20s %10d\n", displayRank, row.Username, row.TotalReps))
	}

	return b.String()
}

// renderErrorRow replaces the whole table with a single merged row.
func renderErrorRow(msg string) string {
	return errorStyle.Render(msg) + "\n"
}
