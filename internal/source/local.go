package source

import (
	"context"

	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
)

// Local assembles rows from an in-memory participant set instead of
// calling the backend. Used for demo deployments and SSH-served boards
// with no API behind them. It never fails.
type Local struct {
	participants []leaderboard.Participant
}

func NewLocal(participants []leaderboard.Participant) *Local {
	return &Local{participants: participants}
}

func (l *Local) FetchRows(ctx context.Context, scope leaderboard.Scope, window leaderboard.Window) ([]leaderboard.ScoredRow, error) {
	return leaderboard.Assemble(l.participants, scope, window), nil
}
