// Package source provides the leaderboard data sources: a remote source
// backed by the HTTP API and a local source that assembles rows itself.
// A deployment picks exactly one at startup.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
)

// ErrUnauthorized indicates the backend rejected the session. Callers
// redirect to login instead of rendering an error.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is a non-2xx, non-401 response from the leaderboard API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("leaderboard request failed with status %d", e.Code)
}

// DataSource fetches scored rows for a scope/window combination. Rows come
// back unranked; the controller sorts and assigns ranks.
type DataSource interface {
	FetchRows(ctx context.Context, scope leaderboard.Scope, window leaderboard.Window) ([]leaderboard.ScoredRow, error)
}
