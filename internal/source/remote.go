package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
)

// Remote queries the backend's /api/leaderboard endpoint.
type Remote struct {
	baseURL string
	client  *http.Client
}

func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Remote{baseURL: baseURL, client: client}
}

func (r *Remote) FetchRows(ctx context.Context, scope leaderboard.Scope, window leaderboard.Window) ([]leaderboard.ScoredRow, error) {
	q := url.Values{}
	q.Set("scope", string(scope))
	q.Set("window", string(window))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/leaderboard?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build leaderboard request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read leaderboard response: %w", err)
	}

	var payload struct {
		Rows json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse leaderboard response: %w", err)
	}

	// A missing or malformed rows field is treated as an empty board, not
	// an error. The backend owns the payload shape; we stay up regardless.
	if len(payload.Rows) == 0 {
		return []leaderboard.ScoredRow{}, nil
	}
	var rows []leaderboard.ScoredRow
	if err := json.Unmarshal(payload.Rows, &rows); err != nil {
		return []leaderboard.ScoredRow{}, nil
	}
	if rows == nil {
		rows = []leaderboard.ScoredRow{}
	}
	return rows, nil
}
