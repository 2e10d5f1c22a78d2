// Package session resolves the current user's identity before any
// leaderboard data is requested, and handles logout.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// View is the backend's answer to "who is logged in right now".
type View struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username"`
}

// Gate answers the identity question and terminates sessions. Resolve
// returning an error is a degraded outcome, not a crash: the caller shows
// a failure note and treats the user as not authenticated.
type Gate interface {
	Resolve(ctx context.Context) (View, error)
	Logout(ctx context.Context) error
}

// Remote asks the backend's /api/auth endpoints.
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

func (g *Remote) Resolve(ctx context.Context) (View, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/api/auth/me", nil)
	if err != nil {
		return View{}, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return View{}, fmt.Errorf("auth check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return View{}, fmt.Errorf("auth check failed with status %d", resp.StatusCode)
	}

	var v View
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return View{}, fmt.Errorf("parse auth response: %w", err)
	}
	return v, nil
}

func (g *Remote) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("logout failed with status %d", resp.StatusCode)
	}
	return nil
}

// Static is a gate whose identity was already established by the
// transport, the way SSH public-key auth hands wish a username. Used for
// SSH-served boards and local demo runs; logout just ends the session.
type Static struct {
	Username string
}

func (g Static) Resolve(ctx context.Context) (View, error) {
	return View{LoggedIn: true, Username: g.Username}, nil
}

func (g Static) Logout(ctx context.Context) error {
	return nil
}
