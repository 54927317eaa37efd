package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultRemoteBaseURL = "https://dummyjson.com"
	remoteTimeout        = 10 * time.Second
)

// remoteUsernames maps the demo account emails the remote provider knows
// about to its login usernames. The provider authenticates by username,
// the app by email.
var remoteUsernames = map[string]string{
	"emily.johnson@x.dummyjson.com":    "emilys",
	"michael.williams@x.dummyjson.com": "michaelw",
	"sophia.brown@x.dummyjson.com":     "sophiab",
}

// RemoteProvider authenticates a fixed set of demo accounts against an
// external auth API. It is a best-effort fallback: any failure simply
// means "no match" and the caller reports invalid credentials.
type RemoteProvider struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewRemoteProvider builds a RemoteProvider. An empty baseURL uses the
// public endpoint.
func NewRemoteProvider(baseURL string, logger *slog.Logger) *RemoteProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultRemoteBaseURL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RemoteProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: remoteTimeout},
		logger:  logger,
	}
}

// Login attempts remote authentication for email. Returns ok=false when
// the email is unknown to the provider or the provider rejects the
// credentials.
func (p *RemoteProvider) Login(ctx context.Context, email, password string) (Session, bool) {
	username, known := remoteUsernames[strings.ToLower(strings.TrimSpace(email))]
	if !known {
		return Session{}, false
	}

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Session{}, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return Session{}, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		p.logger.Debug("remote login failed", "error", err)
		return Session{}, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		p.logger.Debug("remote login rejected", "status", resp.StatusCode)
		return Session{}, false
	}

	var payload struct {
		ID          json.Number `json:"id"`
		Username    string      `json:"username"`
		Email       string      `json:"email"`
		FirstName   string      `json:"firstName"`
		LastName    string      `json:"lastName"`
		AccessToken string      `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		p.logger.Debug("remote login decode failed", "error", err)
		return Session{}, false
	}
	if payload.AccessToken == "" {
		return Session{}, false
	}

	return Session{
		Token: payload.AccessToken,
		User: User{
			ID:        payload.ID.String(),
			Username:  payload.Username,
			Email:     payload.Email,
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
		},
	}, true
}
