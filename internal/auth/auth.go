// Package auth resolves bearer tokens into profile ids.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

//go:generate mockgen -destination=./auth_mock.go -package=auth -source=auth.go

// ErrUnauthorized is returned when the token is unknown or expired.
var ErrUnauthorized = errors.New("unauthorized")

// Authenticator resolves an access token into the profile id it belongs to.
// Token issuance belongs to the identity service.
type Authenticator interface {
	Resolve(ctx context.Context, token string) (string, error)
}

type remote struct {
	host string

	c *http.Client
}

// NewRemote returns Authenticator backed by the identity service.
func NewRemote(host string) Authenticator {
	return NewRemoteWithHTTPClient(host, &http.Client{})
}

// NewRemoteWithHTTPClient returns Authenticator with provided http.Client.
func NewRemoteWithHTTPClient(host string, c *http.Client) Authenticator {
	return &remote{
		host: host,
		c:    c,
	}
}

func (a *remote) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/token", a.host), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := a.c.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to resolve token: %w", err)
	}
	defer resp.Body.Close() // nolint

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("token resolution failed with status %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if body.ID == "" {
		return "", ErrUnauthorized
	}

	return body.ID, nil
}
