package momo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// tokenExpiryMargin is subtracted from the token lifetime so a token is
// refreshed before the provider stops accepting it.
const tokenExpiryMargin = 60 * time.Second

// tokenManager caches one product access token and refreshes it when it
// nears expiry. Safe for concurrent use.
type tokenManager struct {
	mu        sync.Mutex
	fetch     func(ctx context.Context) (TokenResponse, error)
	token     TokenResponse
	fetchedAt time.Time
	now       func() time.Time
}

func newTokenManager(fetch func(ctx context.Context) (TokenResponse, error)) *tokenManager {
	return &tokenManager{fetch: fetch, now: time.Now}
}

// AccessToken returns the cached token or fetches a fresh one.
func (m *tokenManager) AccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token.AccessToken != "" {
		expiry := m.fetchedAt.Add(time.Duration(m.token.ExpiresIn) * time.Second).Add(-tokenExpiryMargin)
		if m.now().Before(expiry) {
			return m.token.AccessToken, nil
		}
	}

	token, err := m.fetch(ctx)
	if err != nil {
		return "", err
	}
	m.token = token
	m.fetchedAt = m.now()
	return m.token.AccessToken, nil
}

// createAccessToken hits the per-product token endpoint, authenticated with
// the API user credentials instead of a bearer token.
func (p *productClient) createAccessToken(ctx context.Context) (TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url("token/"), nil)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(p.c.apiUser, p.c.apiKey)
	req.Header.Set("Ocp-Apim-Subscription-Key", p.subscriptionKey)

	resp, err := p.c.httpClient.Do(req)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("POST %s token: %w", p.product, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return TokenResponse{}, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}
	return token, nil
}
