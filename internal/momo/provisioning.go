package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Provisioning creates sandbox API users and keys. The sandbox is the only
// environment exposing these endpoints; production credentials come from the
// provider portal.
type Provisioning struct {
	c               *Client
	subscriptionKey string
}

// Provisioning binds the client to the sandbox provisioning endpoints using
// any product subscription key.
func (c *Client) Provisioning(subscriptionKey string) *Provisioning {
	return &Provisioning{c: c, subscriptionKey: subscriptionKey}
}

func (p *Provisioning) do(ctx context.Context, method, path, referenceID string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.c.baseURL+"/"+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", p.subscriptionKey)
	if referenceID != "" {
		req.Header.Set("X-Reference-Id", referenceID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// CreateAPIUser registers a sandbox API user. A blank userID gets a fresh
// UUID; the returned id becomes the API user for token requests.
func (p *Provisioning) CreateAPIUser(ctx context.Context, userID, providerCallbackHost string) (string, error) {
	if userID == "" {
		userID = uuid.NewString()
	}
	body := map[string]string{"providerCallbackHost": providerCallbackHost}
	if err := p.do(ctx, http.MethodPost, "v1_0/apiuser", userID, body, nil); err != nil {
		return "", err
	}
	return userID, nil
}

// GetAPIUser fetches a provisioned sandbox user.
func (p *Provisioning) GetAPIUser(ctx context.Context, userID string) (ApiUser, error) {
	var out ApiUser
	err := p.do(ctx, http.MethodGet, "v1_0/apiuser/"+url.PathEscape(userID), "", nil, &out)
	return out, err
}

// CreateAPIKey generates a fresh API key for a sandbox user. Keys are shown
// only once.
func (p *Provisioning) CreateAPIKey(ctx context.Context, userID string) (ApiUserKeyResult, error) {
	var out ApiUserKeyResult
	err := p.do(ctx, http.MethodPost, "v1_0/apiuser/"+url.PathEscape(userID)+"/apikey", "", nil, &out)
	return out, err
}
