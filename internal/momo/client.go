package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultBaseURL targets the provider sandbox.
const DefaultBaseURL = "https://sandbox.momodeveloper.mtn.com"

const defaultRequestTimeout = 30 * time.Second

// Client holds the credentials and transport shared by every product. Use
// Collection, Disbursement or Remittance to get an API surface bound to a
// product subscription key.
type Client struct {
	baseURL      string
	environment  Environment
	apiUser      string
	apiKey       string
	callbackHost string
	httpClient   *http.Client
	logger       *slog.Logger
	validate     *validator.Validate
}

// NewClient builds a provider client. baseURL falls back to the sandbox and
// httpClient to a 30 second timeout client. callbackHost, when set, is the
// externally reachable base URL of this gateway and is sent as X-Callback-Url
// on operations that support callbacks.
func NewClient(baseURL string, environment Environment, apiUser, apiKey, callbackHost string, logger *slog.Logger, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		environment:  environment,
		apiUser:      apiUser,
		apiKey:       apiKey,
		callbackHost: strings.TrimRight(callbackHost, "/"),
		httpClient:   httpClient,
		logger:       logger.With("component", "momo_client"),
		validate:     validator.New(),
	}
}

// productClient carries one product's subscription key and token cache. Its
// exported methods are promoted onto the product wrappers.
type productClient struct {
	c               *Client
	product         string
	subscriptionKey string
	tokens          *tokenManager
}

func (c *Client) newProductClient(product, subscriptionKey string) *productClient {
	p := &productClient{
		c:               c,
		product:         product,
		subscriptionKey: subscriptionKey,
	}
	p.tokens = newTokenManager(p.createAccessToken)
	return p
}

func (p *productClient) url(path string) string {
	return p.c.baseURL + "/" + p.product + "/" + path
}

// callbackURL builds the X-Callback-Url value for an operation, or "" when
// no callback host is configured.
func (p *productClient) callbackURL(routePrefix, category string) string {
	if p.c.callbackHost == "" {
		return ""
	}
	return p.c.callbackHost + "/" + routePrefix + "/" + category
}

// do sends an authenticated JSON request to a product endpoint. A non-2xx
// response becomes an *APIError carrying the response body.
func (p *productClient) do(ctx context.Context, method, path string, headers map[string]string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.url(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	token, err := p.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("obtain access token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Target-Environment", string(p.c.environment))
	req.Header.Set("Ocp-Apim-Subscription-Key", p.subscriptionKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
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

// doForm posts a form-encoded body, used by the token and bc-authorize
// endpoints which do not speak JSON on the request side.
func (p *productClient) doForm(ctx context.Context, path string, form url.Values, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url(path), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Target-Environment", string(p.c.environment))
	req.Header.Set("Ocp-Apim-Subscription-Key", p.subscriptionKey)
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := p.c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
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

// createResource validates and posts a request, assigning the reference id
// the provider will echo back in callbacks. A blank referenceID gets a fresh
// UUID. The returned id is the handle for later status queries.
func (p *productClient) createResource(ctx context.Context, path, routePrefix, category, referenceID string, body any) (string, error) {
	if err := p.c.validate.StructCtx(ctx, body); err != nil {
		return "", fmt.Errorf("validate request: %w", err)
	}
	if referenceID == "" {
		referenceID = uuid.NewString()
	}
	headers := map[string]string{
		"X-Reference-Id": referenceID,
		"X-Callback-Url": p.callbackURL(routePrefix, category),
	}
	if err := p.do(ctx, http.MethodPost, path, headers, body, nil); err != nil {
		return "", err
	}
	return referenceID, nil
}

// BCAuthorize starts a consumer-consent flow for the given msisdn. The
// returned auth request id feeds OAuth2Token.
func (p *productClient) BCAuthorize(ctx context.Context, msisdn string) (BCAuthorizeResponse, error) {
	form := url.Values{}
	form.Set("login_hint", fmt.Sprintf("ID:%s/MSISDN", msisdn))
	form.Set("scope", "profile")
	form.Set("access_type", "offline")

	token, err := p.tokens.AccessToken(ctx)
	if err != nil {
		return BCAuthorizeResponse{}, fmt.Errorf("obtain access token: %w", err)
	}
	var out BCAuthorizeResponse
	err = p.doForm(ctx, "v1_0/bc-authorize", form, map[string]string{
		"Authorization": "Bearer " + token,
	}, &out)
	return out, err
}

// OAuth2Token exchanges a bc-authorize request id for a consumer-scoped
// token.
func (p *productClient) OAuth2Token(ctx context.Context, authReqID string) (OAuth2TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "urn:openid:params:grant-type:ciba")
	form.Set("auth_req_id", authReqID)

	var out OAuth2TokenResponse
	err := p.doFormBasicAuth(ctx, "oauth2/token/", form, &out)
	return out, err
}

func (p *productClient) doFormBasicAuth(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url(path), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(p.c.apiUser, p.c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Target-Environment", string(p.c.environment))
	req.Header.Set("Ocp-Apim-Subscription-Key", p.subscriptionKey)

	resp, err := p.c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
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

// AccountBalance returns the product account balance in its default
// currency.
func (p *productClient) AccountBalance(ctx context.Context) (Balance, error) {
	var out Balance
	err := p.do(ctx, http.MethodGet, "v1_0/account/balance", nil, nil, &out)
	return out, err
}

// AccountBalanceInCurrency returns the balance held in a specific currency.
func (p *productClient) AccountBalanceInCurrency(ctx context.Context, currency string) (Balance, error) {
	var out Balance
	err := p.do(ctx, http.MethodGet, "v1_0/account/balance/"+url.PathEscape(currency), nil, nil, &out)
	return out, err
}

// ValidateAccountHolderStatus reports whether an account holder is active.
func (p *productClient) ValidateAccountHolderStatus(ctx context.Context, idType, id string) (bool, error) {
	var out struct {
		Result bool `json:"result"`
	}
	path := fmt.Sprintf("v1_0/accountholder/%s/%s/active", url.PathEscape(strings.ToLower(idType)), url.PathEscape(id))
	if err := p.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return false, err
	}
	return out.Result, nil
}

// BasicUserInfo returns the KYC profile of an msisdn account holder.
func (p *productClient) BasicUserInfo(ctx context.Context, msisdn string) (BasicUserInfo, error) {
	var out BasicUserInfo
	path := "v1_0/accountholder/msisdn/" + url.PathEscape(msisdn) + "/basicuserinfo"
	err := p.do(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}
