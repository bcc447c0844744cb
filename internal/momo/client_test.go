package momo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func validRequestToPay() RequestToPay {
	return RequestToPay{
		Amount:     "100",
		Currency:   "UGX",
		ExternalID: "payment-001",
		Payer:      Party{PartyIDType: "MSISDN", PartyID: "+256700000000"},
	}
}

func newTestCollection(t *testing.T, handler http.Handler) (*Collection, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, EnvironmentSandbox, "api-user", "api-key", "https://callbacks.example.com", testLogger, server.Client())
	return client.Collection("sub-key"), server
}

func TestRequestToPaySendsAuthenticatedRequest(t *testing.T) {
	var tokenCalls, rtpCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "api-user", user)
		assert.Equal(t, "api-key", pass)
		assert.Equal(t, "sub-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", TokenType: "access_token", ExpiresIn: 3600})
	})
	mux.HandleFunc("POST /collection/v1_0/requesttopay", func(w http.ResponseWriter, r *http.Request) {
		rtpCalls.Add(1)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "sandbox", r.Header.Get("X-Target-Environment"))
		assert.Equal(t, "sub-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "ref-123", r.Header.Get("X-Reference-Id"))
		assert.Equal(t, "https://callbacks.example.com/collection_request_to_pay/REQUEST_TO_PAY", r.Header.Get("X-Callback-Url"))

		var req RequestToPay
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "payment-001", req.ExternalID)
		w.WriteHeader(http.StatusAccepted)
	})

	collection, _ := newTestCollection(t, mux)

	referenceID, err := collection.RequestToPay(context.Background(), "ref-123", validRequestToPay())
	require.NoError(t, err)
	assert.Equal(t, "ref-123", referenceID)
	assert.Equal(t, int32(1), tokenCalls.Load())
	assert.Equal(t, int32(1), rtpCalls.Load())
}

func TestRequestToPayGeneratesReferenceID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	var seenReference string
	mux.HandleFunc("POST /collection/v1_0/requesttopay", func(w http.ResponseWriter, r *http.Request) {
		seenReference = r.Header.Get("X-Reference-Id")
		w.WriteHeader(http.StatusAccepted)
	})

	collection, _ := newTestCollection(t, mux)

	referenceID, err := collection.RequestToPay(context.Background(), "", validRequestToPay())
	require.NoError(t, err)
	assert.NotEmpty(t, referenceID)
	assert.Equal(t, referenceID, seenReference)
}

func TestRequestToPayValidatesRequest(t *testing.T) {
	collection, _ := newTestCollection(t, http.NotFoundHandler())

	_, err := collection.RequestToPay(context.Background(), "ref-1", RequestToPay{Amount: "100"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate request")
}

func TestTokenIsCachedAcrossCalls(t *testing.T) {
	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, _ *http.Request) {
		tokenCalls.Add(1)
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	mux.HandleFunc("POST /collection/v1_0/requesttopay", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	collection, _ := newTestCollection(t, mux)

	ctx := context.Background()
	_, err := collection.RequestToPay(ctx, "ref-1", validRequestToPay())
	require.NoError(t, err)
	_, err = collection.RequestToPay(ctx, "ref-2", validRequestToPay())
	require.NoError(t, err)

	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestTokenRefreshesNearExpiry(t *testing.T) {
	calls := 0
	manager := newTokenManager(func(context.Context) (TokenResponse, error) {
		calls++
		return TokenResponse{AccessToken: "tok", ExpiresIn: 3600}, nil
	})

	clock := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return clock }

	ctx := context.Background()
	_, err := manager.AccessToken(ctx)
	require.NoError(t, err)
	_, err = manager.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Inside the expiry margin the cached token is no longer trusted.
	clock = clock.Add(3600*time.Second - 30*time.Second)
	_, err = manager.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	mux.HandleFunc("GET /collection/v1_0/requesttopay/ref-404", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"code":"RESOURCE_NOT_FOUND"}`, http.StatusNotFound)
	})

	collection, _ := newTestCollection(t, mux)

	_, err := collection.RequestToPayStatus(context.Background(), "ref-404")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "RESOURCE_NOT_FOUND")
}

func TestRequestToPayStatusDecodesResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	mux.HandleFunc("GET /collection/v1_0/requesttopay/ref-1", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(RequestToPayResult{
			Amount:                 "100",
			Currency:               "UGX",
			FinancialTransactionID: "363440463",
			ExternalID:             "payment-001",
			Payer:                  Party{PartyIDType: "MSISDN", PartyID: "+256700000000"},
			Status:                 "SUCCESSFUL",
		})
	})

	collection, _ := newTestCollection(t, mux)

	result, err := collection.RequestToPayStatus(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "SUCCESSFUL", result.Status)
	assert.Equal(t, "363440463", result.FinancialTransactionID)
}

func TestAccountBalance(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	mux.HandleFunc("GET /collection/v1_0/account/balance", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(Balance{AvailableBalance: "1500", Currency: "UGX"})
	})

	collection, _ := newTestCollection(t, mux)

	balance, err := collection.AccountBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1500", balance.AvailableBalance)
	assert.Equal(t, "UGX", balance.Currency)
}

func TestValidateAccountHolderStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	mux.HandleFunc("GET /collection/v1_0/accountholder/msisdn/0700000000/active", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": true}`))
	})

	collection, _ := newTestCollection(t, mux)

	active, err := collection.ValidateAccountHolderStatus(context.Background(), "MSISDN", "0700000000")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestProvisioningFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1_0/apiuser", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Reference-Id"))
		assert.Equal(t, "sub-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://callbacks.example.com", body["providerCallbackHost"])
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /v1_0/apiuser/user-1/apikey", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ApiUserKeyResult{APIKey: "fresh-key"})
	})
	mux.HandleFunc("GET /v1_0/apiuser/user-1", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ApiUser{ProviderCallbackHost: "https://callbacks.example.com", TargetEnvironment: "sandbox"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, EnvironmentSandbox, "api-user", "api-key", "", testLogger, server.Client())
	provisioning := client.Provisioning("sub-key")

	ctx := context.Background()
	userID, err := provisioning.CreateAPIUser(ctx, "", "https://callbacks.example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	key, err := provisioning.CreateAPIKey(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "fresh-key", key.APIKey)

	user, err := provisioning.GetAPIUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "sandbox", user.TargetEnvironment)
}

func TestCallbackURLOmittedWithoutHost(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /collection/token/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	var sawCallbackHeader bool
	mux.HandleFunc("POST /collection/v1_0/requesttopay", func(w http.ResponseWriter, r *http.Request) {
		sawCallbackHeader = r.Header.Get("X-Callback-Url") != ""
		w.WriteHeader(http.StatusAccepted)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, EnvironmentSandbox, "api-user", "api-key", "", testLogger, server.Client())
	collection := client.Collection("sub-key")

	_, err := collection.RequestToPay(context.Background(), "ref-1", validRequestToPay())
	require.NoError(t, err)
	assert.False(t, sawCallbackHeader)
}
