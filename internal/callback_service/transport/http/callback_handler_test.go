package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/app"
	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/domain"
)

var testMetrics = app.NewMetrics()

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const ackBody = `{"status": "success", "message": "Callback received successfully"}`

const rtpSucceededBody = `{
	"financialTransactionId": "123456",
	"externalId": "payment-001",
	"amount": "100",
	"currency": "UGX",
	"payer": {"partyIdType": "MSISDN", "partyId": "+256700000000"},
	"status": "SUCCESSFUL"
}`

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(ctx context.Context, env domain.CallbackEnvelope) error {
	args := m.Called(ctx, env)
	return args.Error(0)
}

func newTestRouter(enqueuer CallbackEnqueuer, maxBodyBytes int64) *chi.Mux {
	r := chi.NewRouter()
	handler := NewCallbackHandler(enqueuer, testLogger, testMetrics, maxBodyBytes)
	handler.RegisterRoutes(r)
	return r
}

func TestHandleCallbackEnqueuesAndAcks(t *testing.T) {
	enqueuer := new(MockEnqueuer)
	captured := make(chan domain.CallbackEnvelope, 1)
	enqueuer.On("Enqueue", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured <- args.Get(1).(domain.CallbackEnvelope)
		}).
		Return(nil).Once()

	router := newTestRouter(enqueuer, 0)
	req := httptest.NewRequest(http.MethodPost, "/collection_request_to_pay/REQUEST_TO_PAY", strings.NewReader(rtpSucceededBody))
	req.RemoteAddr = "203.0.113.9:55000"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, ackBody, rec.Body.String())

	env := <-captured
	assert.Equal(t, domain.CategoryRequestToPay, env.Category)
	assert.Equal(t, "203.0.113.9:55000", env.RemoteAddr)
	assert.Equal(t, domain.KindRequestToPaySucceeded, env.Response.Kind())
	enqueuer.AssertExpectations(t)
}

func TestHandleCallbackAcceptsPut(t *testing.T) {
	enqueuer := new(MockEnqueuer)
	enqueuer.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once()

	router := newTestRouter(enqueuer, 0)
	req := httptest.NewRequest(http.MethodPut, "/collection_request_to_pay/REQUEST_TO_PAY", strings.NewReader(rtpSucceededBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	enqueuer.AssertExpectations(t)
}

func TestHandleCallbackAcksUnclassifiableBody(t *testing.T) {
	enqueuer := new(MockEnqueuer)

	router := newTestRouter(enqueuer, 0)
	req := httptest.NewRequest(http.MethodPost, "/collection_request_to_pay/REQUEST_TO_PAY", strings.NewReader("not-json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, ackBody, rec.Body.String())
	enqueuer.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestHandleCallbackRejectsOversizedBody(t *testing.T) {
	enqueuer := new(MockEnqueuer)

	router := newTestRouter(enqueuer, 16)
	req := httptest.NewRequest(http.MethodPost, "/collection_request_to_pay/REQUEST_TO_PAY", strings.NewReader(rtpSucceededBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	enqueuer.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

// An unrecognized category segment still delivers the callback, tagged
// UNKNOWN.
func TestHandleCallbackUnknownCategory(t *testing.T) {
	enqueuer := new(MockEnqueuer)
	captured := make(chan domain.CallbackEnvelope, 1)
	enqueuer.On("Enqueue", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured <- args.Get(1).(domain.CallbackEnvelope)
		}).
		Return(nil).Once()

	router := newTestRouter(enqueuer, 0)
	req := httptest.NewRequest(http.MethodPost, "/collection_request_to_pay/SOMETHING_NEW", strings.NewReader(rtpSucceededBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := <-captured
	assert.Equal(t, domain.CategoryUnknown, env.Category)
}

// The ack never depends on delivery: a closed stream still gets a 200 so the
// provider does not retry into a shutting-down process.
func TestHandleCallbackAcksWhenEnqueueFails(t *testing.T) {
	enqueuer := new(MockEnqueuer)
	enqueuer.On("Enqueue", mock.Anything, mock.Anything).Return(app.ErrStreamClosed).Once()

	router := newTestRouter(enqueuer, 0)
	req := httptest.NewRequest(http.MethodPost, "/collection_request_to_pay/REQUEST_TO_PAY", strings.NewReader(rtpSucceededBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, ackBody, rec.Body.String())
	enqueuer.AssertExpectations(t)
}

func TestAllCallbackRoutesRegistered(t *testing.T) {
	enqueuer := new(MockEnqueuer)
	enqueuer.On("Enqueue", mock.Anything, mock.Anything).Return(nil)

	router := newTestRouter(enqueuer, 0)
	for _, prefix := range callbackRoutePrefixes {
		for _, method := range []string{http.MethodPost, http.MethodPut} {
			req := httptest.NewRequest(method, "/"+prefix+"/REQUEST_TO_PAY", strings.NewReader(rtpSucceededBody))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "%s /%s", method, prefix)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(new(MockEnqueuer), 0)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
