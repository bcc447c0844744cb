package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"log/slog"

	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/app"
	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/domain"
)

// DefaultMaxBodyBytes caps callback bodies at 1MB.
const DefaultMaxBodyBytes = 1 << 20

// callbackRoutePrefixes are the operation paths the provider is given as
// callback URLs. Each accepts both POST and PUT; the provider uses PUT for
// some products.
var callbackRoutePrefixes = []string{
	"collection_request_to_pay",
	"collection_request_to_withdraw_v1",
	"collection_request_to_withdraw_v2",
	"collection_invoice",
	"collection_payment",
	"collection_preapproval",
	"disbursement_deposit_v1",
	"disbursement_deposit_v2",
	"disbursement_refund_v1",
	"disbursement_refund_v2",
	"disbursement_transfer",
	"remittance_cash_transfer",
	"remittance_transfer",
}

// CallbackEnqueuer places classified callbacks on the delivery stream.
type CallbackEnqueuer interface {
	Enqueue(ctx context.Context, env domain.CallbackEnvelope) error
}

// CallbackHandler terminates provider callbacks. Every syntactically
// acceptable request is acknowledged with 200 regardless of whether the body
// classified or the envelope was delivered: the provider retries on non-2xx
// and we never want redelivery of a callback we already saw.
type CallbackHandler struct {
	enqueuer     CallbackEnqueuer
	logger       *slog.Logger
	metrics      *app.Metrics
	maxBodyBytes int64
}

func NewCallbackHandler(enqueuer CallbackEnqueuer, logger *slog.Logger, metrics *app.Metrics, maxBodyBytes int64) *CallbackHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &CallbackHandler{
		enqueuer:     enqueuer,
		logger:       logger.With("component", "callback_handler"),
		metrics:      metrics,
		maxBodyBytes: maxBodyBytes,
	}
}

// RegisterRoutes mounts the callback and health endpoints on the router.
func (h *CallbackHandler) RegisterRoutes(r chi.Router) {
	for _, prefix := range callbackRoutePrefixes {
		pattern := "/" + prefix + "/{category}"
		r.Post(pattern, h.handleCallback)
		r.Put(pattern, h.handleCallback)
	}
	r.Get("/health", h.handleHealth)
}

func (h *CallbackHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type ackResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *CallbackHandler) writeAck(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(ackResponse{
		Status:  "success",
		Message: "Callback received successfully",
	})
}

func (h *CallbackHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	category := domain.CategoryFromPath(chi.URLParam(r, "category"))
	h.metrics.CallbacksReceived.WithLabelValues(string(category)).Inc()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.WarnContext(ctx, "Callback body too large", "limit", maxErr.Limit, "category", category)
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		// A truncated read still gets acknowledged; the provider resending
		// the same broken request would not help.
		logger.ErrorContext(ctx, "Failed to read callback body", "error", err, "category", category)
		h.writeAck(w)
		return
	}

	variant, err := app.Classify(body)
	if err != nil {
		h.metrics.ClassifyFailures.Inc()
		logger.WarnContext(ctx, "Unclassifiable callback body",
			"error", err,
			"category", category,
			"body", string(body))
		h.writeAck(w)
		return
	}

	env := domain.CallbackEnvelope{
		RemoteAddr: r.RemoteAddr,
		Response:   variant,
		Category:   category,
	}
	if err := h.enqueuer.Enqueue(ctx, env); err != nil {
		h.metrics.EnqueueFailures.Inc()
		logger.ErrorContext(ctx, "Failed to enqueue callback",
			"error", err,
			"kind", variant.Kind(),
			"category", category)
		h.writeAck(w)
		return
	}

	logger.InfoContext(ctx, "Callback enqueued", "kind", variant.Kind(), "category", category)
	h.writeAck(w)
}
