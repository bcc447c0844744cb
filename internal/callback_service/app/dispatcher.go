package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/domain"
	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/platform/messagebroker"
)

// Handler consumes one delivered callback envelope.
type Handler func(ctx context.Context, env domain.CallbackEnvelope)

// DispatchHandlers routes delivered callbacks by product family. Nil entries
// fall back to logging the envelope.
type DispatchHandlers struct {
	Payment      Handler
	Invoice      Handler
	Disbursement Handler
	Remittance   Handler
	Other        Handler
}

// Dispatcher is the single consumer of an UpdateStream. It fans each
// envelope out to the bucket handler and, when a broker is configured,
// publishes the event on momo.callbacks.<bucket>.
type Dispatcher struct {
	stream    *UpdateStream
	handlers  DispatchHandlers
	publisher messagebroker.Publisher
	logger    *slog.Logger
	metrics   *Metrics
}

// NewDispatcher wires a dispatcher to its stream. publisher may be nil when
// no broker is configured.
func NewDispatcher(stream *UpdateStream, handlers DispatchHandlers, publisher messagebroker.Publisher, logger *slog.Logger, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		stream:    stream,
		handlers:  handlers,
		publisher: publisher,
		logger:    logger.With("component", "callback_dispatcher"),
		metrics:   metrics,
	}
}

func bucketFor(kind domain.CallbackKind) string {
	switch kind {
	case domain.KindRequestToPaySucceeded, domain.KindRequestToPayFailed,
		domain.KindPaymentSucceeded, domain.KindPaymentFailed:
		return "payment"
	case domain.KindInvoiceSucceeded, domain.KindInvoiceFailed:
		return "invoice"
	case domain.KindDepositV1Succeeded, domain.KindDepositV1Failed,
		domain.KindDepositV2Succeeded, domain.KindDepositV2Failed,
		domain.KindRefundV1Succeeded, domain.KindRefundV1Failed,
		domain.KindRefundV2Succeeded, domain.KindRefundV2Failed,
		domain.KindDisbursementTransferSucceeded, domain.KindDisbursementTransferFailed:
		return "disbursement"
	case domain.KindCashTransferSucceeded, domain.KindCashTransferFailed,
		domain.KindRemittanceTransferSucceeded, domain.KindRemittanceTransferFailed:
		return "remittance"
	default:
		return "other"
	}
}

func (d *Dispatcher) handlerFor(bucket string) Handler {
	var h Handler
	switch bucket {
	case "payment":
		h = d.handlers.Payment
	case "invoice":
		h = d.handlers.Invoice
	case "disbursement":
		h = d.handlers.Disbursement
	case "remittance":
		h = d.handlers.Remittance
	default:
		h = d.handlers.Other
	}
	if h == nil {
		h = d.logEnvelope
	}
	return h
}

func (d *Dispatcher) logEnvelope(ctx context.Context, env domain.CallbackEnvelope) {
	d.logger.InfoContext(ctx, "Callback delivered",
		"kind", env.Response.Kind(),
		"category", env.Category,
		"remote_address", env.RemoteAddr)
}

// callbackEvent is the wire form published to the broker.
type callbackEvent struct {
	RemoteAddr string                  `json:"remote_address"`
	Category   domain.CallbackCategory `json:"category"`
	Kind       domain.CallbackKind     `json:"kind"`
	Payload    domain.CallbackVariant  `json:"payload"`
}

func (d *Dispatcher) publish(ctx context.Context, bucket string, env domain.CallbackEnvelope) {
	if d.publisher == nil {
		return
	}
	data, err := json.Marshal(callbackEvent{
		RemoteAddr: env.RemoteAddr,
		Category:   env.Category,
		Kind:       env.Response.Kind(),
		Payload:    env.Response,
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to marshal callback event", "error", err, "kind", env.Response.Kind())
		d.metrics.PublishFailures.Inc()
		return
	}
	subject := "momo.callbacks." + bucket
	if err := d.publisher.Publish(ctx, subject, data); err != nil {
		d.logger.ErrorContext(ctx, "Failed to publish callback event", "error", err, "subject", subject)
		d.metrics.PublishFailures.Inc()
	}
}

// Run drains the stream until it closes or ctx ends. It is the only receiver
// the stream should have.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.InfoContext(ctx, "Callback dispatcher started")
	for {
		select {
		case env := <-d.stream.Updates():
			bucket := bucketFor(env.Response.Kind())
			d.metrics.Dispatched.WithLabelValues(bucket).Inc()
			d.handlerFor(bucket)(ctx, env)
			d.publish(ctx, bucket, env)
		case <-d.stream.Done():
			d.logger.InfoContext(ctx, "Callback dispatcher stopping, stream closed")
			return
		case <-ctx.Done():
			d.logger.InfoContext(ctx, "Callback dispatcher stopping", "reason", ctx.Err())
			return
		}
	}
}
