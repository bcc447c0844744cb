package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/domain"
)

// Shared across the package's tests; promauto panics on duplicate
// registration.
var testMetrics = NewMetrics()

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		kind   domain.CallbackKind
		bucket string
	}{
		{domain.KindRequestToPaySucceeded, "payment"},
		{domain.KindRequestToPayFailed, "payment"},
		{domain.KindPaymentSucceeded, "payment"},
		{domain.KindPaymentFailed, "payment"},
		{domain.KindInvoiceSucceeded, "invoice"},
		{domain.KindInvoiceFailed, "invoice"},
		{domain.KindDepositV1Succeeded, "disbursement"},
		{domain.KindRefundV2Failed, "disbursement"},
		{domain.KindDisbursementTransferSucceeded, "disbursement"},
		{domain.KindCashTransferSucceeded, "remittance"},
		{domain.KindRemittanceTransferFailed, "remittance"},
		{domain.KindPreApprovalSucceeded, "other"},
		{domain.KindPreApprovalFailed, "other"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.bucket, bucketFor(tt.kind))
		})
	}
}

func TestDispatcherRoutesToBucketHandler(t *testing.T) {
	stream := NewUpdateStream(10)
	defer stream.Close()

	delivered := make(chan domain.CallbackEnvelope, 1)
	handlers := DispatchHandlers{
		Payment: func(_ context.Context, env domain.CallbackEnvelope) {
			delivered <- env
		},
	}
	d := NewDispatcher(stream, handlers, nil, testLogger, testMetrics)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	env := paymentEnvelope("ref-dispatch")
	require.NoError(t, stream.Enqueue(ctx, env))

	select {
	case got := <-delivered:
		assert.Equal(t, env, got)
	case <-time.After(time.Second):
		t.Fatal("payment handler never called")
	}
}

func TestDispatcherPublishesEvents(t *testing.T) {
	stream := NewUpdateStream(10)
	defer stream.Close()

	publisher := new(MockPublisher)
	published := make(chan []byte, 1)
	publisher.On("Publish", mock.Anything, "momo.callbacks.payment", mock.Anything).
		Run(func(args mock.Arguments) {
			published <- args.Get(2).([]byte)
		}).
		Return(nil).Once()

	d := NewDispatcher(stream, DispatchHandlers{}, publisher, testLogger, testMetrics)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	require.NoError(t, stream.Enqueue(ctx, paymentEnvelope("ref-pub")))

	select {
	case data := <-published:
		var event struct {
			RemoteAddr string          `json:"remote_address"`
			Category   string          `json:"category"`
			Kind       string          `json:"kind"`
			Payload    json.RawMessage `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "10.0.0.1:443", event.RemoteAddr)
		assert.Equal(t, string(domain.CategoryCollectionPayment), event.Category)
		assert.Equal(t, string(domain.KindPaymentSucceeded), event.Kind)
		assert.NotEmpty(t, event.Payload)
	case <-time.After(time.Second):
		t.Fatal("nothing published")
	}
	publisher.AssertExpectations(t)
}

func TestDispatcherStopsWhenStreamCloses(t *testing.T) {
	stream := NewUpdateStream(10)
	d := NewDispatcher(stream, DispatchHandlers{}, nil, testLogger, testMetrics)

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(context.Background())
	}()

	stream.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after stream close")
	}
}
