package app

import (
	"context"
	"errors"
	"sync"

	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/domain"
)

// DefaultStreamCapacity bounds how many callbacks may wait for the consumer
// before producers block.
const DefaultStreamCapacity = 100

// ErrStreamClosed is returned by Enqueue after Close has been called.
var ErrStreamClosed = errors.New("callback stream is closed")

// UpdateStream is a bounded single-consumer queue of callback envelopes.
// HTTP handlers enqueue, one consumer drains. When the buffer is full,
// Enqueue blocks until the consumer catches up, which is the backpressure
// mechanism: a slow consumer slows down acknowledgement of new callbacks
// instead of growing memory without bound.
type UpdateStream struct {
	updates   chan domain.CallbackEnvelope
	done      chan struct{}
	closeOnce sync.Once
}

// NewUpdateStream creates a stream with the given buffer capacity.
// Capacities of zero or below fall back to DefaultStreamCapacity.
func NewUpdateStream(capacity int) *UpdateStream {
	if capacity <= 0 {
		capacity = DefaultStreamCapacity
	}
	return &UpdateStream{
		updates: make(chan domain.CallbackEnvelope, capacity),
		done:    make(chan struct{}),
	}
}

// Enqueue places an envelope on the stream, blocking while the buffer is
// full. It returns ErrStreamClosed once the stream is closed and the
// context's error if ctx ends before space frees up.
func (s *UpdateStream) Enqueue(ctx context.Context, env domain.CallbackEnvelope) error {
	select {
	case <-s.done:
		return ErrStreamClosed
	default:
	}
	select {
	case s.updates <- env:
		return nil
	case <-s.done:
		return ErrStreamClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Updates is the consumer side of the stream. Exactly one goroutine should
// receive from it.
func (s *UpdateStream) Updates() <-chan domain.CallbackEnvelope {
	return s.updates
}

// Done is closed when the stream shuts down.
func (s *UpdateStream) Done() <-chan struct{} {
	return s.done
}

// Close stops the stream. Envelopes still buffered are dropped along with the
// stream; delivery guarantees end at process shutdown.
func (s *UpdateStream) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
