package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "momo_gateway"

// Metrics counts what happens to callbacks between arrival and delivery.
type Metrics struct {
	CallbacksReceived *prometheus.CounterVec
	ClassifyFailures  prometheus.Counter
	EnqueueFailures   prometheus.Counter
	Dispatched        *prometheus.CounterVec
	PublishFailures   prometheus.Counter
}

// NewMetrics registers the callback pipeline metrics on the default
// registry.
func NewMetrics() *Metrics {
	return &Metrics{
		CallbacksReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "callbacks_received_total",
			Help:      "Callbacks accepted by the HTTP layer, by URL category.",
		}, []string{"category"}),
		ClassifyFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "callback_classify_failures_total",
			Help:      "Callback bodies that matched no known shape.",
		}),
		EnqueueFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "callback_enqueue_failures_total",
			Help:      "Classified callbacks dropped because the stream was closed or the request ended first.",
		}),
		Dispatched: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "callbacks_dispatched_total",
			Help:      "Callbacks handed to a consumer handler, by bucket.",
		}, []string{"bucket"}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "callback_publish_failures_total",
			Help:      "Callback events that could not be published to the message broker.",
		}),
	}
}
