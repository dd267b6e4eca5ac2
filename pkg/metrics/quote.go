package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records observability data for cart quote computation.
type QuoteMetrics struct {
	duration     *prometheus.HistogramVec
	quotes       *prometheus.CounterVec
	removedItems prometheus.Counter
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_quote_duration_seconds",
		Help:    "Duration of cart quote computation in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_quotes_total",
		Help: "Cart quote requests by outcome.",
	}, []string{"outcome"})
	removedItems := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_quote_removed_items_total",
		Help: "Cart lines dropped during reconciliation.",
	})
	reg.MustRegister(duration, quotes, removedItems)
	return &QuoteMetrics{
		duration:     duration,
		quotes:       quotes,
		removedItems: removedItems,
	}
}

// ObserveQuote records one quote computation with its duration.
func (q *QuoteMetrics) ObserveQuote(outcome string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	label := normalizeLabel(outcome)
	q.duration.WithLabelValues(label).Observe(duration.Seconds())
	q.quotes.WithLabelValues(label).Inc()
}

// AddRemovedItems counts lines dropped by the reconciler.
func (q *QuoteMetrics) AddRemovedItems(count int) {
	if q == nil || q.removedItems == nil || count <= 0 {
		return
	}
	q.removedItems.Add(float64(count))
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
