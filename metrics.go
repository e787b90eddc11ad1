package pagedlist

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

var (
	// PageFetches tracks completed page fetches by list and outcome
	PageFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagedlist_page_fetches_total",
			Help: "Total number of completed page fetches",
		},
		[]string{"list", "outcome"}, // "success", "error"
	)

	// PageFetchDuration tracks how long page fetches take
	PageFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagedlist_page_fetch_duration_seconds",
			Help:    "Duration of page fetches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"list"},
	)

	// CoalescedRequests tracks next-page requests ignored because a fetch was in flight
	CoalescedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagedlist_coalesced_requests_total",
			Help: "Total number of next-page requests ignored while a fetch was in flight",
		},
		[]string{"list"},
	)

	// Resets tracks explicit resets
	Resets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagedlist_resets_total",
			Help: "Total number of list resets",
		},
		[]string{"list"},
	)

	// LoadedItems tracks the number of items currently loaded
	LoadedItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pagedlist_loaded_items",
			Help: "Number of items currently loaded",
		},
		[]string{"list"},
	)
)

func (c *Controller[P, T]) recordFetch(failed bool, d time.Duration) {
	if !c.metrics {
		return
	}
	outcome := outcomeSuccess
	if failed {
		outcome = outcomeError
	}
	PageFetches.WithLabelValues(c.name, outcome).Inc()
	PageFetchDuration.WithLabelValues(c.name).Observe(d.Seconds())
}

func (c *Controller[P, T]) recordCoalesced() {
	if c.metrics {
		CoalescedRequests.WithLabelValues(c.name).Inc()
	}
}

func (c *Controller[P, T]) recordReset() {
	if c.metrics {
		Resets.WithLabelValues(c.name).Inc()
	}
}

func (c *Controller[P, T]) recordItems(n int) {
	if c.metrics {
		LoadedItems.WithLabelValues(c.name).Set(float64(n))
	}
}
