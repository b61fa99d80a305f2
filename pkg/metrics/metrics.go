// Package metrics, Prometheus metriklerini tanımlar.
//
// Metrikler default registry'ye kaydolur ve GET /metrics üzerinden
// promhttp.Handler() ile dışarı açılır.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Subscription outcome label değerleri.
const (
	OutcomeCreated     = "created"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

var (
	subscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devstage",
		Name:      "subscriptions_total",
		Help:      "Subscription attempts by outcome.",
	}, []string{"outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "devstage",
		Name:      "upstream_request_duration_seconds",
		Help:      "Events API call latency, retries included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "result"})

	rankingCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devstage",
		Name:      "ranking_cache_requests_total",
		Help:      "Ranking cache lookups by result.",
	}, []string{"result"})
)

// Subscription, bir abonelik denemesinin sonucunu sayar.
func Subscription(outcome string) {
	subscriptionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpstream, eventapi.Observer imzasına uyar.
func ObserveUpstream(op string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	upstreamDuration.WithLabelValues(op, result).Observe(elapsed.Seconds())
}

// RankingCache, ranking cache hit/miss sayar.
func RankingCache(hit bool) {
	if hit {
		rankingCache.WithLabelValues("hit").Inc()
		return
	}
	rankingCache.WithLabelValues("miss").Inc()
}
