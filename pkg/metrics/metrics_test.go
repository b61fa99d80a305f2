package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionCounter(t *testing.T) {
	before := testutil.ToFloat64(subscriptionsTotal.WithLabelValues(OutcomeCreated))
	Subscription(OutcomeCreated)
	assert.Equal(t, before+1, testutil.ToFloat64(subscriptionsTotal.WithLabelValues(OutcomeCreated)))
}

func TestRankingCacheCounter(t *testing.T) {
	hits := testutil.ToFloat64(rankingCache.WithLabelValues("hit"))
	misses := testutil.ToFloat64(rankingCache.WithLabelValues("miss"))

	RankingCache(true)
	RankingCache(false)
	RankingCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(rankingCache.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(rankingCache.WithLabelValues("miss")))
}

func TestObserveUpstreamLabels(t *testing.T) {
	ObserveUpstream("ranking", 15*time.Millisecond, nil)
	ObserveUpstream("ranking", time.Second, errors.New("boom"))

	assert.Equal(t, 2, testutil.CollectAndCount(upstreamDuration, "devstage_upstream_request_duration_seconds"))
}
