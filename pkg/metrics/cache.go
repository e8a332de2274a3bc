package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	CacheResultHit   = "hit"
	CacheResultMiss  = "miss"
	CacheResultError = "error"
	CacheResultOK    = "ok"
)

// CacheMetrics counts cache operations by outcome.
type CacheMetrics struct {
	ops *prometheus.CounterVec
}

// NewCacheMetrics registers the cache metrics on the provided registerer.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	if reg == nil {
		return &CacheMetrics{}
	}
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_operations_total",
		Help: "Cache operations partitioned by operation and result.",
	}, []string{"op", "result"})
	reg.MustRegister(ops)
	return &CacheMetrics{ops: ops}
}

// Observe increments the counter for op/result.
func (c *CacheMetrics) Observe(op, result string) {
	if c == nil || c.ops == nil {
		return
	}
	c.ops.WithLabelValues(normalizeLabel(op), normalizeLabel(result)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
