package pg

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "forum",
		Name:      "db_query_duration_seconds",
		Help:      "Duration of repository queries by operation",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// observe is deferred at the top of every repository method:
//
//	defer observe("add_comment", time.Now())
func observe(operation string, start time.Time) {
	queryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
