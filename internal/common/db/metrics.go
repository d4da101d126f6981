package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/mzhuravlev/feedback-board/internal/common/constants"
	"github.com/mzhuravlev/feedback-board/internal/observability/metrics"
)

func StartPoolMetrics(pool *pgxpool.Pool, interval time.Duration) {
	if interval <= 0 {
		interval = constants.DBPoolMetricsInterval
	}

	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			stats := pool.Stat()

			metrics.DBPoolAcquiredConnections.Set(float64(stats.AcquiredConns()))
			metrics.DBPoolIdleConnections.Set(float64(stats.IdleConns()))
			metrics.DBPoolMaxConnections.Set(float64(stats.MaxConns()))
			metrics.DBPoolTotalConnections.Set(float64(stats.TotalConns()))
		}
	}()
}

func tableForOperation(operation string) string {
	operation = strings.ToLower(operation)
	if strings.Contains(operation, "user") {
		return "users"
	}
	if strings.Contains(operation, "feedback") {
		return "feedback"
	}
	return "unknown"
}

// ObserveQuery records the duration of a repository operation; call it
// deferred with the operation start time.
func ObserveQuery(operation string, startTime time.Time) {
	metrics.DBQueryDurationSeconds.
		WithLabelValues(operation, tableForOperation(operation)).
		Observe(time.Since(startTime).Seconds())
}

func CountQueryError(operation string, err error) {
	metrics.DBQueryErrors.
		WithLabelValues(operation, tableForOperation(operation), fmt.Sprintf("%T", err)).
		Inc()
}
