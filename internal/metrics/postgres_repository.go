package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postgresRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "status"})
	postgresRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "status"})
)

// PostgresRepository tracks metrics for PostgreSQL repository operations.
type PostgresRepository struct{}

// NewPostgresRepository creates a PostgresRepository metrics collector.
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

// Observe records duration and status of a repository operation.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	postgresRepositoryOperationsTotal.WithLabelValues(operation, status).Inc()
	postgresRepositoryOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
