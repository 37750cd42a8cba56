package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evtIngesterBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "evt_ingester",
		Name:      "blocks_total",
		Help:      "Count of ingestion units processed.",
	}, []string{"status"})

	evtIngesterBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "evt_ingester",
		Name:      "block_duration_seconds",
		Help:      "Duration of one ingestion unit.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	evtIngesterBlockActions = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "evt_ingester",
		Name:      "block_actions",
		Help:      "Number of actions per ingested block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	evtIngesterHeadBlockNum = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "evt_ingester",
		Name:      "head_block_num",
		Help:      "Number of the last committed block.",
	})
)

// EVTIngester tracks metrics for the EVT ingestion pipeline.
type EVTIngester struct{}

// NewEVTIngester constructs an EVTIngester.
func NewEVTIngester() *EVTIngester {
	return &EVTIngester{}
}

// ObserveBlock records the outcome of one ingestion unit.
func (m EVTIngester) ObserveBlock(err error, actions int, started time.Time) {
	status := statusOf(err)
	evtIngesterBlocksTotal.WithLabelValues(status).Inc()
	evtIngesterBlockDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		evtIngesterBlockActions.Observe(float64(actions))
	}
}

// SetHead publishes the last committed block number.
func (m EVTIngester) SetHead(num uint32) {
	evtIngesterHeadBlockNum.Set(float64(num))
}
