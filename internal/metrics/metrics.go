package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransfersTotal,
			Help: HelpTextTransfersTotal,
		},
		[]string{LabelResult},
	)

	TopUpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTopUpsTotal,
			Help: HelpTextTopUpsTotal,
		},
		[]string{LabelResult},
	)

	EquipCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEquipCommandsTotal,
			Help: HelpTextEquipCommandsTotal,
		},
		[]string{LabelOutcome},
	)

	CacheOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheOpsTotal,
			Help: HelpTextCacheOpsTotal,
		},
		[]string{LabelOutcome},
	)
)
