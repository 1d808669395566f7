package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameTransfersTotal     = "item_transfers_total"
	MetricNameTopUpsTotal        = "balance_topups_total"
	MetricNameEquipCommandsTotal = "equip_commands_total"
	MetricNameCacheOpsTotal      = "cache_operations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextTransfersTotal     = "Total number of item transfer attempts"
	HelpTextTopUpsTotal        = "Total number of balance top-up attempts"
	HelpTextEquipCommandsTotal = "Total number of queue equip commands by outcome"
	HelpTextCacheOpsTotal      = "Total number of cache operations by outcome"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
