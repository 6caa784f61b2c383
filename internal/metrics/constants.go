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

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Domain metric names
const (
	MetricNameLedgerMutations        = "ledger_mutations_total"
	MetricNameLedgerMutationFailures = "ledger_mutation_failures_total"
	MetricNameDecaySweeps            = "ledger_decay_sweeps_total"
	MetricNameLootAwards             = "loot_awards_total"
	MetricNameGearPointsCharged      = "loot_gear_points_charged_total"
	MetricNameRaidRewardTicks        = "raid_reward_ticks_total"
	MetricNameScheduledJobRuns       = "scheduled_job_runs_total"
	MetricNameScheduledJobDuration   = "scheduled_job_duration_seconds"
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

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Domain metric help text
const (
	HelpTextLedgerMutations        = "Total number of committed ledger entries"
	HelpTextLedgerMutationFailures = "Total number of ledger mutations rolled back"
	HelpTextDecaySweeps            = "Total number of completed decay sweeps"
	HelpTextLootAwards             = "Total number of awarded item drops by winning bid tier"
	HelpTextGearPointsCharged      = "Total gear points charged for awarded items"
	HelpTextRaidRewardTicks        = "Total number of raid reward ticks"
	HelpTextScheduledJobRuns       = "Total number of scheduled job runs"
	HelpTextScheduledJobDuration   = "Scheduled job run time in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod          = "method"
	LabelPath            = "path"
	LabelStatus          = "status"
	LabelType            = "type"
	LabelTransactionType = "transaction_type"
	LabelPointType       = "point_type"
	LabelBidTier         = "bid_tier"
	LabelJob             = "job"
)

// Label values
const (
	BidTierNone     = "none"
	JobStatusOK     = "ok"
	JobStatusFailed = "failed"
	PathUnmatched   = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// JobLatencyBuckets covers reward ticks (milliseconds) up to full decay sweeps (minutes)
var JobLatencyBuckets = []float64{.01, .05, .1, .5, 1, 5, 15, 60, 300}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
