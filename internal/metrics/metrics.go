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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Ledger Metrics
var (
	LedgerMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerMutations,
			Help: HelpTextLedgerMutations,
		},
		[]string{LabelTransactionType, LabelPointType},
	)

	LedgerMutationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerMutationFailures,
			Help: HelpTextLedgerMutationFailures,
		},
		[]string{LabelTransactionType},
	)

	DecaySweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDecaySweeps,
			Help: HelpTextDecaySweeps,
		},
	)
)

// Loot and raid Metrics
var (
	LootAwards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootAwards,
			Help: HelpTextLootAwards,
		},
		[]string{LabelBidTier},
	)

	GearPointsCharged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGearPointsCharged,
			Help: HelpTextGearPointsCharged,
		},
	)

	RaidRewardTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRaidRewardTicks,
			Help: HelpTextRaidRewardTicks,
		},
	)
)

// Job Metrics
var (
	ScheduledJobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScheduledJobRuns,
			Help: HelpTextScheduledJobRuns,
		},
		[]string{LabelJob, LabelStatus},
	)

	ScheduledJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameScheduledJobDuration,
			Help:    HelpTextScheduledJobDuration,
			Buckets: JobLatencyBuckets,
		},
		[]string{LabelJob},
	)
)
