// Package metrics registers the process's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the pipeline updates. One instance per
// process, registered against its own registry so tests can run in parallel.
type Metrics struct {
	Registry *prometheus.Registry

	PushesReceived   prometheus.Counter
	PushesCoalesced  prometheus.Counter
	PushAuthFailures prometheus.Counter
	TriggersDropped  prometheus.Counter

	PostsIngested     prometheus.Counter
	AnalysesCompleted prometheus.Counter
	AnalysesFailed    *prometheus.CounterVec
	DispatchesSent    prometheus.Counter
	DispatchesFailed  *prometheus.CounterVec

	AnalysisQueueDepth prometheus.Gauge
	DispatchQueueDepth prometheus.Gauge
	DailyCost          prometheus.Gauge
	CostSaturated      prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		PushesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "postwatch_pushes_received_total",
			Help: "Push notifications accepted at the intake endpoint.",
		}),
		PushesCoalesced: factory.NewCounter(prometheus.CounterOpts{
			Name: "postwatch_pushes_coalesced_total",
			Help: "Pushes folded into the next scheduled poll.",
		}),
		PushAuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "postwatch_push_auth_failures_total",
			Help: "Pushes rejected for signature mismatch.",
		}),
		TriggersDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "postwatch_triggers_dropped_total",
			Help: "Scheduled poll triggers dropped because the queue was full.",
		}),

		PostsIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "postwatch_posts_ingested_total",
			Help: "New posts inserted by the ingest pipeline.",
		}),
		AnalysesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "postwatch_analyses_completed_total",
			Help: "Posts that reached the analyzed state.",
		}),
		AnalysesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "postwatch_analyses_failed_total",
			Help: "Analysis failures by error kind.",
		}, []string{"kind"}),
		DispatchesSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "postwatch_dispatches_sent_total",
			Help: "Messages delivered to the chat platform.",
		}),
		DispatchesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "postwatch_dispatches_failed_total",
			Help: "Dispatch failures by error kind.",
		}, []string{"kind"}),

		AnalysisQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "postwatch_analysis_queue_depth",
			Help: "Posts waiting for analysis.",
		}),
		DispatchQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "postwatch_dispatch_queue_depth",
			Help: "Posts waiting for dispatch.",
		}),
		DailyCost: factory.NewGauge(prometheus.GaugeOpts{
			Name: "postwatch_daily_cost_estimate",
			Help: "Estimated LLM spend since midnight, in USD.",
		}),
		CostSaturated: factory.NewGauge(prometheus.GaugeOpts{
			Name: "postwatch_cost_ceiling_saturated",
			Help: "1 when the daily cost ceiling is blocking new analysis claims.",
		}),
	}
}
