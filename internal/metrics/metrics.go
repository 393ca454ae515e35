package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the collectors for one analysis run on its own registry.
// Nothing is exposed over the network; callers read the registry directly.
type Recorder struct {
	Registry *prometheus.Registry

	NodesTotal      prometheus.Gauge
	Orphans         *prometheus.GaugeVec
	PatternOrphans  *prometheus.GaugeVec
	FlowComponents  *prometheus.GaugeVec
	Recommendations *prometheus.GaugeVec
	StageDuration   *prometheus.HistogramVec
	StageFailures   *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		Registry: reg,

		NodesTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "ontocheck_nodes_total",
			Help: "Number of entries in the node table.",
		}),

		Orphans: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ontocheck_orphans",
			Help: "Orphaned nodes, labelled by ontology type.",
		}, []string{"type"}),

		PatternOrphans: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ontocheck_pattern_orphans",
			Help: "Orphaned nodes matched by each identifier pattern.",
		}, []string{"pattern"}),

		FlowComponents: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ontocheck_flow_components",
			Help: "Flow components, labelled by flow and connectivity state.",
		}, []string{"flow", "state"}),

		Recommendations: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ontocheck_recommendations",
			Help: "Recommendations emitted, labelled by priority.",
		}, []string{"priority"}),

		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ontocheck_stage_duration_seconds",
			Help:    "Wall time of each analysis stage.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"stage"}),

		StageFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ontocheck_stage_failures_total",
			Help: "Stages that returned an error.",
		}, []string{"stage"}),
	}
}

// ObserveStage records how long a stage took and whether it failed.
func (r *Recorder) ObserveStage(stage string, d time.Duration, err error) {
	r.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		r.StageFailures.WithLabelValues(stage).Inc()
	}
}
