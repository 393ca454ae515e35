package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gyaneshwarpardhi/ontocheck/internal/config"
	"github.com/gyaneshwarpardhi/ontocheck/internal/flow"
	"github.com/gyaneshwarpardhi/ontocheck/internal/metrics"
	"github.com/gyaneshwarpardhi/ontocheck/internal/ontology"
	"github.com/gyaneshwarpardhi/ontocheck/internal/orphan"
	"github.com/gyaneshwarpardhi/ontocheck/internal/recommend"
	"github.com/gyaneshwarpardhi/ontocheck/internal/report"
)

// Stage is one sequential pass of an analysis run.
type Stage interface {
	// Name is the key the stage is registered and logged under.
	Name() string
	// Run reads from and writes to the shared run state.
	Run(ctx context.Context, run *Run) error
}

// Run is the state shared by the stages of one analysis.
// Stages fill in Report, Statuses and Recommendations as they go.
type Run struct {
	ID      string
	Dataset *config.Dataset
	Graph   *ontology.Graph
	Printer *report.Printer
	Metrics *metrics.Recorder
	Logger  *slog.Logger

	Report          *orphan.Report
	Statuses        []flow.Status
	Recommendations []recommend.Recommendation
}

// Result is the outcome of a completed run.
type Result struct {
	RunID    string
	Orphans  int
	Duration time.Duration
	Metrics  *metrics.Recorder
}

// Engine runs its registered stages in registration order.
type Engine struct {
	stages []Stage
	names  map[string]struct{}
	logger *slog.Logger
}

// New creates an Engine with no stages.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{names: make(map[string]struct{}), logger: logger}
}

// Default creates an Engine with the orphan, flow, recommendation and summary stages.
func Default(logger *slog.Logger) *Engine {
	e := New(logger)
	e.Register(OrphanStage{})
	e.Register(FlowStage{FlowID: config.DefaultFlow})
	e.Register(RecommendStage{})
	e.Register(SummaryStage{})
	return e
}

// Register appends a stage. Panics on a duplicate name to surface misconfiguration early.
func (e *Engine) Register(s Stage) {
	if _, exists := e.names[s.Name()]; exists {
		panic(fmt.Sprintf("engine: duplicate stage %q", s.Name()))
	}
	e.names[s.Name()] = struct{}{}
	e.stages = append(e.stages, s)
}

// Stages returns the registered stage names in run order.
func (e *Engine) Stages() []string {
	out := make([]string, 0, len(e.stages))
	for _, s := range e.stages {
		out = append(out, s.Name())
	}
	return out
}

// Run builds the graph from ds and executes every stage against it, writing
// the report to w. The first failing stage stops the run.
func (e *Engine) Run(ctx context.Context, ds *config.Dataset, w io.Writer) (*Result, error) {
	start := time.Now()
	id := uuid.NewString()
	logger := e.logger.With("run_id", id, "dataset", ds.Name)

	run := &Run{
		ID:      id,
		Dataset: ds,
		Graph:   ontology.Build(ds),
		Printer: report.New(w),
		Metrics: metrics.New(),
		Logger:  logger,
	}
	run.Metrics.NodesTotal.Set(float64(run.Graph.NodeCount()))
	logger.Info("analysis started", "nodes", run.Graph.NodeCount(), "stages", len(e.stages))

	for _, s := range e.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stageStart := time.Now()
		err := s.Run(ctx, run)
		if err == nil {
			err = run.Printer.Err()
		}
		run.Metrics.ObserveStage(s.Name(), time.Since(stageStart), err)
		if err != nil {
			logger.Error("stage failed", "stage", s.Name(), "err", err)
			return nil, fmt.Errorf("stage %s: %w", s.Name(), err)
		}
		logger.Debug("stage done", "stage", s.Name(), "duration", time.Since(stageStart))
	}

	res := &Result{
		RunID:    id,
		Duration: time.Since(start),
		Metrics:  run.Metrics,
	}
	if run.Report != nil {
		res.Orphans = run.Report.Len()
	}
	logger.Info("analysis complete", "orphans", res.Orphans, "duration", res.Duration)
	return res, nil
}
