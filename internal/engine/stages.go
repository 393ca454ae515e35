package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/gyaneshwarpardhi/ontocheck/internal/flow"
	"github.com/gyaneshwarpardhi/ontocheck/internal/orphan"
	"github.com/gyaneshwarpardhi/ontocheck/internal/recommend"
)

// OrphanStage computes and prints the orphan report.
type OrphanStage struct{}

func (OrphanStage) Name() string { return "orphans" }

func (OrphanStage) Run(_ context.Context, run *Run) error {
	r, err := orphan.Analyze(run.Graph)
	if err != nil {
		return err
	}
	run.Report = r
	for _, b := range r.ByType {
		run.Metrics.Orphans.WithLabelValues(string(b.Type)).Set(float64(len(b.Orphans)))
	}
	for _, s := range []orphan.Scan{r.Config, r.React, r.Entity} {
		run.Metrics.PatternOrphans.WithLabelValues(s.Pattern.Name()).Set(float64(len(s.Orphans)))
	}
	run.Printer.Orphans(run.Dataset.Title, run.Dataset.Name, r)
	run.Logger.Info("orphans found", "orphans", r.Len(), "targets", r.TargetCount, "roots", r.RootCount)
	return nil
}

// FlowStage checks the components of one dataset flow.
type FlowStage struct {
	FlowID string
}

func (FlowStage) Name() string { return "flow" }

func (s FlowStage) Run(_ context.Context, run *Run) error {
	def := run.Dataset.Flow(s.FlowID)
	if def == nil {
		return fmt.Errorf("flow %q is not defined in dataset %s", s.FlowID, run.Dataset.Name)
	}
	statuses, err := flow.Check(run.Graph, def.Components)
	if err != nil {
		return err
	}
	run.Statuses = statuses
	connected, orphaned := flow.Summary(statuses)
	run.Metrics.FlowComponents.WithLabelValues(def.ID, string(flow.StateConnected)).Set(float64(connected))
	run.Metrics.FlowComponents.WithLabelValues(def.ID, string(flow.StateOrphaned)).Set(float64(orphaned))
	run.Printer.Flow(def.Title, statuses)
	run.Logger.Info("flow checked", "flow", def.ID, "connected", connected, "orphaned", orphaned)
	return nil
}

// RecommendStage prints the fixed remediation list.
type RecommendStage struct{}

func (RecommendStage) Name() string { return "recommendations" }

func (RecommendStage) Run(_ context.Context, run *Run) error {
	run.Recommendations = recommend.Static()
	for _, rec := range run.Recommendations {
		run.Metrics.Recommendations.WithLabelValues(string(rec.Priority)).Inc()
	}
	run.Printer.Recommendations(run.Recommendations)
	return nil
}

// SummaryStage prints the closing banner. It needs the orphan report.
type SummaryStage struct{}

func (SummaryStage) Name() string { return "summary" }

func (SummaryStage) Run(_ context.Context, run *Run) error {
	if run.Report == nil {
		return errors.New("no orphan report: orphans stage must run first")
	}
	run.Printer.Summary(run.Report.Len())
	return nil
}
