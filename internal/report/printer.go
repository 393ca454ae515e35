// Package report renders analysis results as console text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gyaneshwarpardhi/ontocheck/internal/flow"
	"github.com/gyaneshwarpardhi/ontocheck/internal/orphan"
	"github.com/gyaneshwarpardhi/ontocheck/internal/recommend"
)

const (
	wideRule   = 80
	rule       = 60
	bucketRule = 50
	flowRule   = 40
)

// scanLabels names each pattern scan in the special-pattern section.
var scanLabels = map[string]string{
	"config": "CONFIGURATION NODES",
	"react":  "REACT-SPECIFIC ELEMENTS",
	"entity": "ENTITY/COMPONENT NODES",
}

// Printer writes report sections to w. The first write error is kept and
// every later write becomes a no-op; check Err when done.
type Printer struct {
	w   io.Writer
	err error

	ok  lipgloss.Style
	bad lipgloss.Style
}

// New returns a Printer bound to w. Colors are only emitted when w is a terminal.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:   w,
		ok:  r.NewStyle().Foreground(lipgloss.Color("2")),
		bad: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) section(title string) {
	p.printf("\n%s\n%s\n%s\n", strings.Repeat("=", rule), title, strings.Repeat("=", rule))
}

// Orphans prints the header, the counts, the per-layer buckets and the
// special-pattern scans.
func (p *Printer) Orphans(title, dataset string, r *orphan.Report) {
	p.printf("%s\n%s\n%s\n", strings.Repeat("=", wideRule), strings.ToUpper(title)+" ORPHAN NODE ANALYSIS", strings.Repeat("=", wideRule))

	p.printf("\nTOTAL %s NODES: %d\n", strings.ToUpper(dataset), r.TotalNodes)
	p.printf("ROOT NODES (excluded): %d\n", r.RootCount)
	p.printf("NODES WITH INCOMING EDGES: %d\n", r.TargetCount)
	p.printf("ORPHANED NODES: %d\n", r.Len())

	p.section("ORPHANED NODES BY ONTOLOGY TYPE")
	for _, b := range r.ByType {
		p.printf("\n%s ONTOLOGY - %d orphaned nodes:\n%s\n", strings.ToUpper(string(b.Type)), len(b.Orphans), strings.Repeat("-", bucketRule))
		if len(b.Orphans) == 0 {
			p.printf("  %s\n", p.ok.Render("✓ No orphaned nodes found"))
			continue
		}
		for _, o := range b.Orphans {
			p.printf("  • %s\n    Name: %s\n    Level: %s\n\n", o.ID, o.Name, o.Level)
		}
	}

	p.section("SPECIAL PATTERN ANALYSIS")
	for _, s := range []orphan.Scan{r.Config, r.React, r.Entity} {
		label, ok := scanLabels[s.Pattern.Name()]
		if !ok {
			label = strings.ToUpper(s.Pattern.Name()) + " NODES"
		}
		p.printf("\n%s: %d orphaned\n", label, len(s.Orphans))
		for _, o := range s.Orphans {
			p.printf("  • %s: %s\n", o.ID, o.Name)
		}
	}
}

// Flow prints one status block per flow component.
func (p *Printer) Flow(title string, statuses []flow.Status) {
	p.section(strings.ToUpper(title) + " COMPLETENESS ANALYSIS")
	p.printf("\n%s Components Status:\n%s\n", title, strings.Repeat("-", flowRule))
	for _, s := range statuses {
		label := p.bad.Render("✗ " + string(s.State))
		if s.State == flow.StateConnected {
			label = p.ok.Render("✓ " + string(s.State))
		}
		p.printf("%s: %s\n           ID: %s\n\n", label, s.Name, s.ID)
	}
}

// Recommendations prints the numbered remediation list.
func (p *Printer) Recommendations(recs []recommend.Recommendation) {
	p.section("IMPLEMENTATION RECOMMENDATIONS")
	for i, rec := range recs {
		p.printf("\n%d. %s [%s PRIORITY]\n", i+1, rec.Category, rec.Priority)
		p.printf("   Issue: %s\n   Impact: %s\n   Action: %s\n", rec.Issue, rec.Impact, rec.Action)
	}
}

// Summary prints the closing banner with the total orphan count.
func (p *Printer) Summary(orphans int) {
	p.section("ANALYSIS COMPLETE")
	p.printf("Total orphaned nodes found: %d\n", orphans)
	p.printf("Review recommendations above for remediation steps.\n")
}
