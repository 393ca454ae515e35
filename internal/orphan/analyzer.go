// Package orphan finds nodes that no edge points at.
package orphan

import (
	"sort"

	"github.com/gyaneshwarpardhi/ontocheck/internal/ontology"
	"github.com/gyaneshwarpardhi/ontocheck/internal/pattern"
)

// Record is the reported view of one orphaned node.
type Record struct {
	ID    string
	Name  string
	Level string
}

// Bucket is the list of orphans for one ontology layer.
type Bucket struct {
	Type    ontology.Type
	Orphans []Record
}

// Scan is the result of running one identifier pattern over the orphan set.
type Scan struct {
	Pattern *pattern.Pattern
	Orphans []Record
}

// Report summarizes one orphan analysis.
type Report struct {
	TotalNodes  int
	RootCount   int
	TargetCount int

	// Orphans is NodeKeys − Targets − Roots.
	Orphans map[string]struct{}

	// ByType lists every declared layer in order, empty or not, followed by
	// any undeclared layer that orphans were found in.
	ByType []Bucket

	Config Scan
	React  Scan
	Entity Scan
}

// Len returns the number of orphaned nodes.
func (r *Report) Len() int { return len(r.Orphans) }

// IDs returns the orphan set, sorted.
func (r *Report) IDs() []string {
	out := make([]string, 0, len(r.Orphans))
	for id := range r.Orphans {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether id is orphaned.
func (r *Report) Contains(id string) bool {
	_, ok := r.Orphans[id]
	return ok
}

// Bucket returns the orphans recorded for layer t.
func (r *Report) Bucket(t ontology.Type) []Record {
	for _, b := range r.ByType {
		if b.Type == t {
			return b.Orphans
		}
	}
	return nil
}

// Analyze computes the orphan set of g, groups it by layer and runs the
// configuration, React-specific and entity scans over it.
func Analyze(g *ontology.Graph) (*Report, error) {
	orphans := Orphans(g)

	r := &Report{
		TotalNodes:  g.NodeCount(),
		RootCount:   len(g.Roots()),
		TargetCount: len(g.Targets()),
		Orphans:     orphans,
	}

	ids := r.IDs()
	byType := make(map[ontology.Type][]Record, 4)
	var extra []ontology.Type
	for _, id := range ids {
		n, err := g.Lookup(id)
		if err != nil {
			return nil, err
		}
		if _, seen := byType[n.Type]; !seen && !n.Type.Known() {
			extra = append(extra, n.Type)
		}
		byType[n.Type] = append(byType[n.Type], Record{ID: id, Name: n.Name, Level: n.Level})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, t := range append(ontology.Types(), extra...) {
		r.ByType = append(r.ByType, Bucket{Type: t, Orphans: byType[t]})
	}

	var err error
	if r.Config, err = scan(g, ids, pattern.Config); err != nil {
		return nil, err
	}
	if r.React, err = scan(g, ids, pattern.ReactSpecific); err != nil {
		return nil, err
	}
	if r.Entity, err = scan(g, ids, pattern.Entity); err != nil {
		return nil, err
	}
	return r, nil
}

// Orphans returns the node table keys that are neither edge targets nor roots.
func Orphans(g *ontology.Graph) map[string]struct{} {
	out := make(map[string]struct{})
	for _, id := range g.NodeIDs() {
		if g.IsTarget(id) || g.IsRoot(id) {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}

func scan(g *ontology.Graph, ids []string, p *pattern.Pattern) (Scan, error) {
	s := Scan{Pattern: p}
	for _, id := range ids {
		if !p.MatchID(id) {
			continue
		}
		n, err := g.Lookup(id)
		if err != nil {
			return Scan{}, err
		}
		s.Orphans = append(s.Orphans, Record{ID: id, Name: n.Name, Level: n.Level})
	}
	return s, nil
}
