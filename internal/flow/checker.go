// Package flow reports whether each node of a named scenario flow is reached
// by at least one edge.
package flow

import (
	"fmt"

	"github.com/gyaneshwarpardhi/ontocheck/internal/ontology"
)

// State is the connectivity verdict for one flow component.
type State string

const (
	StateConnected State = "CONNECTED"
	StateOrphaned  State = "ORPHANED"
)

// Status is the verdict for one flow component.
type Status struct {
	ID    string
	Name  string
	State State
}

// Check resolves each id in order and marks it CONNECTED when it is an edge
// target, ORPHANED otherwise. Roots get no exemption here.
// An id missing from the node table aborts the check with a *ontology.MissingKeyError.
func Check(g *ontology.Graph, ids []string) ([]Status, error) {
	out := make([]Status, 0, len(ids))
	for _, id := range ids {
		n, err := g.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("flow component: %w", err)
		}
		st := StateOrphaned
		if g.IsTarget(id) {
			st = StateConnected
		}
		out = append(out, Status{ID: id, Name: n.Name, State: st})
	}
	return out, nil
}

// Summary counts connected and orphaned components.
func Summary(statuses []Status) (connected, orphaned int) {
	for _, s := range statuses {
		if s.State == StateConnected {
			connected++
		} else {
			orphaned++
		}
	}
	return connected, orphaned
}
