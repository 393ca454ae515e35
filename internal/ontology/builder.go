package ontology

import "github.com/gyaneshwarpardhi/ontocheck/internal/config"

// Build constructs a Graph from a dataset.
// Node ids are not checked for uniqueness: a later entry overwrites an earlier one.
// Target and root ids are taken as given, even when the node table lacks them.
func Build(ds *config.Dataset) *Graph {
	g := NewGraph(ds.Name)
	for _, n := range ds.Nodes {
		g.nodes[n.ID] = Node{
			ID:    n.ID,
			Type:  Type(n.Type),
			Level: n.Level,
			Name:  n.Name,
		}
	}
	for _, id := range ds.Targets {
		g.targets[id] = struct{}{}
	}
	for _, id := range ds.Roots {
		g.roots[id] = struct{}{}
	}
	return g
}
