package ontology

import "sort"

// Graph holds the node table together with the reduced edge information:
// which ids are the target of some edge, and which ids are layer roots.
// It is immutable once built.
type Graph struct {
	name    string
	nodes   map[string]Node     // id → Node
	targets map[string]struct{} // ids with at least one incoming edge
	roots   map[string]struct{} // layer tops
}

// NewGraph allocates an empty Graph.
func NewGraph(name string) *Graph {
	return &Graph{
		name:    name,
		nodes:   make(map[string]Node),
		targets: make(map[string]struct{}),
		roots:   make(map[string]struct{}),
	}
}

// Name returns the dataset name the graph was built from.
func (g *Graph) Name() string { return g.name }

// Lookup returns the node with the given id, or a *MissingKeyError.
func (g *Graph) Lookup(id string) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, &MissingKeyError{Key: id}
	}
	return n, nil
}

// Has reports whether id is a key of the node table.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// IsTarget reports whether id receives at least one edge.
func (g *Graph) IsTarget(id string) bool {
	_, ok := g.targets[id]
	return ok
}

// IsRoot reports whether id is a layer root.
func (g *Graph) IsRoot(id string) bool {
	_, ok := g.roots[id]
	return ok
}

// NodeIDs returns every node table key, sorted.
func (g *Graph) NodeIDs() []string {
	return sortedKeys(g.nodes)
}

// Nodes returns every node, sorted by id.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, id := range g.NodeIDs() {
		out = append(out, g.nodes[id])
	}
	return out
}

// Targets returns the target set, sorted.
func (g *Graph) Targets() []string { return sortedKeys(g.targets) }

// Roots returns the root set, sorted.
func (g *Graph) Roots() []string { return sortedKeys(g.roots) }

// NodeCount returns the number of node table entries.
func (g *Graph) NodeCount() int { return len(g.nodes) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
