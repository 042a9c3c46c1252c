// Package graph provides an immutable undirected weighted graph built once
// from an adjacency mapping. All accessors are pure reads, so a Graph is safe
// for concurrent use after construction.
package graph

import (
	"fmt"
	"sort"
)

// Edge is an undirected edge in canonical form: From sorts before To.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Key returns the canonical string form of the edge, stable regardless of
// which endpoint was visited first.
func (e Edge) Key() string {
	return EdgeKey(e.From, e.To)
}

// EdgeKey returns the canonical string form "(a, b)" for the undirected edge
// between a and b, with endpoints in lexicographic order.
func EdgeKey(a, b string) string {
	a, b = orderPair(a, b)
	return fmt.Sprintf("(%s, %s)", a, b)
}

func orderPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// Graph is an immutable undirected weighted graph. The zero value is not
// usable; construct one with FromAdjacency or a Builder.
type Graph struct {
	nodes   []string            // lexicographically sorted
	adj     map[string][]string // sorted neighbor lists
	weights map[[2]string]float64
}

// FromAdjacency builds a graph from a node -> neighbor-list mapping. Every key
// and every listed neighbor becomes a node; each (key, neighbor) entry becomes
// a single undirected edge with weight 0, duplicates and symmetric entries
// collapsing together. Self references register the node but add no edge.
//
// Construction fails with ErrEmptyAdjacency when the mapping is empty and with
// ErrEmptyNodeID when a key or neighbor is the empty string.
func FromAdjacency(adjacency map[string][]string) (*Graph, error) {
	if len(adjacency) == 0 {
		return nil, BuildError(ErrEmptyAdjacency)
	}

	b := NewBuilder()
	for node, neighbors := range adjacency {
		b.AddNode(node)
		for _, neighbor := range neighbors {
			b.AddEdge(node, neighbor, 0)
		}
	}
	return b.Build()
}

// Builder accumulates nodes and weighted edges for a single Build call.
// A later AddEdge for the same undirected pair overwrites the weight.
type Builder struct {
	present map[string]bool
	weights map[[2]string]float64
	err     error
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{
		present: make(map[string]bool),
		weights: make(map[[2]string]float64),
	}
}

// AddNode registers a node with no implied edges.
func (b *Builder) AddNode(id string) *Builder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = NodeError("AddNode", id, ErrEmptyNodeID)
		return b
	}
	b.present[id] = true
	return b
}

// AddEdge registers an undirected weighted edge, adding both endpoints as
// nodes. (from, to) and (to, from) are the same edge. A self reference only
// registers the node.
func (b *Builder) AddEdge(from, to string, weight float64) *Builder {
	if b.err != nil {
		return b
	}
	if from == "" || to == "" {
		b.err = EdgeError("AddEdge", EdgeKey(from, to), ErrEmptyNodeID)
		return b
	}
	b.present[from] = true
	b.present[to] = true
	if from == to {
		return b
	}
	a, z := orderPair(from, to)
	b.weights[[2]string{a, z}] = weight
	return b
}

// Build freezes the accumulated structure into an immutable Graph. It fails
// with ErrEmptyAdjacency when no nodes were added, and with the first
// accumulated input error otherwise.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.present) == 0 {
		return nil, BuildError(ErrEmptyAdjacency)
	}

	nodes := make([]string, 0, len(b.present))
	for id := range b.present {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)

	adj := make(map[string][]string, len(nodes))
	weights := make(map[[2]string]float64, len(b.weights))
	for pair, w := range b.weights {
		weights[pair] = w
		adj[pair[0]] = append(adj[pair[0]], pair[1])
		adj[pair[1]] = append(adj[pair[1]], pair[0])
	}
	for _, neighbors := range adj {
		sort.Strings(neighbors)
	}

	return &Graph{nodes: nodes, adj: adj, weights: weights}, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return len(g.weights)
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	i := sort.SearchStrings(g.nodes, id)
	return i < len(g.nodes) && g.nodes[i] == id
}

// Nodes returns all node identifiers in lexicographic order. The returned
// slice is a copy.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Neighbors returns the sorted neighbor identifiers of id. The returned slice
// is a copy; a node with no edges yields an empty slice.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, NodeError("Neighbors", id, ErrNodeNotFound)
	}
	neighbors := make([]string, len(g.adj[id]))
	copy(neighbors, g.adj[id])
	return neighbors, nil
}

// Degree returns the number of edges incident to id, or 0 for unknown ids.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// Weight returns the weight of the undirected edge between a and b, and
// whether that edge exists.
func (g *Graph) Weight(a, b string) (float64, bool) {
	x, y := orderPair(a, b)
	w, ok := g.weights[[2]string{x, y}]
	return w, ok
}

// Edges returns all edges in canonical form, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.weights))
	for pair, w := range g.weights {
		edges = append(edges, Edge{From: pair[0], To: pair[1], Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
