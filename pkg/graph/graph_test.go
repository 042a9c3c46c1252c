package graph

import (
	"errors"
	"testing"
)

// TestFromAdjacency_Basic tests construction from a simple adjacency mapping
func TestFromAdjacency_Basic(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{
		"A": {"B", "C"},
		"B": {"A"},
		"C": {"A"},
	})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("Expected 3 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges, got %d", g.EdgeCount())
	}
}

// TestFromAdjacency_Empty tests that an empty mapping fails construction
func TestFromAdjacency_Empty(t *testing.T) {
	_, err := FromAdjacency(map[string][]string{})
	if err == nil {
		t.Fatal("Expected error for empty adjacency mapping")
	}
	if !errors.Is(err, ErrEmptyAdjacency) {
		t.Errorf("Expected ErrEmptyAdjacency, got %v", err)
	}
	if !IsConstruction(err) {
		t.Errorf("Expected construction error, got %v", err)
	}

	_, err = FromAdjacency(nil)
	if !errors.Is(err, ErrEmptyAdjacency) {
		t.Errorf("Expected ErrEmptyAdjacency for nil mapping, got %v", err)
	}
}

// TestFromAdjacency_EmptyNodeID tests that empty identifiers fail construction
func TestFromAdjacency_EmptyNodeID(t *testing.T) {
	_, err := FromAdjacency(map[string][]string{"": {"A"}})
	if !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("Expected ErrEmptyNodeID for empty key, got %v", err)
	}

	_, err = FromAdjacency(map[string][]string{"A": {""}})
	if !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("Expected ErrEmptyNodeID for empty neighbor, got %v", err)
	}
}

// TestFromAdjacency_NeighborOnlyNodes tests nodes that appear only as neighbors
func TestFromAdjacency_NeighborOnlyNodes(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{
		"A": {"B", "C"},
	})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	for _, id := range []string{"A", "B", "C"} {
		if !g.HasNode(id) {
			t.Errorf("Expected node %q in graph", id)
		}
	}
	if g.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges, got %d", g.EdgeCount())
	}
}

// TestFromAdjacency_SymmetricEntriesCollapse tests undirected edge deduplication
func TestFromAdjacency_SymmetricEntriesCollapse(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{
		"A": {"B", "B"},
		"B": {"A"},
	})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Errorf("Expected duplicate and symmetric entries to collapse to 1 edge, got %d", g.EdgeCount())
	}
}

// TestFromAdjacency_SelfReference tests that self references add no edge
func TestFromAdjacency_SelfReference(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{"A": {"A"}})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	if !g.HasNode("A") {
		t.Error("Expected self-referencing node to be registered")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected no edges for self reference, got %d", g.EdgeCount())
	}
}

// TestFromAdjacency_IsolatedNodes tests construction with empty neighbor lists
func TestFromAdjacency_IsolatedNodes(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{
		"A": {},
		"B": {},
	})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected 0 edges, got %d", g.EdgeCount())
	}

	neighbors, err := g.Neighbors("A")
	if err != nil {
		t.Fatalf("Neighbors failed: %v", err)
	}
	if len(neighbors) != 0 {
		t.Errorf("Expected no neighbors for isolated node, got %v", neighbors)
	}
}

// TestBuilder_WeightedEdges tests weighted construction through the builder
func TestBuilder_WeightedEdges(t *testing.T) {
	g, err := NewBuilder().
		AddEdge("A", "B", 0.1).
		AddEdge("C", "A", 0.5).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	w, ok := g.Weight("A", "B")
	if !ok || w != 0.1 {
		t.Errorf("Expected weight 0.1 for (A, B), got %v (exists=%v)", w, ok)
	}

	// Lookup order must not matter
	w, ok = g.Weight("B", "A")
	if !ok || w != 0.1 {
		t.Errorf("Expected weight 0.1 for reversed lookup, got %v (exists=%v)", w, ok)
	}

	if _, ok := g.Weight("B", "C"); ok {
		t.Error("Expected no edge between B and C")
	}
}

// TestBuilder_Empty tests that building with no nodes fails
func TestBuilder_Empty(t *testing.T) {
	_, err := NewBuilder().Build()
	if !errors.Is(err, ErrEmptyAdjacency) {
		t.Errorf("Expected ErrEmptyAdjacency, got %v", err)
	}
}

// TestBuilder_OverwriteWeight tests that a repeated edge keeps the last weight
func TestBuilder_OverwriteWeight(t *testing.T) {
	g, err := NewBuilder().
		AddEdge("A", "B", 0.1).
		AddEdge("B", "A", 0.9).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.EdgeCount())
	}
	if w, _ := g.Weight("A", "B"); w != 0.9 {
		t.Errorf("Expected overwritten weight 0.9, got %v", w)
	}
}

// TestEdgeKey_Canonical tests edge key stability under endpoint order
func TestEdgeKey_Canonical(t *testing.T) {
	if got := EdgeKey("A", "B"); got != "(A, B)" {
		t.Errorf("Expected key \"(A, B)\", got %q", got)
	}
	if EdgeKey("B", "A") != EdgeKey("A", "B") {
		t.Error("Expected edge key to be independent of endpoint order")
	}
}

// TestGraph_Nodes tests sorted node listing and copy semantics
func TestGraph_Nodes(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{"C": {"A", "B"}})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	nodes := g.Nodes()
	want := []string{"A", "B", "C"}
	for i, id := range want {
		if nodes[i] != id {
			t.Fatalf("Expected nodes %v, got %v", want, nodes)
		}
	}

	// Mutating the returned slice must not affect the graph
	nodes[0] = "Z"
	if !g.HasNode("A") {
		t.Error("Graph mutated through Nodes() result")
	}
}

// TestGraph_Neighbors_Unknown tests lookup of a missing node
func TestGraph_Neighbors_Unknown(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{"A": {"B"}})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	_, err = g.Neighbors("X")
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
}

// TestGraph_Edges tests canonical, sorted edge listing
func TestGraph_Edges(t *testing.T) {
	g, err := NewBuilder().
		AddEdge("B", "A", 0.3).
		AddEdge("C", "A", 0.7).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("Expected 2 edges, got %d", len(edges))
	}
	if edges[0].Key() != "(A, B)" || edges[1].Key() != "(A, C)" {
		t.Errorf("Expected canonical sorted edges, got %v", edges)
	}
	if edges[0].Weight != 0.3 || edges[1].Weight != 0.7 {
		t.Errorf("Unexpected edge weights: %v", edges)
	}
}

// TestGraph_Degree tests degree counting
func TestGraph_Degree(t *testing.T) {
	g, err := FromAdjacency(map[string][]string{
		"A": {"B", "C"},
		"D": {},
	})
	if err != nil {
		t.Fatalf("FromAdjacency failed: %v", err)
	}

	if d := g.Degree("A"); d != 2 {
		t.Errorf("Expected degree 2 for A, got %d", d)
	}
	if d := g.Degree("D"); d != 0 {
		t.Errorf("Expected degree 0 for D, got %d", d)
	}
	if d := g.Degree("missing"); d != 0 {
		t.Errorf("Expected degree 0 for unknown node, got %d", d)
	}
}
