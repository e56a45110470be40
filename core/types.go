// Package core: type declarations for the directed-graph arena.
//
// This file declares Vertex, Edge, Graph, the EdgeOption functional option,
// and the NewGraph constructor. Behavior lives in graph.go (mutation),
// adjacency.go (enumeration), and render.go (textual output).
package core

// DefaultWeight is the weight assigned to an edge when no WithWeight
// option is supplied. Weight is an attribute only; no algorithm reads it.
const DefaultWeight int64 = 1

// Vertex represents a node in the graph.
//
// A Vertex is identified by its immutable Label, unique within its Graph.
// Two vertices are equal iff their labels are equal; the Graph guarantees
// one Vertex instance per label. The id and incident index lists are
// internal to the arena representation.
type Vertex struct {
	id    int    // dense index into Graph.verts
	label string // unique, immutable identifier

	out []int // indices of edges leaving this vertex, insertion order
	in  []int // indices of edges entering this vertex, insertion order
}

// Label returns the vertex's unique identifier.
func (v *Vertex) Label() string { return v.label }

// OutDegree returns the number of outgoing edges, counting parallels.
func (v *Vertex) OutDegree() int { return len(v.out) }

// InDegree returns the number of incoming edges, counting parallels.
func (v *Vertex) InDegree() int { return len(v.in) }

// String implements fmt.Stringer; a vertex renders as its label.
func (v *Vertex) String() string { return v.label }

// Edge represents a directed connection between two vertices.
//
// Construction has the side effect of registering the edge in the source's
// outgoing list and the target's incoming list; no edge ever exists
// detached from its endpoints. Structurally identical edges are distinct
// arena entries and are never deduplicated.
type Edge struct {
	id   int // dense index into Graph.edges
	from int // source vertex id
	to   int // target vertex id

	// From and To are the endpoint labels, fixed at creation.
	From string
	To   string

	// Weight is the cost attribute of the edge. Defaults to DefaultWeight.
	Weight int64
}

// ID returns the edge's dense arena index (its creation rank).
func (e *Edge) ID() int { return e.id }

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithWeight sets the edge's weight attribute.
func WithWeight(w int64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// Graph is the in-memory directed graph.
//
// Vertices and edges are stored in dense slices in creation order, with a
// label index for O(1) lookup. The zero value is not usable; construct
// with NewGraph.
type Graph struct {
	verts []*Vertex      // arena, creation order
	index map[string]int // label → vertex id
	edges []*Edge        // arena, insertion order
}

// NewGraph creates an empty directed graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}
