// Package core: mutation and lookup primitives on the Graph arena.
//
// Mutation cannot fail: missing endpoints are created lazily and the graph
// imposes no structural restrictions (self-loops and parallel edges are
// both legal). All operations here are O(1) amortized.
package core

// EnsureVertex returns the Vertex for label, creating it with empty
// incident lists if absent. Idempotent: repeated calls with the same label
// return the same instance.
// Complexity: O(1) amortized.
func (g *Graph) EnsureVertex(label string) *Vertex {
	if id, ok := g.index[label]; ok {
		return g.verts[id]
	}
	v := &Vertex{id: len(g.verts), label: label}
	g.verts = append(g.verts, v)
	g.index[label] = v.id

	return v
}

// AddEdge constructs a directed edge from one label to another, lazily
// creating either endpoint, and registers it in the source's outgoing
// list, the target's incoming list, and the graph's edge arena.
// Weight defaults to DefaultWeight unless WithWeight is supplied.
// Self-loops and parallel edges are permitted; every call appends a
// distinct edge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) *Edge {
	// 1. Ensure both endpoints exist (idempotent).
	src := g.EnsureVertex(from)
	dst := g.EnsureVertex(to)

	// 2. Construct the edge with default weight, then apply options.
	e := &Edge{
		id:     len(g.edges),
		from:   src.id,
		to:     dst.id,
		From:   src.label,
		To:     dst.label,
		Weight: DefaultWeight,
	}
	for _, opt := range opts {
		opt(e)
	}

	// 3. Register in both endpoints and the arena.
	src.out = append(src.out, e.id)
	dst.in = append(dst.in, e.id)
	g.edges = append(g.edges, e)

	return e
}

// HasVertex reports whether a vertex with the given label exists.
// Complexity: O(1).
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.index[label]

	return ok
}

// Lookup returns the Vertex for label without creating it.
// The second result is false when the label is absent.
// Complexity: O(1).
func (g *Graph) Lookup(label string) (*Vertex, bool) {
	id, ok := g.index[label]
	if !ok {
		return nil, false
	}

	return g.verts[id], true
}

// VertexID returns the dense id for label, or false when absent.
// Algorithms that walk the arena by index use this as their entry point.
// Complexity: O(1).
func (g *Graph) VertexID(label string) (int, bool) {
	id, ok := g.index[label]

	return id, ok
}

// LabelOf returns the label of the vertex with dense id.
// The id must come from this graph (VertexID, Successors, Predecessors).
// Complexity: O(1).
func (g *Graph) LabelOf(id int) string { return g.verts[id].label }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.verts) }

// EdgeCount returns the number of edges, counting parallels.
func (g *Graph) EdgeCount() int { return len(g.edges) }
