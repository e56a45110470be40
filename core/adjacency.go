// Package core: enumeration surfaces over the arena.
//
// Determinism:
//   - Labels() returns labels sorted lexicographically ascending.
//   - Order(), Edges(), OutEdges(), InEdges() follow creation order.
//   - Successors() and Predecessors() follow edge-insertion order.
//
// None of these mutate the graph; Predecessors is the reverse-adjacency
// view, so transpose traversals never touch stored edges.
package core

import "sort"

// Labels returns all vertex labels sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Labels() []string {
	out := make([]string, len(g.verts))
	for i, v := range g.verts {
		out[i] = v.label
	}
	sort.Strings(out)

	return out
}

// Order returns all vertex labels in creation order.
// Complexity: O(V).
func (g *Graph) Order() []string {
	out := make([]string, len(g.verts))
	for i, v := range g.verts {
		out[i] = v.label
	}

	return out
}

// Edges returns the edge arena in insertion order.
// The slice is a copy; the *Edge values are shared with the graph.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutEdges returns the edges leaving label in insertion order.
// Absent labels yield nil.
// Complexity: O(deg_out).
func (g *Graph) OutEdges(label string) []*Edge {
	id, ok := g.index[label]
	if !ok {
		return nil
	}

	return g.edgesAt(g.verts[id].out)
}

// InEdges returns the edges entering label in insertion order.
// Absent labels yield nil.
// Complexity: O(deg_in).
func (g *Graph) InEdges(label string) []*Edge {
	id, ok := g.index[label]
	if !ok {
		return nil
	}

	return g.edgesAt(g.verts[id].in)
}

// Successors returns the target vertex ids of all edges leaving id,
// in edge-insertion order. Parallel edges contribute one entry each.
// Complexity: O(deg_out).
func (g *Graph) Successors(id int) []int {
	v := g.verts[id]
	out := make([]int, len(v.out))
	for i, eid := range v.out {
		out[i] = g.edges[eid].to
	}

	return out
}

// Predecessors returns the source vertex ids of all edges entering id,
// in edge-insertion order. This is the transpose adjacency: traversing it
// walks every edge backwards without modifying the graph.
// Complexity: O(deg_in).
func (g *Graph) Predecessors(id int) []int {
	v := g.verts[id]
	out := make([]int, len(v.in))
	for i, eid := range v.in {
		out[i] = g.edges[eid].from
	}

	return out
}

// Neighbors returns the deduplicated labels adjacent to label through any
// incident edge, outgoing or incoming, sorted lexicographically.
// Absent labels yield nil.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(label string) []string {
	id, ok := g.index[label]
	if !ok {
		return nil
	}
	v := g.verts[id]

	seen := make(map[int]struct{}, len(v.out)+len(v.in))
	for _, eid := range v.out {
		seen[g.edges[eid].to] = struct{}{}
	}
	for _, eid := range v.in {
		seen[g.edges[eid].from] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for nid := range seen {
		out = append(out, g.verts[nid].label)
	}
	sort.Strings(out)

	return out
}

// edgesAt resolves a list of edge indices into edge pointers.
func (g *Graph) edgesAt(ids []int) []*Edge {
	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out
}
