// Package core: textual rendering for diagnostics.
package core

import "strings"

// String implements fmt.Stringer; an edge renders as "<from> -> <to>".
func (e *Edge) String() string {
	return e.From + " -> " + e.To
}

// Render produces a human-readable listing of all edges, one
// "<from> -> <to>" line per edge in insertion order. Insertion order makes
// the output reproducible across runs for the same construction sequence.
// Complexity: O(E).
func (g *Graph) Render() string {
	var b strings.Builder
	for _, e := range g.edges {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// String implements fmt.Stringer for Graph; identical to Render.
func (g *Graph) String() string { return g.Render() }
