package augment

import (
	"github.com/mzeevi/digra/condense"
	"github.com/mzeevi/digra/core"
	"github.com/mzeevi/digra/scc"
	"github.com/mzeevi/digra/traverse"
)

// Arc is one directed label pair proposed (and inserted) by ConnectAll.
type Arc struct {
	From string
	To   string
}

// String renders the arc the way core.Edge renders.
func (a Arc) String() string { return a.From + " -> " + a.To }

// CountAdditionalEdges returns a lower bound on the number of edges that
// must be added so every vertex becomes reachable from start. It computes
// the SCC partition, builds the condensation DAG, and counts components
// with in-degree zero, excluding the component containing start: a
// zero-in-degree component other than the source's can never be entered
// by an existing edge, so each needs at least one new terminating edge.
//
// Returns 0 when the graph is already fully reachable from start. Fails
// soft: a nil or empty graph yields 0; a missing start owns no component,
// so nothing is excluded and every zero-in-degree component is counted.
// Complexity: O(V + E).
func CountAdditionalEdges(g *core.Graph, start string) int {
	if g == nil || g.VertexCount() == 0 {
		return 0
	}

	d := condense.Build(g, scc.Tarjan(g))
	startComp, hasStart := d.ComponentOf(start)

	count := 0
	for id, deg := range d.InDegrees() {
		if deg != 0 {
			continue
		}
		if hasStart && id == startComp {
			continue
		}
		count++
	}

	return count
}

// ConnectAll greedily inserts edges into g until every vertex is
// reachable from start, returning the inserted arcs in insertion order.
// Each round picks the lexicographically smallest currently-reachable
// label as the source and the lexicographically smallest unreachable
// label as the target, appends the edge to the live graph, and recomputes
// reachability. Termination is guaranteed: every round moves at least one
// vertex into the reachable set.
//
// Returns nil iff the graph was already fully reachable from start.
// Fails soft: a nil graph or missing start reaches nothing and there is
// no source vertex to grow from, so the result is nil and g is untouched.
// Complexity: O(V·(V + E)) worst case.
func ConnectAll(g *core.Graph, start string) []Arc {
	if g == nil || !g.HasVertex(start) {
		return nil
	}

	var added []Arc
	for {
		reach := traverse.ReachableSet(g, start)

		// Labels() is sorted, so the first hit on either side of the
		// membership test is the lexicographic minimum.
		src := ""
		var unreachable []string
		for _, label := range g.Labels() {
			if _, ok := reach[label]; ok {
				if src == "" {
					src = label
				}

				continue
			}
			unreachable = append(unreachable, label)
		}

		if len(unreachable) == 0 {
			return added
		}

		arc := Arc{From: src, To: unreachable[0]}
		g.AddEdge(arc.From, arc.To)
		added = append(added, arc)
	}
}
