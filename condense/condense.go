package condense

import (
	"sort"

	"github.com/mzeevi/digra/core"
	"github.com/mzeevi/digra/scc"
)

// DAG is the condensation of a graph under an SCC partition.
//
// Component ids are positions in the partition passed to Build; the
// member and successor views preserve that numbering, so results are
// reproducible for a given partition.
type DAG struct {
	comps     []scc.Component // partition, id = index
	byLabel   map[string]int  // vertex label → component id
	succ      [][]int         // component id → sorted unique successor ids
	inDegrees []int           // component id → count of deduplicated incoming DAG edges
}

// Build constructs the condensation of g under the partition comps.
// Every vertex of g must appear in exactly one component (the contract
// scc.Tarjan and scc.Kosaraju both satisfy). Graph edges whose endpoints
// map to different component ids become DAG edges, deduplicated;
// successor lists are sorted ascending.
//
// Fails soft: a nil graph or empty partition yields an empty DAG.
// Complexity: O(V + E + C log C) where C is the DAG edge count.
func Build(g *core.Graph, comps []scc.Component) *DAG {
	d := &DAG{byLabel: make(map[string]int)}
	if g == nil || len(comps) == 0 {
		return d
	}

	// 1. Number components by position and index every member label.
	d.comps = comps
	for id, comp := range comps {
		for _, label := range comp {
			d.byLabel[label] = id
		}
	}

	// 2. Rebuild inter-component edges, deduplicated via a set per source.
	seen := make(map[[2]int]struct{}, g.EdgeCount())
	d.succ = make([][]int, len(comps))
	d.inDegrees = make([]int, len(comps))
	for _, e := range g.Edges() {
		from, to := d.byLabel[e.From], d.byLabel[e.To]
		if from == to {
			continue // intra-component edge collapses away
		}
		key := [2]int{from, to}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		d.succ[from] = append(d.succ[from], to)
		d.inDegrees[to]++
	}

	// 3. Sort successor lists for reproducible enumeration.
	for _, s := range d.succ {
		sort.Ints(s)
	}

	return d
}

// Size returns the number of components.
func (d *DAG) Size() int { return len(d.comps) }

// ComponentOf returns the component id containing label, or false when
// the label was not part of the partition.
// Complexity: O(1).
func (d *DAG) ComponentOf(label string) (int, bool) {
	id, ok := d.byLabel[label]

	return id, ok
}

// Members returns the sorted member labels of component id.
func (d *DAG) Members(id int) scc.Component { return d.comps[id] }

// Successors returns the sorted, deduplicated successor component ids of
// component id. The slice is shared; callers must not modify it.
func (d *DAG) Successors(id int) []int { return d.succ[id] }

// InDegrees returns the in-degree of every component in the condensation,
// indexed by component id, counting deduplicated inter-component edges.
// The slice is a copy.
// Complexity: O(C).
func (d *DAG) InDegrees() []int {
	out := make([]int, len(d.inDegrees))
	copy(out, d.inDegrees)

	return out
}

// Acyclic reports whether the condensation contains no directed cycle.
// Collapsing SCCs guarantees this by construction; the method exists so
// the invariant can be checked rather than assumed.
// Uses iterative three-color DFS (white/gray/black).
// Complexity: O(C + D) where D is the DAG edge count.
func (d *DAG) Acyclic() bool {
	const (
		white = iota // unvisited
		gray         // on the current DFS path
		black        // fully explored
	)
	state := make([]int, len(d.comps))

	type frame struct {
		id   int
		next int
	}

	for root := range d.comps {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack := []frame{{id: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			succ := d.succ[top.id]

			if top.next < len(succ) {
				nid := succ[top.next]
				top.next++
				switch state[nid] {
				case gray:
					return false // back edge closes a cycle
				case white:
					state[nid] = gray
					stack = append(stack, frame{id: nid})
				}

				continue
			}

			state[top.id] = black
			stack = stack[:len(stack)-1]
		}
	}

	return true
}
