package scc

import (
	"sort"

	"github.com/mzeevi/digra/core"
)

// Kosaraju computes the strongly connected components of g in two DFS
// passes. Pass 1 traverses outgoing edges from every unvisited vertex and
// records each vertex after all its descendants are processed (finish
// order). Pass 2 walks vertices in decreasing finish order and collects
// one component per root by traversing the transpose adjacency.
//
// The transpose is read from the graph's reverse-adjacency view
// (core.Graph.Predecessors); no edge is modified, so the graph stays
// intact for later queries. Components are emitted in finish-time order,
// each with sorted member labels. Fails soft: a nil or empty graph yields
// nil.
// Complexity: O(V + E) time, O(V) memory.
func Kosaraju(g *core.Graph) []Component {
	if g == nil {
		return nil
	}
	n := g.VertexCount()

	// Pass 1: finish order over outgoing edges.
	visited := make([]bool, n)
	order := make([]int, 0, n)
	var frames []frame

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		frames = append(frames[:0], frame{id: root, succ: g.Successors(root)})

		for len(frames) > 0 {
			top := &frames[len(frames)-1]

			if top.next < len(top.succ) {
				nid := top.succ[top.next]
				top.next++
				if !visited[nid] {
					visited[nid] = true
					frames = append(frames, frame{id: nid, succ: g.Successors(nid)})
				}

				continue
			}

			// All descendants processed: record finish.
			order = append(order, top.id)
			frames = frames[:len(frames)-1]
		}
	}

	// Pass 2: collect components over the transpose, latest finisher first.
	assigned := make([]bool, n)
	var comps []Component

	for i := n - 1; i >= 0; i-- {
		root := order[i]
		if assigned[root] {
			continue
		}

		var comp Component
		assigned[root] = true
		stack := []int{root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, g.LabelOf(id))

			for _, pid := range g.Predecessors(id) {
				if !assigned[pid] {
					assigned[pid] = true
					stack = append(stack, pid)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}
