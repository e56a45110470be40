package scc

import (
	"sort"

	"github.com/mzeevi/digra/core"
)

// unvisited marks a vertex whose discovery index has not been assigned.
const unvisited = -1

// Tarjan computes the strongly connected components of g in a single DFS
// pass. Each vertex carries a discovery index and a lowlink: the
// smallest index reachable through the DFS tree plus at most one edge to
// a vertex still on the active stack. A vertex closes a component exactly
// when its lowlink equals its own index; at that point the active stack
// is popped down to and including that vertex.
//
// Components are emitted in reverse-topological order relative to the
// condensation DAG, each with sorted member labels. Fails soft: a nil or
// empty graph yields nil.
// Complexity: O(V + E) time, O(V) memory.
func Tarjan(g *core.Graph) []Component {
	if g == nil {
		return nil
	}
	n := g.VertexCount()

	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
	}

	var (
		next   int         // next discovery index to assign
		active []int       // Tarjan's active stack of vertex ids
		frames []frame     // explicit DFS stack
		comps  []Component // emitted components, reverse-topological
	)

	// discover assigns the next index/lowlink pair and stacks the vertex.
	discover := func(id int) {
		index[id] = next
		lowlink[id] = next
		next++
		active = append(active, id)
		onStack[id] = true
		frames = append(frames, frame{id: id, succ: g.Successors(id)})
	}

	// Roots follow creation order so output is reproducible.
	for root := 0; root < n; root++ {
		if index[root] != unvisited {
			continue
		}
		discover(root)

		for len(frames) > 0 {
			top := &frames[len(frames)-1]

			// Explore the next successor, if any.
			if top.next < len(top.succ) {
				nid := top.succ[top.next]
				top.next++

				switch {
				case index[nid] == unvisited:
					discover(nid)
				case onStack[nid] && index[nid] < lowlink[top.id]:
					// Back/cross edge to the active stack.
					lowlink[top.id] = index[nid]
				}

				continue
			}

			// Successors exhausted: retire the frame, fold the lowlink
			// into the parent, and close a component at its root.
			id := top.id
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[id] < lowlink[parent.id] {
					lowlink[parent.id] = lowlink[id]
				}
			}

			if lowlink[id] == index[id] {
				var comp Component
				for {
					w := active[len(active)-1]
					active = active[:len(active)-1]
					onStack[w] = false
					comp = append(comp, g.LabelOf(w))
					if w == id {
						break
					}
				}
				sort.Strings(comp)
				comps = append(comps, comp)
			}
		}
	}

	return comps
}
