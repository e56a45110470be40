package traverse

import (
	"sort"

	"github.com/mzeevi/digra/core"
)

// frame is one suspended DFS visit: the vertex being explored and a cursor
// into its successor list. Frames on the stack spell the in-progress path.
type frame struct {
	id   int   // vertex id under exploration
	succ []int // successor vertex ids, edge-insertion order
	next int   // index of the next successor to try
}

// FindPath performs a depth-first search over outgoing edges from start
// and returns the ordered label sequence of the first path found to end,
// both endpoints inclusive. Visited vertices are never revisited; on a
// dead end the in-progress path is popped before sibling branches are
// tried. The result is the first path DFS discovers, not necessarily the
// shortest.
//
// Fails soft: returns nil when g is nil, when either label is absent, or
// when no directed path exists. FindPath(s, s) returns [s] when s exists.
// Complexity: O(V + E).
func FindPath(g *core.Graph, start, end string) []string {
	// 1. Fail-soft admission checks.
	if g == nil {
		return nil
	}
	sid, ok := g.VertexID(start)
	if !ok {
		return nil
	}
	eid, ok := g.VertexID(end)
	if !ok {
		return nil
	}

	// 2. Trivial path: a vertex reaches itself.
	if sid == eid {
		return []string{start}
	}

	// 3. Iterative DFS; the frame stack doubles as the in-progress path.
	visited := make([]bool, g.VertexCount())
	visited[sid] = true
	stack := []frame{{id: sid, succ: g.Successors(sid)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		descended := false
		for top.next < len(top.succ) {
			nid := top.succ[top.next]
			top.next++

			// Target found: the path is the stack plus the target.
			if nid == eid {
				path := make([]string, 0, len(stack)+1)
				for i := range stack {
					path = append(path, g.LabelOf(stack[i].id))
				}

				return append(path, end)
			}

			if !visited[nid] {
				visited[nid] = true
				stack = append(stack, frame{id: nid, succ: g.Successors(nid)})
				descended = true

				break
			}
		}

		// Dead end: backtrack by popping the exhausted frame.
		if !descended {
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}

// ReachableFrom returns the sorted labels of every vertex reachable from
// start over outgoing edges, start itself included (a vertex trivially
// reaches itself). Fails soft: returns nil when g is nil or start is
// absent.
// Complexity: O(V + E + R log R) where R is the reachable-set size.
func ReachableFrom(g *core.Graph, start string) []string {
	set := ReachableSet(g, start)
	if len(set) == 0 {
		return nil
	}

	out := make([]string, 0, len(set))
	for label := range set {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}

// ReachableSet is ReachableFrom with set semantics: the result supports
// O(1) membership tests. The returned map is never nil; it is empty when
// g is nil or start is absent.
// Complexity: O(V + E).
func ReachableSet(g *core.Graph, start string) map[string]struct{} {
	set := make(map[string]struct{})
	if g == nil {
		return set
	}
	sid, ok := g.VertexID(start)
	if !ok {
		return set
	}

	visited := make([]bool, g.VertexCount())
	visited[sid] = true
	stack := []int{sid}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		set[g.LabelOf(id)] = struct{}{}

		for _, nid := range g.Successors(id) {
			if !visited[nid] {
				visited[nid] = true
				stack = append(stack, nid)
			}
		}
	}

	return set
}
