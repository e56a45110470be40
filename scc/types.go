package scc

// Component is one strongly connected component: the labels of its member
// vertices, sorted lexicographically.
type Component []string

// Contains reports whether label is a member of the component.
// Complexity: O(len(c)).
func (c Component) Contains(label string) bool {
	for _, l := range c {
		if l == label {
			return true
		}
	}

	return false
}

// frame is one suspended DFS visit on the explicit traversal stack.
type frame struct {
	id   int   // vertex id under exploration
	succ []int // successor vertex ids
	next int   // cursor into succ
}
