// Package scc decomposes a directed core.Graph into its strongly
// connected components: maximal vertex subsets in which every member
// reaches every other member via directed paths within the subset.
//
// Two independent algorithms are provided, alternate implementations of
// one semantics:
//
//   - Tarjan: a single DFS pass maintaining per-vertex discovery index
//     and lowlink over an active stack. Components are emitted in
//     reverse-topological order of the condensation DAG.
//   - Kosaraju: two DFS passes: finish order over outgoing edges, then
//     collection over the transpose adjacency. Components are emitted in
//     an order consistent with finishing times on the original graph.
//
// For any graph the two produce the same partition: exhaustive (every
// vertex appears in exactly one component) and pairwise disjoint. A
// vertex with no cycle through it forms its own singleton component.
//
// Both traversals use explicit frame stacks, so recursion depth never
// bounds graph size, and Kosaraju reads the graph's reverse-adjacency
// view instead of flipping edges, so the graph is left intact for repeated
// analyses. Component membership is sorted lexicographically, and
// traversal roots follow vertex-creation order, so output is reproducible
// for a given construction sequence.
//
// Complexity: O(V + E) time and O(V) memory for either algorithm.
package scc
