// Package traverse implements single-source depth-first reachability and
// path reconstruction over a core.Graph, following outgoing edges only
// (directed semantics).
//
// What:
//
//   - FindPath: first directed path found by DFS from one label to
//     another, with backtracking at dead ends. Not necessarily shortest.
//   - ReachableFrom / ReachableSet: every vertex reachable from a source
//     by following outgoing edges transitively, source included.
//
// All traversals run on an explicit frame stack rather than call-stack
// recursion, so depth is bounded by heap, not goroutine stack; deep
// chains and large graphs traverse without stack exhaustion.
//
// Error model: queries fail soft. An absent start or end label, a nil
// graph, or a missing path all yield empty results; no operation here
// returns an error. Every vertex is visited at most once, which makes all
// traversals cycle-safe by construction.
//
// Complexity:
//
//   - Time:   O(V + E) per call
//   - Memory: O(V) for the visited set and frame stack
package traverse
