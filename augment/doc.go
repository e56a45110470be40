// Package augment answers how a directed core.Graph can be extended so
// that every vertex becomes reachable from a chosen source.
//
// Two independent operations with different contracts are provided, and
// deliberately kept distinct:
//
//   - CountAdditionalEdges: a structural lower bound. It condenses the
//     graph's strongly connected components into a DAG and counts the
//     components with in-degree zero, excluding the source's own. No
//     existing edge can ever enter a zero-in-degree component, so at
//     least one new edge must terminate inside each. The count is a
//     lower bound, not a constructive answer.
//   - ConnectAll: a greedy constructive procedure. While unreachable
//     vertices remain, it adds an edge from the lexicographically
//     smallest reachable label to the lexicographically smallest
//     unreachable label, appending to both the result and the live
//     graph, then recomputes reachability. It always terminates with
//     full coverage, but its result size need not match the lower bound.
//
// The two need not agree on a count for the same graph; callers pick the
// contract they need.
//
// Complexity: CountAdditionalEdges is O(V + E). ConnectAll recomputes
// reachability after each inserted edge, so O(V·(V + E)) worst case.
package augment
