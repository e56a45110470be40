// Package core defines the central Graph, Vertex, and Edge types for a
// mutable, append-only directed graph, and the primitives every other
// package in this module builds on.
//
// What:
//
//   - Vertex: a node identified by a unique string label, holding its
//     incident edges (outgoing and incoming).
//   - Edge: a directed, weighted connection between two vertices. An edge
//     is created already attached to both endpoints.
//   - Graph: owns the vertex registry and the edge collection. Vertices
//     and edges live in dense arenas addressed by integer ids; adjacency
//     is expressed as index lists, so iteration order and identity are
//     explicit and reproducible rather than incidental.
//
// Mutation is infallible: EnsureVertex creates missing vertices lazily and
// is idempotent; AddEdge always succeeds, creating any missing endpoint.
// There is no vertex or edge deletion; the graph only grows. Parallel
// edges between the same ordered pair and self-loops are both legal, and
// parallel edges stay distinct entries in the arena.
//
// Edge weight defaults to 1 and is carried as an attribute only; no
// algorithm in this module consumes it.
//
// Concurrency: Graph holds no internal locks. All operations assume
// single-threaded use; callers that share a Graph across goroutines must
// serialize access themselves.
//
// Complexity: EnsureVertex and AddEdge are O(1) amortized; enumeration
// surfaces are O(V) or O(E) per call.
package core
