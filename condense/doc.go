// Package condense builds the condensation of a directed core.Graph: the
// graph obtained by collapsing each strongly connected component into a
// single node and rebuilding the edges between components.
//
// Build assigns each component an integer id, its position in the
// supplied partition, and maps every vertex label to its component id.
// For every graph edge whose endpoints fall in different components, a
// directed edge is recorded between the two component ids, deduplicated.
// Intra-component edges vanish by construction.
//
// Collapsing SCCs removes every cycle, so the condensation is a DAG; the
// Acyclic method verifies that invariant and the test suite exercises it.
//
// Complexity: Build is O(V + E); queries are O(1) or proportional to the
// answer size.
package condense
