// Package lineage holds the rules of the lineage graph that do not depend on storage:
// the self-dependency policy and cycle-safe transitive walks over model dependencies.
//
// Dependency edges form a directed multigraph. Nothing prevents cycles (an ensemble may
// legitimately point back at one of its members), so every walk tracks visited models
// and never assumes the graph is acyclic.
package lineage
