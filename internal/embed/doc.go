// Package embed defines the central EmbeddedGraph, Vertex, and Edge types
// used throughout the pipeline: an immutable planar embedding of a graph,
// carrying a rotation system (clockwise circular order of incident edges at
// each vertex) and a designated outer face.
//
// Vertices are dense non-negative integer ids in [0,n). Edge direction
// (tail/head) is nominal until reinterpreted as outgoing/incoming relative
// to a given vertex by a consumer (the Decomposer, the PortAssigner).
//
// Invariants (see Validate):
//
//	For every edge e=(t,h): vertices[t].rotation[e.IndexAtTail] == e.ID
//	and vertices[h].rotation[e.IndexAtHead] == e.ID.
package embed
