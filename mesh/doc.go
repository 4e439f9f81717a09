// Package mesh implements a half-edge-style polygonal mesh kernel.
//
// A Mesh holds four element tables — vertices, edges, loops, and faces —
// addressed by stable integer Index values, and exposes the Euler
// operators used by procedural modeling: SplitEdgeMakeVertex,
// JoinEdgeKillVertex, SplitFaceMakeEdge, JoinFacesKillEdge, and FlipFace,
// plus bulk operations (CreateFace from a vertex ring, deletion, Combine,
// ApplyTransform, SnapVerticesToGrid, DeepCopy).
//
// The kernel maintains three cyclic topologies over the index graph: the
// disk cycle (edges around a vertex), the loop cycle (half-edges around a
// face), and the radial cycle (half-edges sharing an edge). Every public
// operator leaves all three consistent; Validate checks this after the
// fact for test and debug builds.
//
// Mesh is not safe for concurrent use. A single mesh instance owns its
// four tables exclusively.
package mesh
