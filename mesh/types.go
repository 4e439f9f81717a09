package mesh

import "github.com/go-gl/mathgl/mgl64"

// Index addresses an element within one of a Mesh's four tables. It is
// stable across unrelated mutations: an element keeps its Index for its
// entire lifetime, including while tombstoned, until the slot is reused
// by a later Create call.
type Index int

// UnsetIndex marks the absence of a reference — an empty disk, loop, or
// radial cycle, or a field that has not been assigned yet.
const UnsetIndex Index = -1

// Vertex is a point in space together with the head of its disk cycle
// (the edges incident to it).
type Vertex struct {
	Index    Index
	Position mgl64.Vec3
	BaseEdge Index
}

// Edge connects two vertices and carries the head of the disk cycle it
// participates in at each endpoint, plus the head of its radial cycle
// (the loops, at most two, that walk this edge).
type Edge struct {
	Index Index

	AVertex, OVertex Index
	APrev, ANext     Index // disk cycle at AVertex
	OPrev, ONext     Index // disk cycle at OVertex

	BaseLoop Index // radial cycle head
}

// Loop is one directed traversal of an Edge around a Face: it starts at
// StartVertex, runs along Edge, and sits between PrevLoop/NextLoop in
// its face's loop cycle and between PrevRadial/NextRadial in its edge's
// radial cycle.
type Loop struct {
	Index Index

	Face        Index
	Edge        Index
	StartVertex Index

	PrevLoop, NextLoop     Index
	PrevRadial, NextRadial Index
}

// Face is a planar polygon described by its loop cycle. ElementCount is
// the number of sides (loops) currently in that cycle, maintained
// incrementally by every operator that touches it.
type Face struct {
	Index        Index
	FirstLoop    Index
	ElementCount int

	MaterialTag string
	SmoothFlag  bool
}
