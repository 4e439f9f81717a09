// Package gmesh is a half-edge-style polygonal mesh toolkit for
// procedural modeling. It has no importable code of its own; it exists
// to document the module as a whole. Import its subpackages directly:
// mesh (the kernel), primitives (shape builders), and export
// (renderable/interchange output).
//
// # Basic Usage
//
// The simplest way to build a mesh is through the primitives package:
//
//	m := mesh.NewMesh()
//	face, err := primitives.Quad(m, a, b, c, d)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Shapes
//
// The primitives package provides parametric builders on top of the
// kernel:
//   - Triangle, Quad: single-face primitives from explicit positions.
//   - Plane: a rectangular, subdivided grid of quads.
//   - Cube: six welded planes, assembled via mesh.Combine.
//
// # Operators
//
// The mesh package's Euler operators:
//   - SplitEdgeMakeVertex: cuts an edge, inserting a vertex.
//   - JoinEdgeKillVertex: the inverse, collapsing a degree-2 vertex.
//   - SplitFaceMakeEdge: inserts a chord, splitting a face in two.
//   - JoinFacesKillEdge: the inverse, fusing two faces across an edge.
//   - FlipFace: reverses a face's winding direction.
//
// # Validation
//
// Every mesh can be structurally checked:
//
//	if report := m.Validate(); !report.OK() {
//		log.Printf("invalid mesh: %v", report.Errors)
//	}
//
// Validate walks every disk, loop, and radial cycle; ValidateCounts
// runs only the O(1) per-element checks. Both are intended for test
// and debug builds, never the hot path.
//
// # Export
//
// The export package triangulates a mesh (fan triangulation from each
// face's first vertex) and can write it as Wavefront OBJ.
//
// # Thread Safety
//
// A Mesh is not safe for concurrent use. Concurrent mutation by more
// than one goroutine is undefined; concurrent readers are safe only
// while no writer is active.
package gmesh
