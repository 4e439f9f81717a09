package mesh

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"
)

// weldEntry is the Spatial wrapper stored in Combine's weld index.
type weldEntry struct {
	idx Index
	pos mgl64.Vec3
}

func (w *weldEntry) Bounds() *rtreego.Rect {
	p := rtreego.Point{w.pos.X(), w.pos.Y(), w.pos.Z()}
	r, err := rtreego.NewRect(p, []float64{1e-9, 1e-9, 1e-9})
	if err != nil {
		r, _ = rtreego.NewRect(p, []float64{1, 1, 1})
	}
	return r
}

// Combine merges several meshes into one freshly built mesh, rebuilding
// every face from its source vertex ring via CreateFace. When weld is
// true, vertices within epsilon of one another (by Euclidean distance,
// across any of the input meshes) are merged into a single destination
// vertex using an rtreego nearest-neighbour index, so adjoining meshes
// sharing a seam become topologically connected rather than merely
// coincident. Shared edges between reconstructed faces fall out of
// CreateFace's own FindOrCreateEdge lookup — Combine never touches the
// edge, loop, or radial tables directly.
func Combine(meshes []*Mesh, weld bool, epsilon float64) *Mesh {
	dst := NewMesh()
	var tree *rtreego.Rtree
	if weld {
		tree = rtreego.NewTree(3, 25, 50)
	}

	for _, src := range meshes {
		remap := make(map[Index]Index)

		src.ForEachVertex(func(i Index, v *Vertex) {
			if weld && tree.Size() > 0 {
				p := rtreego.Point{v.Position.X(), v.Position.Y(), v.Position.Z()}
				if nearest := tree.NearestNeighbor(p); nearest != nil {
					cand := nearest.(*weldEntry)
					if cand.pos.Sub(v.Position).Len() <= epsilon {
						remap[i] = cand.idx
						return
					}
				}
			}
			newIdx := dst.CreateVertex(v.Position)
			remap[i] = newIdx
			if weld {
				tree.Insert(&weldEntry{idx: newIdx, pos: v.Position})
			}
		})

		src.ForEachFace(func(i Index, f *Face) {
			ring := src.FaceVertices(i)
			mapped := make([]Index, len(ring))
			for j, v := range ring {
				mapped[j] = remap[v]
			}
			newFaceIdx, err := dst.CreateFace(mapped)
			if err != nil {
				return
			}
			nf := dst.faces.at(newFaceIdx)
			nf.MaterialTag = f.MaterialTag
			nf.SmoothFlag = f.SmoothFlag
		})
	}

	return dst
}

// ApplyTransform multiplies every vertex position by mat, in place.
func (m *Mesh) ApplyTransform(mat mgl64.Mat4) {
	m.vertices.forEach(func(i Index, v *Vertex) {
		p := mat.Mul4x1(mgl64.Vec4{v.Position.X(), v.Position.Y(), v.Position.Z(), 1})
		v.Position = mgl64.Vec3{p.X(), p.Y(), p.Z()}
	})
}

// SnapVerticesToGrid rounds every vertex position to the nearest
// multiple of cell, in place. Idempotent: snapping an already-snapped
// mesh again leaves it unchanged. A non-positive cell is a no-op.
func (m *Mesh) SnapVerticesToGrid(cell float64) {
	if cell <= 0 {
		return
	}
	m.vertices.forEach(func(i Index, v *Vertex) {
		v.Position = mgl64.Vec3{
			snapToGrid(v.Position.X(), cell),
			snapToGrid(v.Position.Y(), cell),
			snapToGrid(v.Position.Z(), cell),
		}
	})
}

func snapToGrid(x, cell float64) float64 {
	return math.Round(x/cell) * cell
}

// DeepCopy returns an independent mesh with identical element tables —
// every live element keeps its Index, and every tombstone and freelist
// slot is preserved, so indices captured against the original remain
// valid against the copy.
func (m *Mesh) DeepCopy() *Mesh {
	cp := NewMesh()
	cp.vertices = cloneArena(m.vertices)
	cp.edges = cloneArena(m.edges)
	cp.loops = cloneArena(m.loops)
	cp.faces = cloneArena(m.faces)
	cp.debug = m.debug
	cp.logger = m.logger
	return cp
}

func cloneArena[T any](a *arena[T]) *arena[T] {
	return &arena[T]{
		items: append([]T(nil), a.items...),
		tomb:  append([]bool(nil), a.tomb...),
		free:  append([]Index(nil), a.free...),
	}
}
