// Package export converts a mesh into renderable and interchange forms.
// Like primitives, everything here is an ordinary client of mesh.Mesh's
// public API — no part of the kernel depends on this package.
package export

import (
	"fmt"
	"io"
	"text/template"

	"github.com/sksmith/gmesh/mesh"
)

// Triangulated is a flat, renderer-friendly view of a mesh: one
// position per vertex used by some face (in the order faces first
// reach it; vertices on no face are left out) and n-2 triangles (three
// vertex slots each) per n-sided face.
type Triangulated struct {
	Positions [][3]float64
	Triangles [][3]int
}

// Triangulate fan-triangulates every face of m around its first vertex.
// This assumes convex, planar faces, which holds for every shape this
// repository's primitives package produces; a concave input face will
// triangulate without error but may produce overlapping triangles.
func Triangulate(m *mesh.Mesh) Triangulated {
	var out Triangulated
	remap := make(map[mesh.Index]int)

	index := func(vi mesh.Index) int {
		if i, ok := remap[vi]; ok {
			return i
		}
		v, _ := m.Vertex(vi)
		i := len(out.Positions)
		out.Positions = append(out.Positions, [3]float64{v.Position.X(), v.Position.Y(), v.Position.Z()})
		remap[vi] = i
		return i
	}

	m.ForEachFace(func(fi mesh.Index, _ *mesh.Face) {
		ring := m.FaceVertices(fi)
		if len(ring) < 3 {
			return
		}
		apex := index(ring[0])
		for i := 1; i < len(ring)-1; i++ {
			b := index(ring[i])
			c := index(ring[i+1])
			out.Triangles = append(out.Triangles, [3]int{apex, b, c})
		}
	})

	return out
}

var objFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

var objTemplate = template.Must(template.New("obj").Funcs(objFuncs).Parse(
	`# exported mesh
{{range .Positions}}v {{index . 0}} {{index . 1}} {{index . 2}}
{{end}}{{range .Triangles}}f {{add (index . 0) 1}} {{add (index . 1) 1}} {{add (index . 2) 1}}
{{end}}`))

// WriteOBJ triangulates m and writes it to w in Wavefront OBJ format
// (1-indexed vertex references, one face per triangle).
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	tri := Triangulate(m)
	if err := objTemplate.Execute(w, tri); err != nil {
		return fmt.Errorf("export: writing obj: %w", err)
	}
	return nil
}
