package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnitQuad(offset mgl64.Vec3) *Mesh {
	m := NewMesh()
	v0 := m.CreateVertex(mgl64.Vec3{0, 0, 0}.Add(offset))
	v1 := m.CreateVertex(mgl64.Vec3{1, 0, 0}.Add(offset))
	v2 := m.CreateVertex(mgl64.Vec3{1, 1, 0}.Add(offset))
	v3 := m.CreateVertex(mgl64.Vec3{0, 1, 0}.Add(offset))
	_, _ = m.CreateFace([]Index{v0, v1, v2, v3})
	return m
}

func TestCombineWithoutWeldKeepsMeshesDisjoint(t *testing.T) {
	a := buildUnitQuad(mgl64.Vec3{0, 0, 0})
	b := buildUnitQuad(mgl64.Vec3{1, 0, 0})

	combined := Combine([]*Mesh{a, b}, false, 0)

	require.Equal(t, 8, combined.VertexCount())
	require.Equal(t, 2, combined.FaceCount())
	require.Equal(t, 8, combined.EdgeCount())
}

func TestCombineWithWeldSharesSeam(t *testing.T) {
	a := buildUnitQuad(mgl64.Vec3{0, 0, 0})
	b := buildUnitQuad(mgl64.Vec3{1, 0, 0})

	combined := Combine([]*Mesh{a, b}, true, 1e-6)

	assert.Equal(t, 6, combined.VertexCount(), "two shared corners collapse 8 vertices to 6")
	assert.Equal(t, 2, combined.FaceCount())
	assert.Equal(t, 7, combined.EdgeCount(), "one edge is shared by both quads")

	r := combined.Validate()
	assert.True(t, r.OK(), "%v", r.Errors)
}

func TestSnapVerticesToGridIsIdempotent(t *testing.T) {
	m := NewMesh()
	v := m.CreateVertex(mgl64.Vec3{0.12, 0.97, -0.04})

	m.SnapVerticesToGrid(0.25)
	first, _ := m.Vertex(v)

	m.SnapVerticesToGrid(0.25)
	second, _ := m.Vertex(v)

	assert.Equal(t, first.Position, second.Position)
}

func TestApplyTransformTranslates(t *testing.T) {
	m := NewMesh()
	v := m.CreateVertex(mgl64.Vec3{1, 2, 3})

	m.ApplyTransform(mgl64.Translate3D(1, 1, 1))

	got, _ := m.Vertex(v)
	assert.Equal(t, mgl64.Vec3{2, 3, 4}, got.Position)
}

func TestDeepCopyIsIndependent(t *testing.T) {
	m, f, v := buildTriangle(t)
	cp := m.DeepCopy()

	m.DeleteFace(f)

	require.Equal(t, 0, m.FaceCount())
	require.Equal(t, 1, cp.FaceCount(), "copy must be unaffected by mutation of the original")

	cpFace, ok := cp.Face(f)
	require.True(t, ok)
	require.Equal(t, 3, cpFace.ElementCount)

	cpVerts := cp.FaceVertices(f)
	require.ElementsMatch(t, []Index{v[0], v[1], v[2]}, cpVerts)
}
