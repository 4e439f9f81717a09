package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/gmesh/mesh"
	"github.com/sksmith/gmesh/primitives"
)

func TestTriangulateQuadProducesTwoTriangles(t *testing.T) {
	m := mesh.NewMesh()
	_, err := primitives.Quad(m,
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0}, mgl64.Vec3{0, 1, 0})
	require.NoError(t, err)

	tri := Triangulate(m)
	require.Len(t, tri.Positions, 4)
	require.Len(t, tri.Triangles, 2)
}

func TestWriteOBJProducesVerticesAndFaces(t *testing.T) {
	m := mesh.NewMesh()
	_, err := primitives.Triangle(m, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m))

	out := buf.String()
	require.Equal(t, 3, strings.Count(out, "\nv "))
	require.Contains(t, out, "f 1 2 3")
}
