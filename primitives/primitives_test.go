package primitives

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/gmesh/mesh"
)

func TestTriangle(t *testing.T) {
	m := mesh.NewMesh()
	f, err := Triangle(m, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	require.NoError(t, err)

	fv, ok := m.Face(f)
	require.True(t, ok)
	require.Equal(t, 3, fv.ElementCount)
	require.Equal(t, 3, m.VertexCount())

	r := m.Validate()
	require.True(t, r.OK(), "%v", r.Errors)
}

func TestPlaneGrid(t *testing.T) {
	m := mesh.NewMesh()
	faces, err := Plane(m, NewPlaneParams(4, 4))
	require.NoError(t, err)

	require.Len(t, faces, 9)
	require.Equal(t, 16, m.VertexCount())
	require.Equal(t, 24, m.EdgeCount())

	r := m.Validate()
	require.True(t, r.OK(), "%v", r.Errors)
}

func TestPlaneRejectsOutOfRangeDimensions(t *testing.T) {
	m := mesh.NewMesh()
	_, err := Plane(m, NewPlaneParams(1, 4))
	require.Error(t, err)
	require.ErrorIs(t, err, mesh.ErrInvalidArgument)

	m2 := mesh.NewMesh()
	_, err = Plane(m2, NewPlaneParams(4, 12))
	require.Error(t, err)
	require.ErrorIs(t, err, mesh.ErrInvalidArgument)
}

func TestCubeIsClosedManifold(t *testing.T) {
	cube, err := Cube(NewCubeParams(2, 2, 2))
	require.NoError(t, err)

	require.Equal(t, 8, cube.VertexCount())
	require.Equal(t, 6, cube.FaceCount())
	require.Equal(t, 12, cube.EdgeCount())
	require.Equal(t, 2, cube.EulerCharacteristic())

	r := cube.Validate()
	require.True(t, r.OK(), "%v", r.Errors)
}

func TestCubeSubdivided(t *testing.T) {
	cube, err := Cube(NewCubeParams(3, 3, 3))
	require.NoError(t, err)

	require.Equal(t, 26, cube.VertexCount())
	require.Equal(t, 24, cube.FaceCount())
	require.Equal(t, 48, cube.EdgeCount())
	require.Equal(t, 2, cube.EulerCharacteristic())

	r := cube.Validate()
	require.True(t, r.OK(), "%v", r.Errors)
}

func TestCubeRejectsOutOfRangeDimensions(t *testing.T) {
	_, err := Cube(NewCubeParams(1, 2, 2))
	require.Error(t, err)
	require.ErrorIs(t, err, mesh.ErrInvalidArgument)
}
