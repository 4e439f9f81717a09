// Package primitives builds simple shapes on top of the mesh kernel.
// None of this is part of the kernel itself: every function here is a
// client of mesh.Mesh's public construction API, the same API any other
// procedural tool would use.
package primitives

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sksmith/gmesh/mesh"
)

// Triangle adds three vertices at a, b, c and a single triangular face
// winding through them in that order.
func Triangle(m *mesh.Mesh, a, b, c mgl64.Vec3) (mesh.Index, error) {
	v0 := m.CreateVertex(a)
	v1 := m.CreateVertex(b)
	v2 := m.CreateVertex(c)
	return m.CreateFace([]mesh.Index{v0, v1, v2})
}

// Quad adds four vertices at a, b, c, d and a single quadrilateral face
// winding through them in that order.
func Quad(m *mesh.Mesh, a, b, c, d mgl64.Vec3) (mesh.Index, error) {
	v0 := m.CreateVertex(a)
	v1 := m.CreateVertex(b)
	v2 := m.CreateVertex(c)
	v3 := m.CreateVertex(d)
	return m.CreateFace([]mesh.Index{v0, v1, v2, v3})
}

// combineWeldEpsilon is the default coincident-vertex tolerance used
// when welding Cube's six constituent planes, matching spec.md §4.6's
// documented default for Combine.
const combineWeldEpsilon = 1e-5

// PlaneParams describes an NX x NY grid of quad faces lying (before
// rotation) in the XY plane, with NX, NY counting *vertices* per side
// (so an NX x NY plane has (NX-1)*(NY-1) faces). NewPlaneParams fills
// in the collaborator contract's documented defaults; a bare
// PlaneParams literal uses its fields exactly as given.
type PlaneParams struct {
	NX, NY      int
	Translation mgl64.Vec3
	RotationDeg mgl64.Vec3
	Scale       [2]float64
}

// NewPlaneParams returns a PlaneParams for an NX x NY grid with the
// collaborator contract's defaults: Scale = {1, 1} and
// RotationDeg = {90, 0, 0}. Plane lays its grid out in the XY plane
// with a +z surface normal, so this default rotation turns it into the
// XZ plane with its surface normal facing -y, not +z.
func NewPlaneParams(nx, ny int) PlaneParams {
	return PlaneParams{
		NX: nx, NY: ny,
		RotationDeg: mgl64.Vec3{90, 0, 0},
		Scale:       [2]float64{1, 1},
	}
}

// Validate reports whether NX and NY fall within the collaborator
// contract's grid-dimension range [2, 11].
func (p PlaneParams) Validate() error {
	if p.NX < 2 || p.NX > 11 {
		return fmt.Errorf("%w: primitives: plane NX must be in [2, 11], got %d", mesh.ErrInvalidArgument, p.NX)
	}
	if p.NY < 2 || p.NY > 11 {
		return fmt.Errorf("%w: primitives: plane NY must be in [2, 11], got %d", mesh.ErrInvalidArgument, p.NY)
	}
	return nil
}

// Plane adds an (NX-1) x (NY-1) grid of quad faces to m, spaced by
// Scale, translated by Translation, and rotated by RotationDeg (applied
// in X, then Y, then Z order). Returns the faces in row-major order.
func Plane(m *mesh.Mesh, p PlaneParams) ([]mesh.Index, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rot := rotationMatrix(p.RotationDeg)
	verts := make([][]mesh.Index, p.NX)
	for i := 0; i < p.NX; i++ {
		verts[i] = make([]mesh.Index, p.NY)
		for j := 0; j < p.NY; j++ {
			x := (float64(i) - float64(p.NX-1)/2) * p.Scale[0]
			y := (float64(j) - float64(p.NY-1)/2) * p.Scale[1]
			pos := p.Translation.Add(rotatePoint(mgl64.Vec3{x, y, 0}, rot))
			verts[i][j] = m.CreateVertex(pos)
		}
	}

	faces := make([]mesh.Index, 0, (p.NX-1)*(p.NY-1))
	for i := 0; i < p.NX-1; i++ {
		for j := 0; j < p.NY-1; j++ {
			ring := []mesh.Index{verts[i][j], verts[i+1][j], verts[i+1][j+1], verts[i][j+1]}
			f, err := m.CreateFace(ring)
			if err != nil {
				return nil, err
			}
			faces = append(faces, f)
		}
	}
	return faces, nil
}

// CubeParams describes an axis-aligned box built from six welded,
// subdivided planes: NX, NY, NZ count vertices along each axis (so a
// face spanning, say, X and Y carries (NX-1)*(NY-1) quads).
type CubeParams struct {
	NX, NY, NZ int
	Scale      mgl64.Vec3
}

// NewCubeParams returns a CubeParams for an NX x NY x NZ grid with the
// collaborator contract's default Scale = {1, 1, 1}.
func NewCubeParams(nx, ny, nz int) CubeParams {
	return CubeParams{NX: nx, NY: ny, NZ: nz, Scale: mgl64.Vec3{1, 1, 1}}
}

// Validate reports whether NX, NY, and NZ fall within the collaborator
// contract's grid-dimension range [2, 11].
func (p CubeParams) Validate() error {
	if p.NX < 2 || p.NX > 11 {
		return fmt.Errorf("%w: primitives: cube NX must be in [2, 11], got %d", mesh.ErrInvalidArgument, p.NX)
	}
	if p.NY < 2 || p.NY > 11 {
		return fmt.Errorf("%w: primitives: cube NY must be in [2, 11], got %d", mesh.ErrInvalidArgument, p.NY)
	}
	if p.NZ < 2 || p.NZ > 11 {
		return fmt.Errorf("%w: primitives: cube NZ must be in [2, 11], got %d", mesh.ErrInvalidArgument, p.NZ)
	}
	return nil
}

// cubeFace describes one of a cube's six sides as a Plane call: the
// rotation that carries Plane's local XY grid onto that side, the
// side's center offset from the cube's own center, and which two of
// NX/NY/NZ (and the matching scale components) span that side's grid.
type cubeFace struct {
	rotation   mgl64.Vec3
	center     mgl64.Vec3
	nx, ny     int
	sx, sy     float64
}

// Cube builds a closed box as six welded, NX x NY / NX x NZ / NY x NZ
// subdivided planes, one per side, combined via mesh.Combine with
// welding enabled so shared edges and corners become single vertices.
func Cube(p CubeParams) (*mesh.Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	scale := p.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}

	sx := float64(p.NX-1) * scale.X()
	sy := float64(p.NY-1) * scale.Y()
	sz := float64(p.NZ-1) * scale.Z()

	faces := [6]cubeFace{
		{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, sz / 2}, p.NX, p.NY, scale.X(), scale.Y()},
		{mgl64.Vec3{0, 180, 0}, mgl64.Vec3{0, 0, -sz / 2}, p.NX, p.NY, scale.X(), scale.Y()},
		{mgl64.Vec3{-90, 0, 0}, mgl64.Vec3{0, sy / 2, 0}, p.NX, p.NZ, scale.X(), scale.Z()},
		{mgl64.Vec3{90, 0, 0}, mgl64.Vec3{0, -sy / 2, 0}, p.NX, p.NZ, scale.X(), scale.Z()},
		{mgl64.Vec3{0, 90, 0}, mgl64.Vec3{sx / 2, 0, 0}, p.NZ, p.NY, scale.Z(), scale.Y()},
		{mgl64.Vec3{0, -90, 0}, mgl64.Vec3{-sx / 2, 0, 0}, p.NZ, p.NY, scale.Z(), scale.Y()},
	}

	faceMeshes := make([]*mesh.Mesh, 0, 6)
	for _, cf := range faces {
		fm := mesh.NewMesh()
		_, err := Plane(fm, PlaneParams{
			NX: cf.nx, NY: cf.ny,
			Scale:       [2]float64{cf.sx, cf.sy},
			RotationDeg: cf.rotation,
			Translation: cf.center,
		})
		if err != nil {
			return nil, err
		}
		faceMeshes = append(faceMeshes, fm)
	}

	return mesh.Combine(faceMeshes, true, combineWeldEpsilon), nil
}

func rotationMatrix(deg mgl64.Vec3) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(deg2rad(deg.X()))
	ry := mgl64.HomogRotate3DY(deg2rad(deg.Y()))
	rz := mgl64.HomogRotate3DZ(deg2rad(deg.Z()))
	return rz.Mul4(ry).Mul4(rx)
}

func rotatePoint(p mgl64.Vec3, rot mgl64.Mat4) mgl64.Vec3 {
	v := rot.Mul4x1(mgl64.Vec4{p.X(), p.Y(), p.Z(), 0})
	return mgl64.Vec3{v.X(), v.Y(), v.Z()}
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
