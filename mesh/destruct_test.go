package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDeleteFaceIsIdempotent(t *testing.T) {
	m, f, _ := buildTriangle(t)

	m.DeleteFace(f)
	if got := m.FaceCount(); got != 0 {
		t.Errorf("FaceCount after delete = %d, want 0", got)
	}
	if got := m.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount after face delete = %d, want 3 (edges survive as wire edges)", got)
	}

	// Second delete on an already-tombstoned face must be a silent no-op.
	m.DeleteFace(f)
	if got := m.FaceCount(); got != 0 {
		t.Errorf("FaceCount after second delete = %d, want 0", got)
	}

	if r := m.Validate(); !r.OK() {
		t.Errorf("Validate: %v", r.Errors)
	}
}

func TestDeleteVertexCascades(t *testing.T) {
	m, _, v := buildTriangle(t)

	m.DeleteVertex(v[0])

	if got := m.VertexCount(); got != 2 {
		t.Errorf("VertexCount = %d, want 2", got)
	}
	if got := m.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1 (the opposite edge survives as a wire edge)", got)
	}
	if got := m.FaceCount(); got != 0 {
		t.Errorf("FaceCount = %d, want 0", got)
	}

	if r := m.Validate(); !r.OK() {
		t.Errorf("Validate: %v", r.Errors)
	}
}

func TestDeleteEdgeLeavesWireVertices(t *testing.T) {
	m := NewMesh()
	v0 := m.CreateVertex(mgl64.Vec3{0, 0, 0})
	v1 := m.CreateVertex(mgl64.Vec3{1, 0, 0})
	e, err := m.FindOrCreateEdge(v0, v1)
	if err != nil {
		t.Fatalf("FindOrCreateEdge: %v", err)
	}

	m.DeleteEdge(e)

	if got := m.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount = %d, want 0", got)
	}
	if got := m.VertexCount(); got != 2 {
		t.Errorf("VertexCount = %d, want 2 (vertices survive edge deletion)", got)
	}
}
