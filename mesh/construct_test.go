package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCreateFaceTriangle(t *testing.T) {
	m := NewMesh()
	v0 := m.CreateVertex(mgl64.Vec3{0, 0, 0})
	v1 := m.CreateVertex(mgl64.Vec3{1, 0, 0})
	v2 := m.CreateVertex(mgl64.Vec3{0, 1, 0})

	f, err := m.CreateFace([]Index{v0, v1, v2})
	if err != nil {
		t.Fatalf("CreateFace: %v", err)
	}

	if got := m.VertexCount(); got != 3 {
		t.Errorf("VertexCount = %d, want 3", got)
	}
	if got := m.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3", got)
	}
	if got := m.FaceCount(); got != 1 {
		t.Errorf("FaceCount = %d, want 1", got)
	}
	if got := m.LoopCount(); got != 3 {
		t.Errorf("LoopCount = %d, want 3", got)
	}

	fv, ok := m.Face(f)
	if !ok {
		t.Fatalf("Face(%d) not found", f)
	}
	if fv.ElementCount != 3 {
		t.Errorf("ElementCount = %d, want 3", fv.ElementCount)
	}

	if r := m.Validate(); !r.OK() {
		t.Errorf("Validate: %v", r.Errors)
	}
}

func TestCreateFaceRejectsShortRing(t *testing.T) {
	m := NewMesh()
	v0 := m.CreateVertex(mgl64.Vec3{0, 0, 0})
	v1 := m.CreateVertex(mgl64.Vec3{1, 0, 0})

	if _, err := m.CreateFace([]Index{v0, v1}); err == nil {
		t.Fatal("expected error for 2-vertex ring")
	}
}

func TestCreateFaceRejectsRepeatedConsecutiveVertex(t *testing.T) {
	m := NewMesh()
	v0 := m.CreateVertex(mgl64.Vec3{0, 0, 0})
	v1 := m.CreateVertex(mgl64.Vec3{1, 0, 0})
	v2 := m.CreateVertex(mgl64.Vec3{0, 1, 0})

	if _, err := m.CreateFace([]Index{v0, v1, v1, v2}); err == nil {
		t.Fatal("expected error for repeated consecutive vertex")
	}
}

func TestFindOrCreateEdgeReusesExisting(t *testing.T) {
	m := NewMesh()
	v0 := m.CreateVertex(mgl64.Vec3{0, 0, 0})
	v1 := m.CreateVertex(mgl64.Vec3{1, 0, 0})

	e1, err := m.FindOrCreateEdge(v0, v1)
	if err != nil {
		t.Fatalf("FindOrCreateEdge: %v", err)
	}
	e2, err := m.FindOrCreateEdge(v1, v0)
	if err != nil {
		t.Fatalf("FindOrCreateEdge: %v", err)
	}
	if e1 != e2 {
		t.Errorf("expected same edge regardless of argument order, got %d and %d", e1, e2)
	}
	if got := m.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1", got)
	}
}

func TestQuadSplitAllEdges(t *testing.T) {
	m := NewMesh()
	v0 := m.CreateVertex(mgl64.Vec3{0, 0, 0})
	v1 := m.CreateVertex(mgl64.Vec3{1, 0, 0})
	v2 := m.CreateVertex(mgl64.Vec3{1, 1, 0})
	v3 := m.CreateVertex(mgl64.Vec3{0, 1, 0})
	if _, err := m.CreateFace([]Index{v0, v1, v2, v3}); err != nil {
		t.Fatalf("CreateFace: %v", err)
	}

	edges := []Index{}
	m.ForEachEdge(func(i Index, _ *Edge) { edges = append(edges, i) })
	for _, e := range edges {
		ev, ok := m.Edge(e)
		if !ok {
			continue
		}
		a, _ := m.Vertex(ev.AVertex)
		b, _ := m.Vertex(ev.OVertex)
		midpoint := a.Position.Add(b.Position).Mul(0.5)
		if _, _, err := m.SplitEdgeMakeVertex(e, midpoint); err != nil {
			t.Fatalf("SplitEdgeMakeVertex: %v", err)
		}
	}

	if got := m.VertexCount(); got != 8 {
		t.Errorf("VertexCount = %d, want 8", got)
	}
	if r := m.Validate(); !r.OK() {
		t.Errorf("Validate: %v", r.Errors)
	}
}
