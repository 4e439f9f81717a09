package mesh

import "go.uber.org/zap"

// Mesh is the element store and the home of every operator in this
// package. The zero value is not usable; construct one with NewMesh.
type Mesh struct {
	vertices *arena[Vertex]
	edges    *arena[Edge]
	loops    *arena[Loop]
	faces    *arena[Face]

	logger *zap.Logger
	debug  bool
}

// Option configures a Mesh at construction time.
type Option func(*Mesh)

// WithLogger attaches a zap logger for diagnostic output. Without this
// option a Mesh logs nothing (zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(m *Mesh) { m.logger = l }
}

// WithDebug turns on debug-level logging of each face CreateFace
// builds. It does not gate validation: Validate and ValidateCounts run
// their full checks whenever they are called, with or without it.
func WithDebug(enabled bool) Option {
	return func(m *Mesh) { m.debug = enabled }
}

// NewMesh returns an empty mesh.
func NewMesh(opts ...Option) *Mesh {
	m := &Mesh{
		vertices: newArena[Vertex](),
		edges:    newArena[Edge](),
		loops:    newArena[Loop](),
		faces:    newArena[Face](),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Vertex returns a copy of the vertex at i, if live.
func (m *Mesh) Vertex(i Index) (Vertex, bool) { return m.vertices.get(i) }

// Edge returns a copy of the edge at i, if live.
func (m *Mesh) Edge(i Index) (Edge, bool) { return m.edges.get(i) }

// Loop returns a copy of the loop at i, if live.
func (m *Mesh) Loop(i Index) (Loop, bool) { return m.loops.get(i) }

// Face returns a copy of the face at i, if live.
func (m *Mesh) Face(i Index) (Face, bool) { return m.faces.get(i) }

// VertexCount reports the number of live vertices.
func (m *Mesh) VertexCount() int { return m.vertices.validCount() }

// EdgeCount reports the number of live edges.
func (m *Mesh) EdgeCount() int { return m.edges.validCount() }

// LoopCount reports the number of live loops.
func (m *Mesh) LoopCount() int { return m.loops.validCount() }

// FaceCount reports the number of live faces.
func (m *Mesh) FaceCount() int { return m.faces.validCount() }

// EulerCharacteristic returns V - E + F.
func (m *Mesh) EulerCharacteristic() int {
	return m.VertexCount() - m.EdgeCount() + m.FaceCount()
}

// ForEachVertex visits every live vertex in index order.
func (m *Mesh) ForEachVertex(fn func(Index, *Vertex)) { m.vertices.forEach(fn) }

// ForEachEdge visits every live edge in index order.
func (m *Mesh) ForEachEdge(fn func(Index, *Edge)) { m.edges.forEach(fn) }

// ForEachLoop visits every live loop in index order.
func (m *Mesh) ForEachLoop(fn func(Index, *Loop)) { m.loops.forEach(fn) }

// ForEachFace visits every live face in index order.
func (m *Mesh) ForEachFace(fn func(Index, *Face)) { m.faces.forEach(fn) }

// VertexDegree returns the number of edges incident to v, or 0 if v is
// not a live vertex.
func (m *Mesh) VertexDegree(v Index) int {
	if !m.vertices.valid(v) {
		return 0
	}
	return m.vertexDegree(v)
}

// FaceVertices returns the vertex ring of a face in walk order.
func (m *Mesh) FaceVertices(f Index) []Index {
	if !m.faces.valid(f) {
		return nil
	}
	loops := m.faceLoopSnapshot(f)
	out := make([]Index, len(loops))
	for i, li := range loops {
		l, _ := m.loops.get(li)
		out[i] = l.StartVertex
	}
	return out
}
