package mesh

// DiskEdges returns the edges incident to vertex v, in cyclic order.
// Returns nil if v is not a live vertex or has no incident edges.
func (m *Mesh) DiskEdges(v Index) []Index {
	if !m.vertices.valid(v) {
		return nil
	}
	return m.diskSnapshot(v)
}

// FaceLoops returns the loops bounding face f, in cyclic order.
// Returns nil if f is not a live face.
func (m *Mesh) FaceLoops(f Index) []Index {
	if !m.faces.valid(f) {
		return nil
	}
	return m.faceLoopSnapshot(f)
}

// RadialLoops returns the (at most two) loops walking edge e, in
// cyclic order. Returns nil if e is not a live edge or has no faces.
func (m *Mesh) RadialLoops(e Index) []Index {
	if !m.edges.valid(e) {
		return nil
	}
	return m.radialSnapshot(e)
}
