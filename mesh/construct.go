package mesh

import "github.com/go-gl/mathgl/mgl64"

// CreateVertex adds a new, disconnected vertex at pos and returns its
// Index.
func (m *Mesh) CreateVertex(pos mgl64.Vec3) Index {
	idx := m.vertices.add()
	v := m.vertices.at(idx)
	v.Index = idx
	v.Position = pos
	v.BaseEdge = UnsetIndex
	return idx
}

// CreateVertices adds a new vertex for each position and returns their
// indices in the same order.
func (m *Mesh) CreateVertices(positions []mgl64.Vec3) []Index {
	out := make([]Index, len(positions))
	for i, p := range positions {
		out[i] = m.CreateVertex(p)
	}
	return out
}

// findEdgeBetween walks v0's disk cycle looking for an edge already
// connecting v0 and v1.
func (m *Mesh) findEdgeBetween(v0, v1 Index) (Index, bool) {
	v := m.vertices.at(v0)
	if v.BaseEdge == UnsetIndex {
		return UnsetIndex, false
	}
	start := v.BaseEdge
	cur := start
	for {
		e := m.edges.at(cur)
		if e.AVertex == v1 || e.OVertex == v1 {
			return cur, true
		}
		cur = diskNext(e, v0)
		if cur == start {
			break
		}
	}
	return UnsetIndex, false
}

// FindOrCreateEdge returns the edge between v0 and v1, creating it (and
// threading it into both endpoints' disk cycles) if it doesn't already
// exist.
func (m *Mesh) FindOrCreateEdge(v0, v1 Index) (Index, error) {
	if !m.vertices.valid(v0) || !m.vertices.valid(v1) {
		return UnsetIndex, newMeshError(ErrInvalidIndex, "FindOrCreateEdge: vertex not found", v0, v1)
	}
	if v0 == v1 {
		return UnsetIndex, newMeshError(ErrInvalidArgument, "FindOrCreateEdge: endpoints must be distinct", v0, v1)
	}
	if found, ok := m.findEdgeBetween(v0, v1); ok {
		return found, nil
	}

	eIdx := m.edges.add()
	e := m.edges.at(eIdx)
	e.Index = eIdx
	e.AVertex = v0
	e.OVertex = v1
	e.BaseLoop = UnsetIndex

	m.diskInsert(v0, eIdx)
	m.diskInsert(v1, eIdx)

	return eIdx, nil
}

// CreateFace builds a new face bounded by ring, an ordered, cyclic list
// of at least three existing vertices. Edges between consecutive
// vertices (wrapping around) are created as needed via
// FindOrCreateEdge. Consecutive vertices (including the wrap) must be
// distinct.
func (m *Mesh) CreateFace(ring []Index) (Index, error) {
	n := len(ring)
	if n < 3 {
		return UnsetIndex, newMeshError(ErrInvalidArgument, "CreateFace: ring must have at least 3 vertices")
	}
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		if !m.vertices.valid(a) {
			return UnsetIndex, newMeshError(ErrInvalidIndex, "CreateFace: vertex not found", a)
		}
		if a == b {
			return UnsetIndex, newMeshError(ErrInvalidArgument, "CreateFace: consecutive ring vertices must be distinct", a, b)
		}
	}

	edgeIdxs := make([]Index, n)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		eIdx, err := m.FindOrCreateEdge(a, b)
		if err != nil {
			return UnsetIndex, err
		}
		edgeIdxs[i] = eIdx
	}

	faceIdx := m.faces.add()
	loopIdxs := make([]Index, n)
	for i := 0; i < n; i++ {
		lIdx := m.loops.add()
		loopIdxs[i] = lIdx
		l := m.loops.at(lIdx)
		l.Index = lIdx
		l.Face = faceIdx
		l.Edge = edgeIdxs[i]
		l.StartVertex = ring[i]
	}
	first := m.initLoopCycle(loopIdxs)

	f := m.faces.at(faceIdx)
	f.Index = faceIdx
	f.FirstLoop = first
	f.ElementCount = n

	for i := 0; i < n; i++ {
		m.radialInsert(edgeIdxs[i], loopIdxs[i])
	}

	if m.debug {
		m.logger.Debug("created face", debugFields(faceIdx, n)...)
	}

	return faceIdx, nil
}
