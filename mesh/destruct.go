package mesh

// DeleteFace tombstones f and every loop in its cycle, detaching each
// loop from its edge's radial cycle as it goes. A no-op if f is already
// invalid.
func (m *Mesh) DeleteFace(fIdx Index) {
	if !m.faces.valid(fIdx) {
		return
	}
	f := m.faces.at(fIdx)
	first := f.FirstLoop
	if first != UnsetIndex {
		cur := first
		for {
			l := m.loops.at(cur)
			next := l.NextLoop
			m.radialRemove(l.Edge, cur)
			m.loops.invalidate(cur)
			if next == first {
				break
			}
			cur = next
		}
	}
	m.faces.invalidate(fIdx)
}

// DeleteEdge tombstones e, cascading to delete every face on its radial
// cycle first, then unthreading e from both endpoints' disk cycles. A
// no-op if e is already invalid.
func (m *Mesh) DeleteEdge(eIdx Index) {
	if !m.edges.valid(eIdx) {
		return
	}
	for _, lIdx := range m.radialSnapshot(eIdx) {
		l, ok := m.loops.get(lIdx)
		if !ok {
			continue
		}
		m.DeleteFace(l.Face)
	}

	e := m.edges.at(eIdx)
	av, ov := e.AVertex, e.OVertex
	m.diskRemove(av, eIdx)
	m.diskRemove(ov, eIdx)
	m.edges.invalidate(eIdx)
}

// DeleteVertex tombstones v, cascading to delete every edge in its disk
// cycle (which in turn cascades to their incident faces). A no-op if v
// is already invalid.
func (m *Mesh) DeleteVertex(vIdx Index) {
	if !m.vertices.valid(vIdx) {
		return
	}
	for _, eIdx := range m.diskSnapshot(vIdx) {
		m.DeleteEdge(eIdx)
	}
	m.vertices.invalidate(vIdx)
}
