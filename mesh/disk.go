package mesh

// The disk cycle is the set of edges incident to a vertex, threaded
// through the edge's own APrev/ANext (when the vertex is the edge's
// AVertex) or OPrev/ONext (when it's the OVertex) fields rather than a
// separate adjacency list. diskNext/diskPrev/setDiskNext/setDiskPrev
// pick the right pair of fields for whichever side of the edge faces v.

func diskNext(e *Edge, v Index) Index {
	if e.AVertex == v {
		return e.ANext
	}
	return e.ONext
}

func diskPrev(e *Edge, v Index) Index {
	if e.AVertex == v {
		return e.APrev
	}
	return e.OPrev
}

func setDiskNext(e *Edge, v Index, val Index) {
	if e.AVertex == v {
		e.ANext = val
	} else {
		e.ONext = val
	}
}

func setDiskPrev(e *Edge, v Index, val Index) {
	if e.AVertex == v {
		e.APrev = val
	} else {
		e.OPrev = val
	}
}

// diskInsert threads edge eIdx into vertex vIdx's disk cycle,
// immediately after v's BaseEdge (or as the sole element if the disk is
// currently empty).
func (m *Mesh) diskInsert(vIdx, eIdx Index) {
	v := m.vertices.at(vIdx)
	e := m.edges.at(eIdx)
	if v.BaseEdge == UnsetIndex {
		setDiskNext(e, vIdx, eIdx)
		setDiskPrev(e, vIdx, eIdx)
		v.BaseEdge = eIdx
		return
	}
	b := v.BaseEdge
	bEdge := m.edges.at(b)
	bNext := diskNext(bEdge, vIdx)

	setDiskNext(bEdge, vIdx, eIdx)
	setDiskPrev(e, vIdx, b)
	setDiskNext(e, vIdx, bNext)

	bNextEdge := m.edges.at(bNext)
	setDiskPrev(bNextEdge, vIdx, eIdx)
}

// diskRemove unthreads edge eIdx from vertex vIdx's disk cycle. If
// eIdx was v's BaseEdge, a neighbour takes over; if eIdx was the only
// edge at v, BaseEdge becomes Unset.
func (m *Mesh) diskRemove(vIdx, eIdx Index) {
	v := m.vertices.at(vIdx)
	e := m.edges.at(eIdx)
	p := diskPrev(e, vIdx)
	n := diskNext(e, vIdx)

	if p == eIdx {
		v.BaseEdge = UnsetIndex
		return
	}

	pEdge := m.edges.at(p)
	nEdge := m.edges.at(n)
	setDiskNext(pEdge, vIdx, n)
	setDiskPrev(nEdge, vIdx, p)

	if v.BaseEdge == eIdx {
		v.BaseEdge = n
	}
}

// diskReplace swaps oldIdx for newIdx at vertex vIdx's disk cycle,
// preserving oldIdx's former neighbours and BaseEdge status. Used by
// SplitEdgeMakeVertex (the far endpoint keeps its cyclic position while
// the edge touching it is replaced) and by JoinEdgeKillVertex (the
// inverse: an edge slides into the slot of the one it's merging into).
func (m *Mesh) diskReplace(vIdx, oldIdx, newIdx Index) {
	v := m.vertices.at(vIdx)
	oldE := m.edges.at(oldIdx)
	p := diskPrev(oldE, vIdx)
	n := diskNext(oldE, vIdx)
	newE := m.edges.at(newIdx)

	if p == oldIdx {
		setDiskPrev(newE, vIdx, newIdx)
		setDiskNext(newE, vIdx, newIdx)
	} else {
		setDiskPrev(newE, vIdx, p)
		setDiskNext(newE, vIdx, n)
		pEdge := m.edges.at(p)
		setDiskNext(pEdge, vIdx, newIdx)
		nEdge := m.edges.at(n)
		setDiskPrev(nEdge, vIdx, newIdx)
	}

	if v.BaseEdge == oldIdx {
		v.BaseEdge = newIdx
	}
}

// diskSnapshot returns the full list of edge indices around vIdx, in
// cyclic order, captured before any mutation. DeleteVertex relies on
// this instead of live traversal, since deleting an edge out from under
// a running disk-cycle walk would leave the walk reading healed
// pointers mid-stride.
func (m *Mesh) diskSnapshot(vIdx Index) []Index {
	v := m.vertices.at(vIdx)
	if v.BaseEdge == UnsetIndex {
		return nil
	}
	start := v.BaseEdge
	cur := start
	var out []Index
	for {
		out = append(out, cur)
		e := m.edges.at(cur)
		cur = diskNext(e, vIdx)
		if cur == start {
			break
		}
	}
	return out
}

// vertexDegree counts the edges in vIdx's disk cycle.
func (m *Mesh) vertexDegree(vIdx Index) int {
	v := m.vertices.at(vIdx)
	if v.BaseEdge == UnsetIndex {
		return 0
	}
	start := v.BaseEdge
	cur := start
	count := 0
	for {
		count++
		e := m.edges.at(cur)
		cur = diskNext(e, vIdx)
		if cur == start {
			break
		}
	}
	return count
}

// otherEndpoint returns whichever of e's two vertices is not v.
func otherEndpoint(e *Edge, v Index) Index {
	if e.AVertex == v {
		return e.OVertex
	}
	return e.AVertex
}
