package mesh

// The radial cycle threads the loops that walk a single edge. Invariant
// 7 caps it at two loops (a manifold edge has exactly one face on each
// side; a border edge has exactly one loop and is its own radial
// neighbour), so unlike the disk and loop cycles this one never needs
// general-length splicing — every insert either creates a singleton or
// completes a mutual pair.

// radialInsert adds loopIdx to edgeIdx's radial cycle. Called at most
// twice per edge across its lifetime between rebuilds.
func (m *Mesh) radialInsert(edgeIdx, loopIdx Index) {
	e := m.edges.at(edgeIdx)
	l := m.loops.at(loopIdx)

	if e.BaseLoop == UnsetIndex {
		l.PrevRadial = loopIdx
		l.NextRadial = loopIdx
		e.BaseLoop = loopIdx
		return
	}

	b := e.BaseLoop
	bL := m.loops.at(b)
	bL.PrevRadial = loopIdx
	bL.NextRadial = loopIdx
	l.PrevRadial = b
	l.NextRadial = b
}

// radialRemove drops loopIdx from its edge's radial cycle, healing the
// remaining loop (if any) back to a singleton.
func (m *Mesh) radialRemove(edgeIdx, loopIdx Index) {
	e := m.edges.at(edgeIdx)
	l := m.loops.at(loopIdx)
	other := l.NextRadial

	if other == loopIdx {
		e.BaseLoop = UnsetIndex
		return
	}

	oL := m.loops.at(other)
	oL.PrevRadial = other
	oL.NextRadial = other
	e.BaseLoop = other
}

// radialSnapshot returns the (at most two) loop indices on edgeIdx's
// radial cycle, captured before mutation.
func (m *Mesh) radialSnapshot(edgeIdx Index) []Index {
	e := m.edges.at(edgeIdx)
	if e.BaseLoop == UnsetIndex {
		return nil
	}
	start := e.BaseLoop
	cur := start
	var out []Index
	for {
		out = append(out, cur)
		l := m.loops.at(cur)
		cur = l.NextRadial
		if cur == start {
			break
		}
	}
	return out
}
