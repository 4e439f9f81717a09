package mesh

import "github.com/go-gl/mathgl/mgl64"

// SplitEdgeMakeVertex cuts edge eIdx at pos, inserting a new vertex n
// between its two endpoints. The original edge is shortened to run
// from its "keep" endpoint to n; a new edge is created from n to the
// original "other" endpoint. Every loop that walked the original edge
// is split into two loops that walk the two halves, keeping each
// face's winding direction intact.
//
// Returns the new vertex and the new edge (n <-> other).
func (m *Mesh) SplitEdgeMakeVertex(eIdx Index, pos mgl64.Vec3) (Index, Index, error) {
	if !m.edges.valid(eIdx) {
		return UnsetIndex, UnsetIndex, newMeshError(ErrInvalidIndex, "SplitEdgeMakeVertex: edge not found", eIdx)
	}
	e := m.edges.at(eIdx)

	keep, other := e.AVertex, e.OVertex
	// Prefer the endpoint whose base_edge is e, so that endpoint's
	// disk-cycle handle never needs retargeting.
	keepV := m.vertices.at(keep)
	otherV := m.vertices.at(other)
	if keepV.BaseEdge != eIdx && otherV.BaseEdge == eIdx {
		keep, other = other, keep
	}

	n := m.CreateVertex(pos)

	ePrimeIdx := m.edges.add()
	ePrime := m.edges.at(ePrimeIdx)
	ePrime.Index = ePrimeIdx
	ePrime.AVertex = n
	ePrime.OVertex = other
	ePrime.BaseLoop = UnsetIndex

	// Replace e with e' in other's disk cycle: e' inherits the exact
	// cyclic slot e used to occupy there.
	m.diskReplace(other, eIdx, ePrimeIdx)

	// Re-home e on the keep <-> n segment.
	e = m.edges.at(eIdx)
	if e.AVertex == other {
		e.AVertex = n
	} else {
		e.OVertex = n
	}

	// e and e' form a mutual pair at n.
	eAtN := m.edges.at(eIdx)
	setDiskPrev(eAtN, n, ePrimeIdx)
	setDiskNext(eAtN, n, ePrimeIdx)
	ePrimeAtN := m.edges.at(ePrimeIdx)
	setDiskPrev(ePrimeAtN, n, eIdx)
	setDiskNext(ePrimeAtN, n, eIdx)

	nV := m.vertices.at(n)
	nV.BaseEdge = ePrimeIdx

	// Split every loop that walked e into a [start, n] half (kept on
	// the original loop) and an [n, end] half (a freshly minted loop
	// inserted right after it in the face's cycle).
	type assignment struct {
		loopIdx Index
		edgeIdx Index
	}
	var assignments []assignment

	for _, lIdx := range m.radialSnapshot(eIdx) {
		l := m.loops.at(lIdx)
		s := l.StartVertex
		faceIdx := l.Face
		oldNext := l.NextLoop

		var segToN, segFromN Index
		if s == keep {
			segToN = eIdx
			segFromN = ePrimeIdx
		} else {
			segToN = ePrimeIdx
			segFromN = eIdx
		}

		lpIdx := m.loops.add()
		lp := m.loops.at(lpIdx)
		lp.Index = lpIdx
		lp.Face = faceIdx
		lp.StartVertex = n
		lp.Edge = segFromN

		l = m.loops.at(lIdx)
		l.Edge = segToN
		l.NextLoop = lpIdx
		lp.PrevLoop = lIdx
		lp.NextLoop = oldNext

		nextRec := m.loops.at(oldNext)
		nextRec.PrevLoop = lpIdx

		f := m.faces.at(faceIdx)
		f.ElementCount++

		assignments = append(assignments, assignment{lIdx, segToN}, assignment{lpIdx, segFromN})
	}

	e = m.edges.at(eIdx)
	e.BaseLoop = UnsetIndex
	ePrime = m.edges.at(ePrimeIdx)
	ePrime.BaseLoop = UnsetIndex
	for _, a := range assignments {
		m.radialInsert(a.edgeIdx, a.loopIdx)
	}

	return n, ePrimeIdx, nil
}

// JoinEdgeKillVertex is the inverse of SplitEdgeMakeVertex: it requires
// vIdx to have degree exactly 2, with eIdx one of its two incident
// edges. The edge eIdx and the vertex vIdx are removed; the other edge
// at vIdx is retargeted to run directly to eIdx's far endpoint. Returns
// false, leaving the mesh unchanged, if the precondition fails.
func (m *Mesh) JoinEdgeKillVertex(eIdx, vIdx Index) bool {
	if !m.edges.valid(eIdx) || !m.vertices.valid(vIdx) {
		return false
	}
	e := m.edges.at(eIdx)
	if e.AVertex != vIdx && e.OVertex != vIdx {
		return false
	}
	if m.vertexDegree(vIdx) != 2 {
		return false
	}

	far := otherEndpoint(e, vIdx)
	o := diskNext(e, vIdx)
	if o == eIdx {
		return false
	}

	for _, leIdx := range m.radialSnapshot(eIdx) {
		le := m.loops.at(leIdx)
		faceIdx := le.Face
		f := m.faces.at(faceIdx)

		var loIdx Index
		if le.StartVertex == vIdx {
			loIdx = le.PrevLoop
			lo := m.loops.at(loIdx)
			newNext := le.NextLoop
			lo.NextLoop = newNext
			nxt := m.loops.at(newNext)
			nxt.PrevLoop = loIdx
		} else {
			loIdx = le.NextLoop
			lo := m.loops.at(loIdx)
			newPrev := le.PrevLoop
			lo.PrevLoop = newPrev
			prv := m.loops.at(newPrev)
			prv.NextLoop = loIdx
			lo.StartVertex = far
		}

		if f.FirstLoop == leIdx {
			f.FirstLoop = loIdx
		}
		f.ElementCount--
		m.loops.invalidate(leIdx)
	}

	oEdge := m.edges.at(o)
	if oEdge.AVertex == vIdx {
		oEdge.AVertex = far
	} else {
		oEdge.OVertex = far
	}
	m.diskReplace(far, eIdx, o)

	m.edges.invalidate(eIdx)
	m.vertices.invalidate(vIdx)

	return true
}

// SplitFaceMakeEdge cuts face fIdx along a new chord between two of its
// existing boundary vertices a and b, producing a second face g on the
// far side of the chord. a and b must be distinct, non-adjacent
// vertices of fIdx's boundary (adjacent vertices would produce a
// two-sided face and are rejected).
//
// Returns the new face and the new chord edge.
func (m *Mesh) SplitFaceMakeEdge(fIdx, a, b Index) (Index, Index, error) {
	if !m.faces.valid(fIdx) {
		return UnsetIndex, UnsetIndex, newMeshError(ErrInvalidIndex, "SplitFaceMakeEdge: face not found", fIdx)
	}
	if a == b {
		return UnsetIndex, UnsetIndex, newMeshError(ErrInvalidArgument, "SplitFaceMakeEdge: a and b must be distinct", a, b)
	}

	f := m.faces.at(fIdx)
	laIdx, lbIdx := UnsetIndex, UnsetIndex
	first := f.FirstLoop
	cur := first
	for {
		l := m.loops.at(cur)
		if l.StartVertex == a {
			laIdx = cur
		}
		if l.StartVertex == b {
			lbIdx = cur
		}
		cur = l.NextLoop
		if cur == first {
			break
		}
	}
	if laIdx == UnsetIndex || lbIdx == UnsetIndex {
		return UnsetIndex, UnsetIndex, newMeshError(ErrInvalidArgument, "SplitFaceMakeEdge: vertex not on face boundary", a, b)
	}

	La := m.loops.at(laIdx)
	Lb := m.loops.at(lbIdx)
	if La.NextLoop == lbIdx || Lb.NextLoop == laIdx {
		return UnsetIndex, UnsetIndex, newMeshError(ErrInvalidArgument, "SplitFaceMakeEdge: a and b are adjacent", a, b)
	}

	chordIdx, err := m.FindOrCreateEdge(a, b)
	if err != nil {
		return UnsetIndex, UnsetIndex, err
	}

	laPrev := La.PrevLoop
	lbPrev := Lb.PrevLoop

	gIdx := m.faces.add()

	n1Idx := m.loops.add()
	n2Idx := m.loops.add()
	n1 := m.loops.at(n1Idx)
	n1.Index = n1Idx
	n1.Face = fIdx
	n1.Edge = chordIdx
	n1.StartVertex = b
	n2 := m.loops.at(n2Idx)
	n2.Index = n2Idx
	n2.Face = gIdx
	n2.Edge = chordIdx
	n2.StartVertex = a

	lbPrevL := m.loops.at(lbPrev)
	lbPrevL.NextLoop = n1Idx
	n1.PrevLoop = lbPrev
	n1.NextLoop = laIdx
	La = m.loops.at(laIdx)
	La.PrevLoop = n1Idx

	laPrevL := m.loops.at(laPrev)
	laPrevL.NextLoop = n2Idx
	n2.PrevLoop = laPrev
	n2.NextLoop = lbIdx
	Lb = m.loops.at(lbIdx)
	Lb.PrevLoop = n2Idx

	gCount := 0
	cur = lbIdx
	for {
		l := m.loops.at(cur)
		l.Face = gIdx
		gCount++
		if cur == laPrev {
			break
		}
		cur = l.NextLoop
	}
	gCount++ // n2

	g := m.faces.at(gIdx)
	g.Index = gIdx
	g.FirstLoop = lbIdx
	g.ElementCount = gCount

	f = m.faces.at(fIdx)
	movedCount := gCount - 1
	f.ElementCount = f.ElementCount + 1 - movedCount
	f.FirstLoop = laIdx

	chordEdge := m.edges.at(chordIdx)
	chordEdge.BaseLoop = UnsetIndex
	m.radialInsert(chordIdx, n1Idx)
	m.radialInsert(chordIdx, n2Idx)

	return gIdx, chordIdx, nil
}

// JoinFacesKillEdge is the inverse of SplitFaceMakeEdge: f1 and f2 must
// be distinct, live faces sharing exactly one edge. That edge (and the
// two loops that walked it) is removed and f2's remaining boundary is
// spliced into f1, which keeps its own material and smoothing
// attributes; f2's are discarded with it. Returns false, leaving the
// mesh unchanged, if the precondition fails.
func (m *Mesh) JoinFacesKillEdge(f1Idx, f2Idx Index) bool {
	if f1Idx == f2Idx {
		return false
	}
	if !m.faces.valid(f1Idx) || !m.faces.valid(f2Idx) {
		return false
	}

	f1 := m.faces.at(f1Idx)
	sharedEdge := UnsetIndex
	var l1Idx, l2Idx Index = UnsetIndex, UnsetIndex
	count := 0

	first := f1.FirstLoop
	cur := first
	for {
		l := m.loops.at(cur)
		if l.NextRadial != cur {
			otherL := m.loops.at(l.NextRadial)
			if otherL.Face == f2Idx {
				count++
				sharedEdge = l.Edge
				l1Idx = cur
				l2Idx = l.NextRadial
			}
		}
		cur = l.NextLoop
		if cur == first {
			break
		}
	}
	if count != 1 {
		return false
	}

	f2 := m.faces.at(f2Idx)
	f2Count := f2.ElementCount

	l1 := m.loops.at(l1Idx)
	l2 := m.loops.at(l2Idx)
	prev1, next1 := l1.PrevLoop, l1.NextLoop
	prev2, next2 := l2.PrevLoop, l2.NextLoop

	prev1L := m.loops.at(prev1)
	prev1L.NextLoop = next2
	next2L := m.loops.at(next2)
	next2L.PrevLoop = prev1

	prev2L := m.loops.at(prev2)
	prev2L.NextLoop = next1
	next1L := m.loops.at(next1)
	next1L.PrevLoop = prev2

	cur2 := next2
	for {
		l := m.loops.at(cur2)
		l.Face = f1Idx
		if cur2 == prev2 {
			break
		}
		cur2 = l.NextLoop
	}

	f1 = m.faces.at(f1Idx)
	f1.ElementCount = f1.ElementCount + f2Count - 2
	f1.FirstLoop = next1

	e := m.edges.at(sharedEdge)
	av, ov := e.AVertex, e.OVertex
	m.diskRemove(av, sharedEdge)
	m.diskRemove(ov, sharedEdge)

	m.loops.invalidate(l1Idx)
	m.loops.invalidate(l2Idx)
	m.edges.invalidate(sharedEdge)
	m.faces.invalidate(f2Idx)

	return true
}

// FlipFace reverses face fIdx's winding direction in place: every loop
// swaps its prev/next pointers and starts at the other endpoint of its
// edge. Disk and radial cycles are untouched — at the radial cap of two
// loops per edge, reversing the loop direction never changes which
// loops are radial partners.
func (m *Mesh) FlipFace(fIdx Index) error {
	if !m.faces.valid(fIdx) {
		return newMeshError(ErrInvalidIndex, "FlipFace: face not found", fIdx)
	}
	f := m.faces.at(fIdx)
	first := f.FirstLoop
	if first == UnsetIndex {
		return nil
	}

	idxs := m.faceLoopSnapshot(fIdx)
	for _, li := range idxs {
		l := m.loops.at(li)
		l.PrevLoop, l.NextLoop = l.NextLoop, l.PrevLoop
		e := m.edges.at(l.Edge)
		l.StartVertex = otherEndpoint(e, l.StartVertex)
	}
	return nil
}
