package mesh

// The loop cycle threads the sides of a face through Loop.PrevLoop and
// Loop.NextLoop. Unlike the disk and radial cycles it has no natural
// length cap, so construction and the Euler operators splice it
// directly rather than going through a generic insert/remove pair.

// initLoopCycle links a freshly allocated run of loop indices into a
// single cycle, in order, and returns the first one (the new face's
// FirstLoop).
func (m *Mesh) initLoopCycle(loopIdxs []Index) Index {
	n := len(loopIdxs)
	for i := 0; i < n; i++ {
		cur := m.loops.at(loopIdxs[i])
		cur.NextLoop = loopIdxs[(i+1)%n]
		cur.PrevLoop = loopIdxs[(i-1+n)%n]
	}
	return loopIdxs[0]
}

// faceLoopSnapshot returns the loop indices of a face's cycle in walk
// order, starting at FirstLoop.
func (m *Mesh) faceLoopSnapshot(fIdx Index) []Index {
	f := m.faces.at(fIdx)
	if f.FirstLoop == UnsetIndex {
		return nil
	}
	start := f.FirstLoop
	cur := start
	var out []Index
	for {
		out = append(out, cur)
		l := m.loops.at(cur)
		cur = l.NextLoop
		if cur == start {
			break
		}
	}
	return out
}
