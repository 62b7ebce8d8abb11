package terrain

// organizeKinds threads the wall array into one singly-linked traversal
// order per kind, preserving array order within each kind, plus the list of
// NNE walls whose undersides the white sweep draws. Links are array indices
// (-1 terminates) rather than pointers, so the snapshot stays relocatable.
func (l *Level) organizeKinds() {
	l.nextKind = make([]int, len(l.Walls))
	l.nextWh = make([]int, len(l.Walls))

	for kind := KindNormal; kind < numKinds; kind++ {
		last := &l.kindHead[kind]
		*last = -1
		n := 0
		for i := range l.Walls {
			if l.Walls[i].Kind != kind {
				continue
			}
			*last = i
			last = &l.nextKind[i]
			*last = -1
			n++
		}
		if n > 0 {
			logger.Printf("terrain: %d %v walls", n, kind)
		}
	}

	last := &l.firstWh
	*last = -1
	for i := range l.Walls {
		if l.Walls[i].NewType != NewNNE {
			continue
		}
		*last = i
		last = &l.nextWh[i]
		*last = -1
	}
}
