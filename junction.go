package terrain

// Junction is a deduplicated cluster of wall endpoints. The stored position
// is whichever endpoint was seen first; later endpoints within the merge box
// fold into it unchanged.
type Junction struct {
	X, Y int
}

const (
	// sentinelX pads sorted junction and patch arrays so fixed-stride
	// lookahead scans never read past live data.
	sentinelX    = 20000
	numSentinels = 18
)

// detectJunctions merges every wall endpoint into the junction set. The
// merge test is an inclusive ±3 box on each axis, four inequalities, not a
// radius; the asymmetry versus the close-pair test is part of the renderer's
// visible behavior. Junctions are then insertion-sorted by x (stable) and
// padded with sentinels.
func (l *Level) detectJunctions() {
	js := make([]Junction, 0, 2*len(l.Walls)+numSentinels)

	for i := range l.Walls {
		for n := 0; n < 2; n++ {
			x, y := l.Walls[i].endpoint(n)
			found := false
			for _, j := range js {
				if j.X <= x+3 && j.X >= x-3 && j.Y <= y+3 && j.Y >= y-3 {
					found = true
					break
				}
			}
			if !found {
				js = append(js, Junction{x, y})
			}
		}
	}
	l.numJunctions = len(js)

	for i := 1; i < len(js); i++ {
		for m := i; m > 0 && js[m].X < js[m-1].X; m-- {
			js[m], js[m-1] = js[m-1], js[m]
		}
	}

	for i := 0; i < numSentinels; i++ {
		js = append(js, Junction{X: sentinelX})
	}
	l.Junctions = js
}

// consumeJunction removes the junction at index i, shifting the tail left
// one slot. The slice keeps its length; the gap at the end repeats the last
// sentinel.
func (l *Level) consumeJunction(i int) {
	copy(l.Junctions[i:], l.Junctions[i+1:])
	l.numJunctions--
}
