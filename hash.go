package terrain

import "math/bits"

// hashFigure is the 16x6 crosshatch stamped over a junction: a single ink
// run sliding right two pixels per row.
var hashFigure = []uint16{
	0x8000, 0x6000, 0x1800, 0x0600, 0x0180, 0x0040,
}

// noCloseWh reports whether no other patch sits within the strict 3-pixel
// box around patch i. Crowded patches keep their plain data; merging them
// would double-apply the background weave.
func (l *Level) noCloseWh(i int) bool {
	p := l.Whites
	w1 := &p[i]
	for k := i - 1; k >= 0 && p[k].X > w1.X-3; k-- {
		if p[k].Y > w1.Y-3 && p[k].Y < w1.Y+3 {
			return false
		}
	}
	for k := i + 1; k < len(p) && p[k].X < w1.X+3; k++ {
		if p[k].Y > w1.Y-3 && p[k].Y < w1.Y+3 {
			return false
		}
	}
	return true
}

// whiteHashMerge folds each junction's crosshatch into the full-height white
// patch sitting exactly on it, so the sweep can draw both with one exclusive
// OR blit. Merged patches flip to HasJ and the junction is consumed; the
// crosshatch sweep then never visits it again. Patches near the world seam
// or the left margin stay unmerged because the wrapped pass re-draws them.
func (l *Level) whiteHashMerge() {
	j := 0
	for i := 0; i < len(l.Whites) && l.Whites[i].X < l.WorldWidth-8; i++ {
		wh := &l.Whites[i]
		if wh.Ht != patchRows || wh.X <= 8 || !l.noCloseWh(i) {
			continue
		}
		for j > 0 && l.Junctions[j].X >= wh.X {
			j--
		}
		for l.Junctions[j].X <= wh.X && l.Junctions[j].Y != wh.Y {
			j++
		}
		if l.Junctions[j].X != wh.X || l.Junctions[j].Y != wh.Y {
			continue
		}

		// Fold the checkerboard phase at (x, y) into the patch so that
		// data XOR background == white inside the patch, crosshatch ink
		// over the junction. The phase word rotates one bit per row.
		back := backgroundEven
		if (wh.X+wh.Y)&1 != 0 {
			back = backgroundOdd
		}
		data := make([]uint16, patchRows)
		for r := 0; r < patchRows; r++ {
			data[r] = (back & (^wh.Data[r] | hashFigure[r])) ^ hashFigure[r]
			back = bits.RotateLeft16(back, 1)
		}
		wh.Data = data
		wh.HasJ = true
		l.consumeJunction(j)
	}
}
