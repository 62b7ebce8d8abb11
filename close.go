package terrain

// Default underside band extents per 8-way direction: h1 is where the band
// starts along the wall, h2 (length + simpleH2) is where it stops. The
// endpoint pieces cover the rest. Junction synthesis tightens these and
// compensates with patches.
var (
	simpleH1 = [numNewTypes]int{0, 6, 6, 6, 12, 16, 0, 1, 0}
	simpleH2 = [numNewTypes]int{0, 0, 0, 0, -1, 0, -11, -5, -5}
)

// Junction patch patterns. nPatch and ePatch are uniform slabs; the rest
// carry the slope of the wall family they mend.
var (
	nPatch   = repeatRow(0x003F, 22)
	nePatch  = []uint16{0xE000, 0xC001, 0x8003, 0x0007}
	enePatch = []uint16{0xFC00, 0xF003, 0xC00F, 0x003F}
	ePatch   = repeatRow(0x0003, 4)
	sePatch  = []uint16{
		0x07FF, 0x83FF, 0xC1FF, 0xE0FF, 0xF07F, 0xF83F, 0xFC1F,
		0xFE0F, 0xFF07, 0xFF83, 0xFFC1,
	}
	ssePatch = []uint16{
		0x00FF, 0x00FF, 0x807F, 0x807F, 0xC03F, 0xC03F,
		0xE01F, 0xE01F, 0xF00F, 0xF00F, 0xF807, 0xF807,
		0xFC03, 0xFC03, 0xFE01, 0xFE01, 0xFF00, 0xFF00,
	}
)

// closeWhites assigns every wall its default h1/h2 and runs the pairwise
// close-endpoint scan over all wall pairs (both orders arise naturally; the
// junction list is deliberately not consulted). The box test here is strict,
// unlike the junction detector's inclusive box.
func (l *Level) closeWhites(ws *whiteSet) {
	for i := range l.Walls {
		w := &l.Walls[i]
		w.h1 = simpleH1[w.NewType]
		w.h2 = w.Length + simpleH2[w.NewType]
	}

	first := 0
	for li := range l.Walls {
		w := &l.Walls[li]
		for first < len(l.Walls) && l.Walls[first].EndX < w.StartX-3 {
			first++
		}
		for n := 0; n < 2; n++ {
			x1, y1 := w.endpoint(n)
			for i2 := first; i2 < len(l.Walls) && l.Walls[i2].StartX < x1+3; i2++ {
				w2 := &l.Walls[i2]
				for m := 0; m < 2; m++ {
					ex, ey := w2.endpoint(m)
					x2, y2 := ex-3, ey-3
					if x1 > x2 && y1 > y2 && x1 < x2+6 && y1 < y2+6 {
						oneClose(w, w2, n, m, ws)
					}
				}
			}
		}
	}
}

// foldDir folds an 8-way direction into the 16-way compass key the pair
// table uses: 9-newtype at the start, rotated half way around at the end.
func foldDir(t NewType, atEnd bool) int {
	d := 9 - int(t)
	if atEnd {
		d = (d + 8) & 15
	}
	return d
}

// closeFn is one cell of the direction-pair table: it may emit patches for
// the first wall and must update that wall's h1/h2 immediately, since later
// pair evaluations for the same wall observe the new coverage.
type closeFn func(w *Wall, ws *whiteSet)

// oneClose resolves one close endpoint pair. Equal folded directions never
// patch; everything else dispatches through the pair table.
func oneClose(w, w2 *Wall, n, m int, ws *whiteSet) {
	dir1 := foldDir(w.NewType, n != 0)
	dir2 := foldDir(w2.NewType, m != 0)
	if dir1 == dir2 {
		return
	}
	if fn := closeTable[dir1][dir2]; fn != nil {
		fn(w, ws)
	}
}

// closeTable is the 16x16 direction-pair matrix. Most cells are empty; the
// populated rows are the directions whose underside band reaches their
// junction endpoint and so needs trimming when another wall crowds it.
var closeTable = buildCloseTable()

func buildCloseTable() [16][16]closeFn {
	var t [16][16]closeFn

	// South wall met at its bottom end: swap the endpoint piece for a tall
	// column patch and pull the band's lower limit up.
	t[0][15] = southEnd(21)
	t[0][1] = southEnd(21)
	t[0][2] = southEnd(10)
	t[0][3] = southEnd(6)
	t[0][14] = southEnd(6)

	// NE wall met at its start: stepped slabs climbing the wall's right
	// side, one per covered stretch.
	t[2][0] = neStart(3)
	t[2][1] = neStart(6)
	t[2][3] = neStart(4)
	t[2][14] = neStart(1)
	t[2][15] = neStart(2)

	// SE wall met at its start.
	t[6][0] = seStart(11)
	t[6][1] = seStart(10)
	t[6][15] = seStart(9)
	t[6][14] = seStart(8)
	t[6][2] = seStart(7)

	// SSE wall met at its start.
	t[7][0] = sseStart(18)
	t[7][1] = sseStart(16)
	t[7][15] = sseStart(14)
	t[7][14] = sseStart(12)
	t[7][2] = sseStart(10)

	// ENE wall met at its top end: stepped slabs descending from the end.
	t[11][0] = eneEnd(3)
	t[11][10] = eneEnd(2)
	t[11][12] = eneEnd(2)
	t[11][13] = eneEnd(2)
	t[11][14] = eneEnd(2)

	// East wall met at its right end.
	t[12][6] = eEnd(6)
	t[12][7] = eEnd(4)
	t[12][8] = eEnd(8)
	t[12][10] = eEnd(6)
	t[12][14] = eEnd(10)

	return t
}

// southEnd trims the last i rows off a south wall's band. The patch is
// added the first time and upgraded in place on later, taller trims.
func southEnd(i int) closeFn {
	return func(w *Wall, ws *whiteSet) {
		j := w.h2
		if w.Length-i > j {
			return
		}
		if j < w.Length {
			ws.replace2(w.StartX, w.StartY+j, w.EndX, w.EndY-i, i, nPatch)
		} else {
			ws.add(w.EndX, w.EndY-i, i, nPatch)
		}
		w.h2 = w.Length - i
	}
}

// neStart walks up a NE wall's start in four-pixel steps, patching each
// stretch h1 does not already cover.
func neStart(i int) closeFn {
	return func(w *Wall, ws *whiteSet) {
		for j := 0; j < 4*i; j += 4 {
			if w.h1 < 5+j {
				ws.add(w.StartX+3+j, w.StartY-4-j, 4, nePatch)
			}
		}
		if j := 5 + 4*(i-1); w.h1 < j {
			w.h1 = j
		}
	}
}

func seStart(i int) closeFn {
	return func(w *Wall, ws *whiteSet) {
		if w.h1 >= i {
			return
		}
		ws.add(w.StartX+1, w.StartY+1, i, sePatch[:i])
		w.h1 = i
	}
}

func sseStart(i int) closeFn {
	return func(w *Wall, ws *whiteSet) {
		if w.h1 >= i {
			return
		}
		ws.add(w.StartX, w.StartY+1, i, ssePatch[:i])
		w.h1 = i
	}
}

// eneEnd steps down-left from an ENE wall's end, patching each six-pixel
// stretch not already covered.
func eneEnd(steps int) closeFn {
	return func(w *Wall, ws *whiteSet) {
		for k := 0; k < steps; k++ {
			if w.h2 > w.Length-11-6*k {
				ws.add(w.EndX-10-6*k, w.EndY+1+3*k, 4, enePatch)
			}
		}
		if low := w.Length - 11 - 6*(steps-1); w.h2 > low {
			w.h2 = low
		}
	}
}

func eEnd(i int) closeFn {
	return func(w *Wall, ws *whiteSet) {
		if w.Length-i > w.h2 {
			return
		}
		ws.add(w.EndX-i, w.EndY+2, 4, ePatch)
		if w.Length-i < w.h2 {
			w.h2 = w.Length - i
		}
	}
}
