package terrain

import "math/bits"

// blackDrawers dispatches a wall to the raster routine for its direction.
// Every drawer follows the same discipline: clip the wall's step range
// against the bitmap first, derive the starting byte offset and bit phase
// from the x position, then walk the wall OR-painting the solid face and
// AND-whitening the underside band between the wall's h1 and h2, advancing
// the raster by whole words as the rotating mask carries. A direction
// outside the table is corrupt state and panics on dispatch.
//
// NNE draws no band here: nneWhite runs during the white pass instead, so
// faces crossing the band paint over it.
var blackDrawers = [numNewTypes]func(*Bitmap, *Wall, int, int){
	NewSouth: southBlack,
	NewSSE:   sseBlack,
	NewSE:    seBlack,
	NewESE:   eseBlack,
	NewEast:  eastBlack,
	NewENE:   eneBlack,
	NewNE:    neBlack,
	NewNNE:   nneBlack,
}

// clipSteps clips the wall-local step range [lo, hi) so that every step's
// row y + dy*step is a valid bitmap row. dy is +1 for down walls and -1
// for up walls. The result may be empty (lo >= hi).
func clipSteps(lo, hi, y, dy, height int) (int, int) {
	if dy > 0 {
		if y+lo < 0 {
			lo = -y
		}
		if y+hi > height {
			hi = height - y
		}
	} else {
		if y-lo >= height {
			lo = y - height + 1
		}
		if y-hi < -1 {
			hi = y + 1
		}
	}
	return lo, hi
}

// wordClip is the horizontal clip long for a 16-bit pattern anchored at
// pixel x. A pattern overhanging a screen edge keeps only its on-row word;
// everywhere else both words pass, letting mid-row writes straddle word
// boundaries.
func wordClip(b *Bitmap, x int) uint32 {
	if x < 0 {
		return clipLeft
	}
	if x >= b.Width-15 {
		return clipRight
	}
	return clipCenter
}

// orSpan blackens pixels [x0, x1) of one row. The partial word at each end
// is a narrow masked write so neighbors sharing the word survive; the words
// between are set whole.
func orSpan(b *Bitmap, y, x0, x1 int) {
	if y < 0 || y >= b.Height {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if x0 >= x1 {
		return
	}
	base := y * b.Stride
	first, last := x0>>4, (x1-1)>>4
	lead := uint16(0xFFFF) >> uint(x0&15)
	trail := ^(uint16(0xFFFF) >> uint(x1-last*16))
	if first == last {
		b.or16(base+first*2, lead&trail)
		return
	}
	b.or16(base+first*2, lead)
	for wd := first + 1; wd < last; wd++ {
		b.or16(base+wd*2, 0xFFFF)
	}
	b.or16(base+last*2, trail)
}

// andSpan whitens pixels [x0, x1) of one row: the same walk as orSpan with
// every mask complemented.
func andSpan(b *Bitmap, y, x0, x1 int) {
	if y < 0 || y >= b.Height {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if x0 >= x1 {
		return
	}
	base := y * b.Stride
	first, last := x0>>4, (x1-1)>>4
	lead := uint16(0xFFFF) >> uint(x0&15)
	trail := ^(uint16(0xFFFF) >> uint(x1-last*16))
	if first == last {
		b.and16(base+first*2, ^(lead & trail))
		return
	}
	b.and16(base+first*2, ^lead)
	for wd := first + 1; wd < last; wd++ {
		b.and16(base+wd*2, 0)
	}
	b.and16(base+last*2, ^trail)
}

// southBlack draws a straight-down wall: a one-pixel face column and a
// nine-pixel band whitening the terrain to its right. The face never
// crosses a word, so each row is a single narrow write; the band rows go
// through a long window positioned once, since x never moves.
func southBlack(b *Bitmap, w *Wall, x, y int) {
	if x <= -16 || x >= b.Width {
		return
	}
	lo, hi := clipSteps(0, w.Length, y, 1, b.Height)
	if x >= 0 && lo < hi {
		mask := uint16(0x8000) >> uint(x&15)
		off := (y+lo)*b.Stride + (x>>4)*2
		for j := lo; j < hi; j++ {
			b.or16(off, mask)
			off += b.Stride
		}
	}

	lo, hi = clipSteps(w.h1, w.h2, y, 1, b.Height)
	if lo >= hi {
		return
	}
	band := bits.RotateLeft32(0xFFFF0000|uint32(0x803F), 16-(x&15)) | ^wordClip(b, x)
	off := (y+lo)*b.Stride + (x>>4)*2
	for j := lo; j < hi; j++ {
		b.and32(off, band)
		off += b.Stride
	}
}

// eastBlack draws a horizontal wall: a two-row solid face run and four band
// rows hanging under it between h1 and h2.
func eastBlack(b *Bitmap, w *Wall, x, y int) {
	orSpan(b, y, x, x+w.Length)
	orSpan(b, y+1, x, x+w.Length)
	for r := 2; r < 6; r++ {
		andSpan(b, y+r, x+w.h1, x+w.h2)
	}
}
