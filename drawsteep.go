package terrain

import "math/bits"

// sseBlack draws a steep down-right wall: the face falls one row per step
// and slips one pixel right every second row, with a seven-pixel band
// beside it. The mask rotates on odd steps only.
func sseBlack(b *Bitmap, w *Wall, x, y int) {
	lo, hi := clipSteps(0, w.Length, y, 1, b.Height)
	if lo < -2*x {
		lo = -2 * x
	}
	if lim := 2 * (b.Width - x); hi > lim {
		hi = lim
	}
	if lo < hi {
		xc := x + (lo >> 1)
		off := (y+lo)*b.Stride + (xc>>4)*2
		mask := uint16(0x8000) >> uint(xc&15)
		for j := lo; j < hi; j++ {
			b.or16(off, mask)
			off += b.Stride
			if j&1 != 0 {
				if mask >>= 1; mask == 0 {
					mask = 0x8000
					off += 2
				}
			}
		}
	}

	lo, hi = clipSteps(w.h1, w.h2, y, 1, b.Height)
	if lo < -2*(x+15) {
		lo = -2 * (x + 15)
	}
	if lim := 2 * (b.Width - x); hi > lim {
		hi = lim
	}
	if lo >= hi {
		return
	}
	xc := x + (lo >> 1)
	off := (y+lo)*b.Stride + (xc>>4)*2
	rot := 16 - (xc & 15)
	win := bits.RotateLeft32(0xFFFF0000|uint32(0x80FF), rot)
	for j := lo; j < hi; j++ {
		b.and32(off, win|^wordClip(b, xc))
		off += b.Stride
		if j&1 != 0 {
			xc++
			win = bits.RotateLeft32(win, 31)
			if rot--; rot == 0 {
				rot = 16
				off += 2
				win = bits.RotateLeft32(win, 16)
			}
		}
	}
}

// nneBlack draws only the face of a steep up-right wall. Its band whitens
// ground that other walls' faces may cross, so it cannot run here: the
// white pass draws it first via nneWhite.
func nneBlack(b *Bitmap, w *Wall, x, y int) {
	lo, hi := clipSteps(0, w.Length, y, -1, b.Height)
	if lo < -2*x {
		lo = -2 * x
	}
	if lim := 2 * (b.Width - x); hi > lim {
		hi = lim
	}
	if lo >= hi {
		return
	}
	xc := x + (lo >> 1)
	off := (y-lo)*b.Stride + (xc>>4)*2
	mask := uint16(0x8000) >> uint(xc&15)
	for j := lo; j < hi; j++ {
		b.or16(off, mask)
		off -= b.Stride
		if j&1 != 0 {
			if mask >>= 1; mask == 0 {
				mask = 0x8000
				off += 2
			}
		}
	}
}

// nneWhite is the NNE underside band, drawn during the white pass.
func nneWhite(b *Bitmap, w *Wall, x, y int) {
	lo, hi := clipSteps(w.h1, w.h2, y, -1, b.Height)
	if lo < -2*(x+15) {
		lo = -2 * (x + 15)
	}
	if lim := 2 * (b.Width - x); hi > lim {
		hi = lim
	}
	if lo >= hi {
		return
	}
	xc := x + (lo >> 1)
	off := (y-lo)*b.Stride + (xc>>4)*2
	rot := 16 - (xc & 15)
	win := bits.RotateLeft32(0xFFFF0000|uint32(0x80FF), rot)
	for j := lo; j < hi; j++ {
		b.and32(off, win|^wordClip(b, xc))
		off -= b.Stride
		if j&1 != 0 {
			xc++
			win = bits.RotateLeft32(win, 31)
			if rot--; rot == 0 {
				rot = 16
				off += 2
				win = bits.RotateLeft32(win, 16)
			}
		}
	}
}
