package terrain

import "math/bits"

// seBlack draws a 45-degree down-right wall: one face pixel per row with a
// four-pixel whitened run trailing it on the same row. Face and band each
// walk a rolling mask that slides one pixel right per row and hops to the
// next screen word on the carry out of the low bit.
func seBlack(b *Bitmap, w *Wall, x, y int) {
	lo, hi := clipSteps(0, w.Length, y, 1, b.Height)
	if x+lo < 0 {
		lo = -x
	}
	if x+hi > b.Width {
		hi = b.Width - x
	}
	if lo < hi {
		off := (y+lo)*b.Stride + ((x+lo)>>4)*2
		mask := uint16(0x8000) >> uint((x+lo)&15)
		for j := lo; j < hi; j++ {
			b.or16(off, mask)
			off += b.Stride
			if mask >>= 1; mask == 0 {
				mask = 0x8000
				off += 2
			}
		}
	}

	lo, hi = clipSteps(w.h1, w.h2, y, 1, b.Height)
	if x+lo <= -16 {
		lo = -15 - x
	}
	if x+hi > b.Width {
		hi = b.Width - x
	}
	if lo >= hi {
		return
	}
	xc := x + lo
	off := (y+lo)*b.Stride + (xc>>4)*2
	rot := 16 - (xc & 15)
	win := bits.RotateLeft32(0xFFFF0000|uint32(0x87FF), rot)
	for j := lo; j < hi; j++ {
		b.and32(off, win|^wordClip(b, xc))
		off += b.Stride
		xc++
		win = bits.RotateLeft32(win, 31)
		if rot--; rot == 0 {
			rot = 16
			off += 2
			win = bits.RotateLeft32(win, 16)
		}
	}
}

// neBlack draws a 45-degree up-right wall: the same walk as seBlack with
// the row step negated, so the band trails off the upper side of the face.
func neBlack(b *Bitmap, w *Wall, x, y int) {
	lo, hi := clipSteps(0, w.Length, y, -1, b.Height)
	if x+lo < 0 {
		lo = -x
	}
	if x+hi > b.Width {
		hi = b.Width - x
	}
	if lo < hi {
		off := (y-lo)*b.Stride + ((x+lo)>>4)*2
		mask := uint16(0x8000) >> uint((x+lo)&15)
		for j := lo; j < hi; j++ {
			b.or16(off, mask)
			off -= b.Stride
			if mask >>= 1; mask == 0 {
				mask = 0x8000
				off += 2
			}
		}
	}

	lo, hi = clipSteps(w.h1, w.h2, y, -1, b.Height)
	if x+lo <= -16 {
		lo = -15 - x
	}
	if x+hi > b.Width {
		hi = b.Width - x
	}
	if lo >= hi {
		return
	}
	xc := x + lo
	off := (y-lo)*b.Stride + (xc>>4)*2
	rot := 16 - (xc & 15)
	win := bits.RotateLeft32(0xFFFF0000|uint32(0x87FF), rot)
	for j := lo; j < hi; j++ {
		b.and32(off, win|^wordClip(b, xc))
		off -= b.Stride
		xc++
		win = bits.RotateLeft32(win, 31)
		if rot--; rot == 0 {
			rot = 16
			off += 2
			win = bits.RotateLeft32(win, 16)
		}
	}
}
