package terrain

import "math/bits"

// eseBlack draws a shallow down-right wall: two face pixels per step with
// the step dropping one row each time, and a single-pixel cap when the
// length is odd. The pair pattern straddles a word whenever x lands on an
// odd phase, so face writes go through the rotated long window. The band
// hangs below the face as one-pixel columns three rows deep.
func eseBlack(b *Bitmap, w *Wall, x, y int) {
	if x >= b.Width {
		return
	}
	steps := (w.Length + 1) >> 1
	lo, hi := clipSteps(0, steps, y, 1, b.Height)
	if v := -15 - x; v > 0 {
		if v = (v + 1) / 2; lo < v {
			lo = v
		}
	}
	if v := (b.Width-1-x)/2 + 1; hi > v {
		hi = v
	}
	if lo < hi {
		xc := x + 2*lo
		off := (y+lo)*b.Stride + (xc>>4)*2
		rot := 16 - (xc & 15)
		for s := lo; s < hi; s++ {
			pat := uint32(0xC000)
			if 2*s+1 >= w.Length {
				pat = 0x8000
			}
			b.or32(off, bits.RotateLeft32(pat, rot)&wordClip(b, xc))
			off += b.Stride
			xc += 2
			if rot -= 2; rot <= 0 {
				rot += 16
				off += 2
			}
		}
	}

	lo, hi = w.h1, w.h2
	if v := -2 * (y + 3); lo < v {
		lo = v
	}
	if v := 2 * (b.Height - 1 - y); hi > v {
		hi = v
	}
	if lo < -x {
		lo = -x
	}
	if v := b.Width - x; hi > v {
		hi = v
	}
	if lo >= hi {
		return
	}
	off := (y+(lo>>1))*b.Stride + ((x+lo)>>4)*2
	mask := uint16(0x8000) >> uint((x+lo)&15)
	for h := lo; h < hi; h++ {
		for r := 1; r <= 3; r++ {
			if ry := y + (h >> 1) + r; ry >= 0 && ry < b.Height {
				b.and16(off+r*b.Stride, ^mask)
			}
		}
		if h&1 != 0 {
			off += b.Stride
		}
		if mask >>= 1; mask == 0 {
			mask = 0x8000
			off += 2
		}
	}
}

// eneBlack is eseBlack mirrored upward. ENE lengths are forced odd, so the
// face always ends on a single-pixel cap. The band columns still hang
// downward, under the climbing face.
func eneBlack(b *Bitmap, w *Wall, x, y int) {
	if x >= b.Width {
		return
	}
	steps := (w.Length + 1) >> 1
	lo, hi := clipSteps(0, steps, y, -1, b.Height)
	if v := -15 - x; v > 0 {
		if v = (v + 1) / 2; lo < v {
			lo = v
		}
	}
	if v := (b.Width-1-x)/2 + 1; hi > v {
		hi = v
	}
	if lo < hi {
		xc := x + 2*lo
		off := (y-lo)*b.Stride + (xc>>4)*2
		rot := 16 - (xc & 15)
		for s := lo; s < hi; s++ {
			pat := uint32(0xC000)
			if 2*s+1 >= w.Length {
				pat = 0x8000
			}
			b.or32(off, bits.RotateLeft32(pat, rot)&wordClip(b, xc))
			off -= b.Stride
			xc += 2
			if rot -= 2; rot <= 0 {
				rot += 16
				off += 2
			}
		}
	}

	lo, hi = w.h1, w.h2
	if v := 2 * (y - b.Height + 2); lo < v {
		lo = v
	}
	if v := 2 * (y + 4); hi > v {
		hi = v
	}
	if lo < -x {
		lo = -x
	}
	if v := b.Width - x; hi > v {
		hi = v
	}
	if lo >= hi {
		return
	}
	off := (y-(lo>>1))*b.Stride + ((x+lo)>>4)*2
	mask := uint16(0x8000) >> uint((x+lo)&15)
	for h := lo; h < hi; h++ {
		for r := 1; r <= 3; r++ {
			if ry := y - (h >> 1) + r; ry >= 0 && ry < b.Height {
				b.and16(off+r*b.Stride, ^mask)
			}
		}
		if h&1 != 0 {
			off -= b.Stride
		}
		if mask >>= 1; mask == 0 {
			mask = 0x8000
			off += 2
		}
	}
}
