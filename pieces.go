package terrain

import "math/bits"

// Horizontal clip masks for the 32-bit blit window. A patch row is blitted
// through a two-word window so any 16-bit alignment works; when the window
// straddles the bitmap's edge, the clip keeps only the word that is on the
// row. An unclipped write near the right edge would wrap into the next row.
const (
	clipLeft   uint32 = 0x0000FFFF
	clipRight  uint32 = 0xFFFF0000
	clipCenter uint32 = 0xFFFFFFFF
)

// clipPatchV trims a patch against the top and bottom of the bitmap,
// dropping leading rows rather than shifting the anchor.
func (b *Bitmap) clipPatchV(y, height int, data []uint16) (int, int, []uint16) {
	if y < 0 {
		if -y >= height {
			return 0, 0, nil
		}
		data = data[-y:]
		height += y
		y = 0
	}
	if y+height > b.Height {
		height = b.Height - y
	}
	return y, height, data
}

// whiteWallPiece AND-applies a 16-pixel-wide patch at (x, y): zero bits
// clear pixels, one bits leave them alone.
func whiteWallPiece(b *Bitmap, x, y, height int, data []uint16) {
	if x <= -16 || x >= b.Width {
		return
	}
	y, height, data = b.clipPatchV(y, height, data)
	if height <= 0 {
		return
	}
	clip := clipCenter
	if x < 0 {
		clip = clipLeft
	} else if x >= b.Width-15 {
		clip = clipRight
	}
	rot := 16 - (x & 15)
	off := y*b.Stride + (x>>4)*2
	for r := 0; r < height; r++ {
		d := bits.RotateLeft32(0xFFFF0000|uint32(data[r]), rot)
		b.and32(off, d|^clip)
		off += b.Stride
	}
}

// eorWallPiece XOR-applies a patch. Hash-blended junction patches go through
// here: over the background weave the exclusive OR both whitens the patch
// and raises the crosshatch in one pass.
func eorWallPiece(b *Bitmap, x, y, height int, data []uint16) {
	if x <= -16 || x >= b.Width {
		return
	}
	y, height, data = b.clipPatchV(y, height, data)
	if height <= 0 {
		return
	}
	clip := clipCenter
	if x < 0 {
		clip = clipLeft
	} else if x >= b.Width-15 {
		clip = clipRight
	}
	rot := 16 - (x & 15)
	off := y*b.Stride + (x>>4)*2
	for r := 0; r < height; r++ {
		b.xor32(off, bits.RotateLeft32(uint32(data[r]), rot)&clip)
		off += b.Stride
	}
}

// drawHashPiece OR-applies the junction crosshatch. The figure is ten pixels
// wide, so the right clip engages closer to the edge than for full patches.
func drawHashPiece(b *Bitmap, x, y, height int, data []uint16) {
	if x <= -16 || x >= b.Width {
		return
	}
	y, height, data = b.clipPatchV(y, height, data)
	if height <= 0 {
		return
	}
	clip := clipCenter
	if x < 0 {
		clip = clipLeft
	} else if x >= b.Width-9 {
		clip = clipRight
	}
	rot := 16 - (x & 15)
	off := y*b.Stride + (x>>4)*2
	for r := 0; r < height; r++ {
		b.or32(off, bits.RotateLeft32(uint32(data[r]), rot)&clip)
		off += b.Stride
	}
}
