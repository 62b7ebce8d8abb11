package terrain

// Background weave phase words. A pixel at (x, y) is ink when x+y is even,
// which makes backgroundEven the phase seen from any even-parity anchor.
const (
	backgroundEven uint16 = 0xAAAA
	backgroundOdd  uint16 = 0x5555
)

// Bitmap is a one-bit-per-pixel framebuffer. Bit 7 of each byte is the
// leftmost pixel and rows are padded to a word boundary, so blitters can
// work in 16- and 32-bit chunks. Rows are contiguous: a wide write near the
// right edge spills into the next row, which the terrain pieces rely on.
type Bitmap struct {
	Width  int
	Height int
	Stride int // bytes per row
	Pix    []byte
}

// NewBitmap allocates a cleared bitmap.
func NewBitmap(width, height int) *Bitmap {
	stride := (width + 15) / 16 * 2
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// Clear sets every pixel to white.
func (b *Bitmap) Clear() {
	for i := range b.Pix {
		b.Pix[i] = 0
	}
}

// FillBackground paints the alternating 50% gray weave the terrain pass
// expects underneath it.
func (b *Bitmap) FillBackground() {
	for y := 0; y < b.Height; y++ {
		v := byte(backgroundEven >> 8)
		if y&1 != 0 {
			v = byte(backgroundOdd >> 8)
		}
		row := b.Pix[y*b.Stride : (y+1)*b.Stride]
		for i := range row {
			row[i] = v
		}
	}
}

// Pixel reports whether (x, y) is ink. Out-of-range coordinates are white.
func (b *Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Pix[y*b.Stride+(x>>3)]&(0x80>>(x&7)) != 0
}

// The blitters address the buffer byte-wise at word-aligned offsets that can
// start before the buffer or end past it; bytes outside simply do not
// exist. v is big-endian: its top byte lands at off.

func (b *Bitmap) or32(off int, v uint32) {
	for i := 0; i < 4; i++ {
		if o := off + i; o >= 0 && o < len(b.Pix) {
			b.Pix[o] |= byte(v >> (24 - 8*i))
		}
	}
}

func (b *Bitmap) and32(off int, v uint32) {
	for i := 0; i < 4; i++ {
		if o := off + i; o >= 0 && o < len(b.Pix) {
			b.Pix[o] &= byte(v >> (24 - 8*i))
		}
	}
}

func (b *Bitmap) xor32(off int, v uint32) {
	for i := 0; i < 4; i++ {
		if o := off + i; o >= 0 && o < len(b.Pix) {
			b.Pix[o] ^= byte(v >> (24 - 8*i))
		}
	}
}

func (b *Bitmap) or16(off int, v uint16) {
	for i := 0; i < 2; i++ {
		if o := off + i; o >= 0 && o < len(b.Pix) {
			b.Pix[o] |= byte(v >> (8 - 8*i))
		}
	}
}

func (b *Bitmap) and16(off int, v uint16) {
	for i := 0; i < 2; i++ {
		if o := off + i; o >= 0 && o < len(b.Pix) {
			b.Pix[o] &= byte(v >> (8 - 8*i))
		}
	}
}
