package terrain

import "testing"

// dirFor maps an 8-way direction back to its stored form.
func dirFor(nt NewType) (StoredDir, bool) {
	switch nt {
	case NewSouth:
		return DirSouth, false
	case NewSSE:
		return DirSSE, false
	case NewSE:
		return DirSE, false
	case NewESE:
		return DirESE, false
	case NewEast:
		return DirEast, false
	case NewENE:
		return DirESE, true
	case NewNE:
		return DirSE, true
	default:
		return DirSSE, true
	}
}

func finishedWall(t *testing.T, nt NewType, x, y, length int) *Wall {
	t.Helper()
	dir, up := dirFor(nt)
	w := &Wall{StartX: x, StartY: y, Length: length, Dir: dir, Up: up, Kind: KindNormal}
	if err := w.finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	return w
}

// facePixel is the per-pixel model of each direction's solid face.
func facePixel(nt NewType, x0, y0, length, x, y int) bool {
	switch nt {
	case NewSouth:
		return x == x0 && y >= y0 && y < y0+length
	case NewSSE:
		return y >= y0 && y < y0+length && x == x0+((y-y0)>>1)
	case NewSE:
		return y >= y0 && y < y0+length && x == x0+(y-y0)
	case NewESE:
		return x >= x0 && x < x0+length && y == y0+((x-x0)>>1)
	case NewEast:
		return (y == y0 || y == y0+1) && x >= x0 && x < x0+length
	case NewENE:
		return x >= x0 && x < x0+length && y == y0-((x-x0)>>1)
	case NewNE:
		return x >= x0 && x < x0+length && y == y0-(x-x0)
	default: // NNE
		return y <= y0 && y > y0-length && x == x0+((y0-y)>>1)
	}
}

func TestBlackFaces(t *testing.T) {
	anchors := []struct {
		x, y, length int
	}{
		{20, 20, 9},  // single word
		{28, 24, 11}, // crosses a word boundary
	}
	for nt := NewSouth; nt <= NewNNE; nt++ {
		for _, a := range anchors {
			w := finishedWall(t, nt, a.x, a.y, a.length)
			b := NewBitmap(64, 48)
			blackDrawers[w.NewType](b, w, a.x, a.y)
			checkPixels(t, b, func(x, y int) bool {
				return facePixel(nt, a.x, a.y, w.Length, x, y)
			})
		}
	}
}

func TestFaceClipping(t *testing.T) {
	tests := []struct {
		name         string
		nt           NewType
		x, y, length int
	}{
		{"south top edge", NewSouth, 10, -5, 20},
		{"south off right", NewSouth, 70, 5, 10},
		{"sse bottom edge", NewSSE, 10, 44, 9},
		{"se left edge", NewSE, -5, 10, 12},
		{"ese right edge", NewESE, 61, 24, 9},
		{"east right edge", NewEast, 52, 5, 40},
		{"ene top edge", NewENE, 10, 3, 11},
		{"ne bottom edge", NewNE, 10, 50, 10},
		{"nne top edge", NewNNE, 10, 5, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := finishedWall(t, tc.nt, tc.x, tc.y, tc.length)
			b := NewBitmap(64, 48)
			blackDrawers[w.NewType](b, w, tc.x, tc.y)
			checkPixels(t, b, func(x, y int) bool {
				return facePixel(tc.nt, tc.x, tc.y, w.Length, x, y)
			})
		})
	}
}

// bandPixels is the model of one wall's whitened underside: the set of
// pixels cleared when its band runs from h1 to h2.
func bandPixels(nt NewType, x0, y0, h1, h2 int) map[[2]int]bool {
	px := make(map[[2]int]bool)
	mark := func(x, y int) { px[[2]int{x, y}] = true }
	for j := h1; j < h2; j++ {
		switch nt {
		case NewSouth:
			for k := 1; k <= 9; k++ {
				mark(x0+k, y0+j)
			}
		case NewSSE:
			for k := 1; k <= 7; k++ {
				mark(x0+(j>>1)+k, y0+j)
			}
		case NewSE:
			for k := 1; k <= 4; k++ {
				mark(x0+j+k, y0+j)
			}
		case NewESE:
			for r := 1; r <= 3; r++ {
				mark(x0+j, y0+(j>>1)+r)
			}
		case NewEast:
			for r := 2; r <= 5; r++ {
				mark(x0+j, y0+r)
			}
		case NewENE:
			for r := 1; r <= 3; r++ {
				mark(x0+j, y0-(j>>1)+r)
			}
		case NewNE:
			for k := 1; k <= 4; k++ {
				mark(x0+j+k, y0-j)
			}
		case NewNNE:
			for k := 1; k <= 7; k++ {
				mark(x0+(j>>1)+k, y0-j)
			}
		}
	}
	return px
}

// drawBand runs the routine that owns a wall's underside band: the black
// drawer for most directions, nneWhite for NNE.
func drawBand(b *Bitmap, w *Wall, x, y int) {
	if w.NewType == NewNNE {
		nneWhite(b, w, x, y)
		return
	}
	blackDrawers[w.NewType](b, w, x, y)
}

func TestUndersideBands(t *testing.T) {
	anchors := []struct {
		x, y int
	}{
		{20, 20},
		{27, 24}, // band crosses a word boundary
	}
	for nt := NewSouth; nt <= NewNNE; nt++ {
		for _, a := range anchors {
			w := finishedWall(t, nt, a.x, a.y, 9)
			w.h1, w.h2 = 2, 8
			b := NewBitmap(64, 48)
			inkAll(b)
			drawBand(b, w, a.x, a.y)
			cleared := bandPixels(nt, a.x, a.y, 2, 8)
			checkPixels(t, b, func(x, y int) bool {
				return !cleared[[2]int{x, y}]
			})
		}
	}
}

func TestBandEdgeClipping(t *testing.T) {
	tests := []struct {
		name   string
		nt     NewType
		x, y   int
		length int
		h1, h2 int
	}{
		{"south left edge", NewSouth, -3, 20, 9, 0, 4},
		{"south right edge", NewSouth, 60, 20, 9, 0, 4},
		{"ne bottom edge", NewNE, 10, 50, 10, 1, 8},
		{"nne top edge", NewNNE, 10, 6, 9, 0, 8},
		{"ese bottom edge", NewESE, 10, 45, 9, 0, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := finishedWall(t, tc.nt, tc.x, tc.y, tc.length)
			w.h1, w.h2 = tc.h1, tc.h2
			b := NewBitmap(64, 48)
			inkAll(b)
			drawBand(b, w, tc.x, tc.y)
			cleared := bandPixels(tc.nt, tc.x, tc.y, tc.h1, tc.h2)
			checkPixels(t, b, func(x, y int) bool {
				return !cleared[[2]int{x, y}]
			})
		})
	}
}
