package terrain

import "testing"

// pieceBit locates (x, y) within a 16-wide piece anchored at (px, py) and
// reports whether the pattern bit there is set.
func pieceBit(data []uint16, px, py, x, y int) (inside, set bool) {
	r := y - py
	k := x - px
	if r < 0 || r >= len(data) || k < 0 || k >= 16 {
		return false, false
	}
	return true, data[r]&(0x8000>>uint(k)) != 0
}

func TestWhiteWallPieceClears(t *testing.T) {
	b := NewBitmap(64, 16)
	inkAll(b)
	whiteWallPiece(b, 10, 3, patchRows, genericTop)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(genericTop, 10, 3, x, y)
		return !inside || set
	})
}

func TestWhiteWallPieceLeftClip(t *testing.T) {
	b := NewBitmap(64, 16)
	inkAll(b)
	whiteWallPiece(b, -6, 3, patchRows, genericTop)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(genericTop, -6, 3, x, y)
		return !inside || set
	})
}

// A piece near the right edge must drop its overhang instead of wrapping
// into the next row.
func TestWhiteWallPieceRightClip(t *testing.T) {
	b := NewBitmap(64, 16)
	inkAll(b)
	whiteWallPiece(b, 58, 3, patchRows, genericTop)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(genericTop, 58, 3, x, y)
		return !inside || set
	})
}

// Pieces hanging off the top of the canvas keep only their visible rows.
func TestWhiteWallPieceVerticalClip(t *testing.T) {
	b := NewBitmap(64, 16)
	inkAll(b)
	whiteWallPiece(b, 10, -2, patchRows, sBot)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(sBot, 10, -2, x, y)
		return !inside || set
	})

	inkAll(b)
	whiteWallPiece(b, 10, 13, patchRows, sBot)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(sBot, 10, 13, x, y)
		return !inside || set
	})
}

func TestEorWallPiece(t *testing.T) {
	b := NewBitmap(64, 16)
	eorWallPiece(b, 12, 2, patchRows, sBot)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(sBot, 12, 2, x, y)
		return inside && set
	})

	// XOR is its own inverse.
	eorWallPiece(b, 12, 2, patchRows, sBot)
	checkPixels(t, b, func(x, y int) bool { return false })
}

func TestDrawHashPiece(t *testing.T) {
	b := NewBitmap(64, 16)
	drawHashPiece(b, 20, 5, len(hashFigure), hashFigure)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(hashFigure, 20, 5, x, y)
		return inside && set
	})
}

// The crosshatch clips at width-9; the dropped low word must not leak into
// the following row.
func TestDrawHashPieceRightClip(t *testing.T) {
	b := NewBitmap(64, 16)
	drawHashPiece(b, 56, 5, len(hashFigure), hashFigure)
	checkPixels(t, b, func(x, y int) bool {
		inside, set := pieceBit(hashFigure, 56, 5, x, y)
		return inside && set
	})
}
