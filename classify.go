package terrain

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Half-octant tables, indexed by h = int(angle*2+22)/45 & 15 with angles
// measured clockwise from east (y grows downward). h runs E, ESE, SE, SSE,
// S, SSW, SW, WSW, W, WNW, NW, NNW, N, NNE, NE, ENE.
var (
	octDir = [16]StoredDir{
		DirEast, DirESE, DirSE, DirSSE, DirSouth, DirSSE, DirSE, DirESE,
		DirEast, DirESE, DirSE, DirSSE, DirSouth, DirSSE, DirSE, DirESE,
	}
	octUp = [16]bool{
		false, false, false, false, false, true, true, true,
		false, false, false, false, false, true, true, true,
	}
)

// Length floor applied by the editor's safe mode, large enough that every
// direction's underside band has room (the east band starts 16 in).
const safeWallLength = 16

// snapRadius bounds RoundPoint's squared-distance comparison.
const snapRadius = 5

func abs[T constraints.Integer | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func radiansToDegrees[T constraints.Float](rad T) T {
	return rad * 180 / math.Pi
}

// ClassifyWall quantizes the segment (x1,y1)-(x2,y2) into a canonical wall:
// one of 16 half-octants selects the stored direction and up flag, length is
// max(|dx|,|dy|) (odd-forced on half-octant boundaries, floored in safe
// mode), and the endpoint is re-derived from the direction tables rather
// than from the input delta, snapping any segment onto the nearest canonical
// line. Segments whose west-family angle falls in the upper-left quadrants
// are stored swapped, so every wall runs south through north-northeast.
//
// The second return is false for degenerate segments and for walls whose
// derived endpoint escapes world (a zero Rect leaves the endpoint
// unchecked). Editor-only; the runtime render path never classifies.
func ClassifyWall(x1, y1, x2, y2 int, kind Kind, safe bool, world Rect) (Wall, bool) {
	if x1 == x2 && y1 == y2 {
		return Wall{}, false
	}

	angle := radiansToDegrees(math.Atan2(float64(y2-y1), float64(x2-x1)))
	if angle < 0 {
		angle += 360
	}
	h := int(angle*2+22) / 45 & 15

	// West family: store the reversed segment and fold the half-octant
	// around. Walls always run with the east family's sign conventions.
	if h >= 5 && h <= 12 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		h = (h + 8) & 15
	}

	length := max(abs(x2-x1), abs(y2-y1))
	if safe && length < safeWallLength {
		length = safeWallLength
	}
	if h&1 == 1 {
		length |= 1
	}

	w := Wall{
		StartX: x1,
		StartY: y1,
		Length: length,
		Dir:    octDir[h],
		Up:     octUp[h],
		Kind:   kind,
	}
	if err := w.finish(); err != nil {
		return Wall{}, false
	}
	if world != (Rect{}) && !world.contains(w.EndX, w.EndY) {
		return Wall{}, false
	}
	return w, true
}

// RoundPoint snaps (x,y) to the nearest existing wall endpoint within a
// small radius, for editor crosshair snapping. The first endpoint found in
// wall order wins; the input comes back unchanged when nothing is close.
func RoundPoint(x, y int, walls []Wall) (int, int) {
	for i := range walls {
		w := &walls[i]
		for n := 0; n < 2; n++ {
			ex, ey := w.endpoint(n)
			dx, dy := x-ex, y-ey
			if dx*dx+dy*dy <= snapRadius*snapRadius {
				return ex, ey
			}
		}
	}
	return x, y
}
