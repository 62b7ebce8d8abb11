// Package terrain renders cave-style vector terrain into a 1-bit-per-pixel
// bitmap, reproducing the output of a classic 68K monochrome renderer bit for
// bit, including its junction patches, crosshatch seams, and asymmetric
// glitch fixes.
//
// Terrain is described by directed line segments ("walls") restricted to
// eight compass directions. A Level is built once from a wall list and is
// immutable afterward; per frame, callers fill a Bitmap with the woven gray
// background (or clear it), run WhiteTerrain, then BlackTerrain for each wall
// kind. The white pass must come first: several white pieces deliberately
// clear through a wall's face column, and the face is painted over them.
package terrain

import "fmt"

// Kind is a wall behavior category. Rendering only uses it to select a
// traversal list; the categories themselves matter to game logic elsewhere.
type Kind int

const (
	KindNormal Kind = 1 + iota
	KindBounce
	KindGhost
	KindExplode

	numKinds = 5 // index 0 unused
)

var kindNames = [numKinds]string{"", "normal", "bounce", "ghost", "explode"}

func (k Kind) String() string {
	if k < KindNormal || k > KindExplode {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// StoredDir is one of the five stored wall directions. Up-going walls store
// the mirrored down direction plus the up flag; see NewType.
type StoredDir int

const (
	DirSouth StoredDir = 1 + iota
	DirSSE
	DirSE
	DirESE
	DirEast
)

// NewType is the consolidated 8-way direction: stored direction and up flag
// folded into one code, south through north-northeast.
type NewType int

const (
	NewSouth NewType = 1 + iota
	NewSSE
	NewSE
	NewESE
	NewEast
	NewENE
	NewNE
	NewNNE

	numNewTypes = 9 // index 0 unused
)

var newTypeNames = [numNewTypes]string{"", "S", "SSE", "SE", "ESE", "E", "ENE", "NE", "NNE"}

func (t NewType) String() string {
	if t < NewSouth || t > NewNNE {
		return fmt.Sprintf("NewType(%d)", int(t))
	}
	return newTypeNames[t]
}

// Endpoint offsets per unit length for each stored direction, scaled by two
// so the SSE and ESE families keep their half-pixel slopes. The shift after
// multiplication is arithmetic, matching the original's signed divide.
var (
	xlen2 = [6]int{0, 0, 1, 2, 2, 2}
	ylen2 = [6]int{0, 2, 2, 2, 1, 0}
)

// Wall is a directed terrain line segment. StartX/StartY, Length, Dir, Up,
// and Kind are authored; EndX/EndY and NewType are derived. The h1/h2 fields
// hold the wall-local extent of its white underside band; they start from
// per-direction defaults and are tightened while junction patches are
// synthesized, then stay fixed for the life of the Level.
type Wall struct {
	StartX, StartY int
	EndX, EndY     int
	Length         int
	Dir            StoredDir
	Up             bool
	Kind           Kind
	NewType        NewType

	h1, h2 int
}

// finish derives the redundant wall fields from the stored ones: the 8-way
// direction code, the odd-length rule for NNE/ENE walls, and the endpoint.
func (w *Wall) finish() error {
	if w.Dir < DirSouth || w.Dir > DirEast {
		return fmt.Errorf("terrain: bad wall direction %d", int(w.Dir))
	}
	if w.Kind < KindNormal || w.Kind > KindExplode {
		return fmt.Errorf("terrain: bad wall kind %d", int(w.Kind))
	}
	if w.Up {
		// NNE and ENE rasterize two steps per unit; an even length would
		// leave their endpoints between steps.
		if w.Dir == DirSSE || w.Dir == DirESE {
			w.Length |= 1
		}
		w.NewType = NewType(10 - int(w.Dir))
	} else {
		w.NewType = NewType(w.Dir)
	}
	w.EndX = w.StartX + (xlen2[w.Dir]*w.Length)>>1
	dy := (ylen2[w.Dir] * w.Length) >> 1
	if w.Up {
		w.EndY = w.StartY - dy
	} else {
		w.EndY = w.StartY + dy
	}
	return nil
}

// endpoint returns the start point for n == 0 and the end point for n == 1.
func (w *Wall) endpoint(n int) (int, int) {
	if n != 0 {
		return w.EndX, w.EndY
	}
	return w.StartX, w.StartY
}

// Rect is a half-open rectangle {X, Y, Right, Bottom} in world coordinates.
// It serves both as the render viewport and as the world bounds handed to
// the classifier.
type Rect struct {
	X, Y, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.X }
func (r Rect) Height() int { return r.Bottom - r.Y }

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.Right && y >= r.Y && y < r.Bottom
}

// Level is the immutable rendering snapshot of one terrain set: the wall
// list with its per-kind traversal links, the deduplicated junctions, and
// the synthesized white patches. Build it once per level with NewLevel;
// every subsequent render call is a read-only consumer.
type Level struct {
	Walls      []Wall
	Junctions  []Junction
	Whites     []WhitePatch
	WorldWidth int

	numJunctions int

	kindHead [numKinds]int
	nextKind []int
	firstWh  int
	nextWh   []int
}

// NewLevel copies walls and runs the one-time initialization pipeline:
// derived wall fields, kind lists, junction detection, white-patch
// synthesis, and hash blending. Walls must arrive in ascending start-x
// order; level data guarantees it, and the sweeps and the close-pair scan
// assume it rather than enforce it.
func NewLevel(walls []Wall, worldWidth int) (*Level, error) {
	l := &Level{
		Walls:      make([]Wall, len(walls)),
		WorldWidth: worldWidth,
	}
	copy(l.Walls, walls)
	for i := range l.Walls {
		if err := l.Walls[i].finish(); err != nil {
			return nil, fmt.Errorf("wall %d: %v", i, err)
		}
	}

	l.organizeKinds()
	l.detectJunctions()
	l.initWhites()

	logger.Printf("terrain: level ready: %d walls, %d junctions, %d white patches",
		len(l.Walls), l.numJunctions, len(l.Whites)-numSentinels)
	return l, nil
}

// NumJunctions reports the live junction count (sentinels excluded,
// hash-consumed junctions excluded).
func (l *Level) NumJunctions() int { return l.numJunctions }
