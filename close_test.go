package terrain

import (
	"slices"
	"testing"
)

// A lone wall keeps its direction's default band extent.
func TestBandDefaults(t *testing.T) {
	tests := []struct {
		nt     NewType
		length int
		h1, h2 int
	}{
		{NewSouth, 20, 6, 20},
		{NewSSE, 20, 6, 20},
		{NewSE, 20, 6, 20},
		{NewESE, 20, 12, 19},
		{NewEast, 20, 16, 20},
		{NewENE, 21, 0, 10},
		{NewNE, 20, 1, 15},
		{NewNNE, 21, 0, 16},
	}
	for _, tc := range tests {
		w := finishedWall(t, tc.nt, 100, 100, tc.length)
		l := mustLevel(t, []Wall{*w}, 512)
		got := &l.Walls[0]
		if got.h1 != tc.h1 || got.h2 != tc.h2 {
			t.Errorf("%v: band [%d,%d) want [%d,%d)", tc.nt, got.h1, got.h2, tc.h1, tc.h2)
		}
	}
}

// A south wall's bottom end crowded by two other starts: the taller trim
// runs first and the later, shorter one must see the already-trimmed band
// and stand down.
func TestSouthEndTrimIsImmediate(t *testing.T) {
	l := mustLevel(t, []Wall{
		wall(99, 111, 25, DirSSE, true, KindNormal),  // NNE start near (100,110)
		wall(100, 80, 30, DirSouth, false, KindNormal),
		wall(101, 112, 25, DirESE, true, KindNormal), // ENE start near (100,110)
	}, 512)

	s := wallByType(t, l, NewSouth)
	if s.h2 != 9 {
		t.Fatalf("south band end got %d want 9", s.h2)
	}
	wh := patchAt(t, l, 100, 89)
	if wh.Ht != 21 || !slices.Equal(wh.Data, nPatch) {
		t.Fatalf("column patch got ht %d", wh.Ht)
	}
	if hasPatchAt(l, 100, 104) {
		t.Fatal("short trim fired after the tall one")
	}
}

// Same crowd with the pair order flipped: the short trim fires first and
// the tall one upgrades its patch in place instead of stacking a second.
func TestSouthEndTrimUpgrades(t *testing.T) {
	l := mustLevel(t, []Wall{
		wall(99, 111, 25, DirESE, true, KindNormal),  // ENE start near (100,110)
		wall(100, 80, 30, DirSouth, false, KindNormal),
		wall(101, 112, 25, DirSSE, true, KindNormal), // NNE start near (100,110)
	}, 512)

	s := wallByType(t, l, NewSouth)
	if s.h2 != 9 {
		t.Fatalf("south band end got %d want 9", s.h2)
	}
	wh := patchAt(t, l, 100, 89)
	if wh.Ht != 21 {
		t.Fatalf("column patch ht got %d want 21", wh.Ht)
	}
	if hasPatchAt(l, 100, 104) {
		t.Fatal("six-row patch not upgraded in place")
	}
}

// A NE wall starting on a south wall's end: the south band is trimmed to a
// column patch, and the NE start grows stepped slabs up its right side.
func TestNEStartSteps(t *testing.T) {
	l := mustLevel(t, []Wall{
		wall(100, 90, 20, DirSouth, false, KindNormal),
		wall(100, 110, 20, DirSE, true, KindNormal),
	}, 512)

	s := wallByType(t, l, NewSouth)
	if s.h2 != 10 {
		t.Fatalf("south band end got %d want 10", s.h2)
	}
	ne := wallByType(t, l, NewNE)
	if ne.h1 != 13 {
		t.Fatalf("ne band start got %d want 13", ne.h1)
	}

	wh := patchAt(t, l, 100, 100)
	if wh.Ht != 10 || !slices.Equal(wh.Data, nPatch) {
		t.Fatalf("column patch got ht %d", wh.Ht)
	}
	for _, pos := range [][2]int{{103, 106}, {107, 102}, {111, 98}} {
		wh := patchAt(t, l, pos[0], pos[1])
		if wh.Ht != 4 || !slices.Equal(wh.Data, nePatch) {
			t.Fatalf("slab at (%d,%d) got ht %d", pos[0], pos[1], wh.Ht)
		}
	}
}

// The close-pair box is strict: endpoints exactly 3 apart merge into one
// junction but do not trigger a trim.
func TestCloseBoxIsStrict(t *testing.T) {
	l := mustLevel(t, []Wall{
		wall(100, 80, 30, DirSouth, false, KindNormal),
		wall(103, 110, 25, DirSSE, true, KindNormal),
	}, 512)

	s := wallByType(t, l, NewSouth)
	if s.h2 != 30 {
		t.Fatalf("south band end got %d want 30 (untrimmed)", s.h2)
	}
	if n := detectedJunctions(l); n != 3 {
		t.Fatalf("detected %d junctions want 3", n)
	}
	// The NNE start's endpoint folded into (100,110); with no junction of
	// its own its patch stays plain.
	if wh := patchAt(t, l, 103, 110); wh.HasJ {
		t.Fatal("patch at (103,110) hash-blended")
	}
}
