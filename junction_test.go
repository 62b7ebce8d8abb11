package terrain

import "testing"

// detectedJunctions is the endpoint-cluster count before hash blending
// consumes any: the slice keeps its detect-time length, sentinels aside.
func detectedJunctions(l *Level) int {
	return len(l.Junctions) - numSentinels
}

// Endpoints within the inclusive 3-pixel box fold into the junction seen
// first, and the stored position never moves. The two walls here sit 2px
// apart, which also crowds their patches out of hash blending, so the
// junction values stay observable.
func TestJunctionMergeFirstWins(t *testing.T) {
	l := mustLevel(t, []Wall{
		wall(105, 50, 10, DirSouth, false, KindNormal),
		wall(107, 52, 10, DirSouth, false, KindNormal),
	}, 512)

	if n := detectedJunctions(l); n != 2 {
		t.Fatalf("detected %d junctions want 2", n)
	}
	if n := l.NumJunctions(); n != 2 {
		t.Fatalf("NumJunctions got %d want 2", n)
	}
	// Stored at the first wall's endpoints; equal x keeps discovery order.
	if l.Junctions[0] != (Junction{105, 50}) || l.Junctions[1] != (Junction{105, 60}) {
		t.Fatalf("junctions %v want [(105,50) (105,60)]", l.Junctions[:2])
	}
}

func TestJunctionBoxIsInclusive(t *testing.T) {
	t.Run("dx 3 merges", func(t *testing.T) {
		l := mustLevel(t, []Wall{
			wall(100, 100, 10, DirSouth, false, KindNormal),
			wall(103, 100, 10, DirSouth, false, KindNormal),
		}, 512)
		if n := detectedJunctions(l); n != 2 {
			t.Fatalf("detected %d junctions want 2", n)
		}
	})
	t.Run("dx 4 does not", func(t *testing.T) {
		l := mustLevel(t, []Wall{
			wall(100, 100, 10, DirSouth, false, KindNormal),
			wall(104, 100, 10, DirSouth, false, KindNormal),
		}, 512)
		if n := detectedJunctions(l); n != 4 {
			t.Fatalf("detected %d junctions want 4", n)
		}
	})
	t.Run("dy 3 merges", func(t *testing.T) {
		l := mustLevel(t, []Wall{
			wall(100, 100, 10, DirSouth, false, KindNormal),
			wall(100, 113, 10, DirSouth, false, KindNormal),
		}, 512)
		if n := detectedJunctions(l); n != 3 {
			t.Fatalf("detected %d junctions want 3", n)
		}
		// The second wall's start folded into (100,110), so no junction
		// remained at (100,113) for its patch to blend with.
		if wh := patchAt(t, l, 100, 113); wh.HasJ {
			t.Fatal("patch at (100,113) hash-blended without a junction there")
		}
		if wh := patchAt(t, l, 100, 110); !wh.HasJ {
			t.Fatal("patch at (100,110) not hash-blended")
		}
	})
}

func TestJunctionSentinels(t *testing.T) {
	l := mustLevel(t, []Wall{wall(100, 100, 20, DirSouth, false, KindNormal)}, 512)
	if len(l.Junctions) != 2+numSentinels {
		t.Fatalf("junction slice len %d want %d", len(l.Junctions), 2+numSentinels)
	}
	for _, j := range l.Junctions[len(l.Junctions)-numSentinels:] {
		if j.X != sentinelX {
			t.Fatalf("sentinel at %v", j)
		}
	}
	// Hash blending consumed both junctions but the padding stays.
	if n := l.NumJunctions(); n != 0 {
		t.Fatalf("NumJunctions got %d want 0", n)
	}
}
