package terrain

// WhitePatch is a small corrective bitmap anchored at a world position,
// AND-applied to the framebuffer around wall endpoints and junctions (or
// XOR-applied once hash-blended). Row data is 16 pixels wide, bit 15 at the
// anchor column; a zero bit clears.
type WhitePatch struct {
	X, Y int
	Ht   int
	HasJ bool
	Data []uint16
}

// patchRows is the height of a full endpoint piece. Only full-height
// patches take part in same-spot merging and junction hash blending.
const patchRows = 6

// Endpoint piece patterns, six rows each. A wall's own underside band covers
// its middle; these shape the taper at the ends. Bit 15 is the anchor pixel.
var (
	genericTop = []uint16{0xFFFF, 0x3FFF, 0x0FFF, 0x03FF, 0x00FF, 0x007F}
	nneBot     = []uint16{0x800F, 0xC01F, 0xF01F, 0xFC3F, 0xFF3F, 0xFFFF}
	neBot      = []uint16{0x8001, 0xC003, 0xF007, 0xFC0F, 0xFF1F, 0xFFFF}
	eneLeft    = []uint16{0x8000, 0xC000, 0xF000, 0xFC01, 0xFF07, 0xFFDF}
	eLeft      = []uint16{0xFFFF, 0xFFFF, 0xF000, 0xFC00, 0xFF00, 0xFF80}
	eseRight   = []uint16{0xFFFF, 0x3FFF, 0x8FFF, 0xE3FF, 0xF8FF, 0xFE7F}
	seTop      = []uint16{0xFFFF, 0xFFFF, 0xEFFF, 0xF3FF, 0xF8FF, 0xFC3F}
	seBot      = []uint16{0x87FF, 0xC3FF, 0xF1FF, 0xFCFF, 0xFF7F, 0xFFFF}
	sseTop     = []uint16{0xFFFF, 0xBFFF, 0xCFFF, 0xC3FF, 0xE0FF, 0xE03F}
	sseBot     = []uint16{0x80FF, 0xC07F, 0xF07F, 0xFC3F, 0xFF3F, 0xFFFF}
	sBot       = []uint16{0x803F, 0xC03F, 0xF03F, 0xFC3F, 0xFF3F, 0xFFFF}
)

// Glitch-fix patches. The NE/ENE/ESE drawers leave known rasterization
// artifacts at fixed offsets from their endpoints; these erase them.
var (
	neGlitch   = []uint16{0xEFFF, 0xCFFF, 0x8FFF, 0x0FFF}
	eneGlitch1 = []uint16{0x07FF, 0x1FFF, 0x7FFF}
	eneGlitch2 = []uint16{0xFF3F, 0xFC3F, 0xF03F, 0xC03F, 0x003F}
	eseGlitch  = []uint16{0x3FFF, 0xCFFF, 0xF3FF, 0xFDFF}
)

// whitePicts maps each 8-way direction to its start and end pieces. A nil
// entry emits nothing for that side.
var whitePicts = [numNewTypes][2][]uint16{
	NewSouth: {genericTop, sBot},
	NewSSE:   {sseTop, sseBot},
	NewSE:    {seTop, seBot},
	NewESE:   {nil, eseRight},
	NewEast:  {eLeft, genericTop},
	NewENE:   {eneLeft, genericTop},
	NewNE:    {neBot, genericTop},
	NewNNE:   {nneBot, genericTop},
}

// whiteSet accumulates patches during initialization.
type whiteSet struct {
	patches []WhitePatch
}

func (ws *whiteSet) add(x, y, ht int, data []uint16) {
	ws.patches = append(ws.patches, WhitePatch{X: x, Y: y, Ht: ht, Data: data})
}

// replace2 swaps the patch currently at the target position (and of lesser
// height) for a new one, possibly elsewhere. No-op when nothing matches;
// junction synthesis uses that to upgrade an endpoint piece it already
// placed.
func (ws *whiteSet) replace2(targetX, targetY, x, y, ht int, data []uint16) {
	for i := range ws.patches {
		wh := &ws.patches[i]
		if wh.Y != targetY || wh.X != targetX || wh.Ht >= ht {
			continue
		}
		wh.X = x
		wh.Y = y
		wh.Ht = ht
		wh.Data = data
		return
	}
}

// initWhites runs the full white-patch synthesis: standard endpoint and
// glitch pieces, close-pair junction patches, the position sort, the
// same-position AND-merge, and finally hash blending against the junction
// set.
func (l *Level) initWhites() {
	ws := &whiteSet{patches: make([]WhitePatch, 0, 3*len(l.Walls)+numSentinels)}

	l.normWhites(ws)
	l.closeWhites(ws)

	// Insertion sort by x then y, stable.
	p := ws.patches
	for i := 1; i < len(p); i++ {
		for m := i; m > 0 && p[m].X <= p[m-1].X &&
			(p[m].X < p[m-1].X || p[m].Y < p[m-1].Y); m-- {
			p[m], p[m-1] = p[m-1], p[m]
		}
	}

	for i := 0; i < numSentinels; i++ {
		p = append(p, WhitePatch{X: sentinelX})
	}

	// Standard-height patches landing on the same position merge by ANDing
	// their rows: darkest wins, and the pair collapses to one patch.
	for i := 0; p[i].X < sentinelX; i++ {
		for i+1 < len(p) && p[i].X == p[i+1].X && p[i].Y == p[i+1].Y &&
			p[i].Ht == patchRows && p[i+1].Ht == patchRows {
			merged := make([]uint16, patchRows)
			for r := 0; r < patchRows; r++ {
				merged[r] = p[i].Data[r] & p[i+1].Data[r]
			}
			p[i].Data = merged
			p = append(p[:i+1], p[i+2:]...)
		}
	}

	l.Whites = p
	l.whiteHashMerge()
}

// normWhites emits the standard endpoint pieces for every wall, plus the
// fixed-offset glitch patches for the NE, ENE, and ESE drawers.
func (l *Level) normWhites(ws *whiteSet) {
	for i := range l.Walls {
		w := &l.Walls[i]
		for n := 0; n < 2; n++ {
			if pict := whitePicts[w.NewType][n]; pict != nil {
				x, y := w.endpoint(n)
				ws.add(x, y, patchRows, pict)
			}
		}

		switch w.NewType {
		case NewNE:
			ws.add(w.EndX-4, w.EndY+2, 4, neGlitch)
		case NewENE:
			ws.add(w.StartX+16, w.StartY, 3, eneGlitch1)
			ws.add(w.EndX-10, w.EndY+1, 5, eneGlitch2)
		case NewESE:
			ws.add(w.EndX-7, w.EndY-2, 4, eseGlitch)
		}
	}
}

// repeatRow builds an n-row patch of one repeated word.
func repeatRow(v uint16, n int) []uint16 {
	rows := make([]uint16, n)
	for i := range rows {
		rows[i] = v
	}
	return rows
}
