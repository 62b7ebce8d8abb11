package terrain

import (
	"fmt"
	"io"
)

// Dump writes a readable summary of the level's derived state: every wall
// with its resolved direction and underside band, then the surviving
// junctions and the white patch table.
func (l *Level) Dump(w io.Writer) {
	fmt.Fprintf(w, "world width %d: %d walls, %d junctions, %d whites\n",
		l.WorldWidth, len(l.Walls), l.numJunctions,
		len(l.Whites)-numSentinels)
	for i := range l.Walls {
		wl := &l.Walls[i]
		fmt.Fprintf(w, "wall %3d: %-7s %-3s (%d,%d)-(%d,%d) len %d band [%d,%d)\n",
			i, wl.Kind, wl.NewType, wl.StartX, wl.StartY, wl.EndX, wl.EndY,
			wl.Length, wl.h1, wl.h2)
	}
	for i := 0; i < l.numJunctions; i++ {
		fmt.Fprintf(w, "junction %3d: (%d,%d)\n", i, l.Junctions[i].X, l.Junctions[i].Y)
	}
	for i := 0; i < len(l.Whites) && l.Whites[i].X < sentinelX; i++ {
		wh := &l.Whites[i]
		mark := ""
		if wh.HasJ {
			mark = " hash"
		}
		fmt.Fprintf(w, "white %3d: (%d,%d) ht %d%s\n", i, wh.X, wh.Y, wh.Ht, mark)
	}
}
