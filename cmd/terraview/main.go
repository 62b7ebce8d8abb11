// terraview pans a terminal viewport over a terrain level, rendering two
// bitmap rows per character cell with half-block glyphs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/stuarthighley/terrain"
	"github.com/stuarthighley/terrain/internal/demo"
)

var (
	inFile = flag.String("in", "", "wall file to view (built-in demo level when empty)")
	world  = flag.Int("world", demo.WorldWidth, "world width for horizontal wrapping")
)

type viewer struct {
	screen tcell.Screen
	level  *terrain.Level
	x, y   int
	info   bool
}

func main() {
	flag.Parse()

	walls, worldWidth, err := loadWalls()
	if err != nil {
		log.Fatalln(err)
	}
	level, err := terrain.NewLevel(walls, worldWidth)
	if err != nil {
		log.Fatalln(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalln(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalln(err)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, level: level, info: true}
	v.run()
}

func loadWalls() ([]terrain.Wall, int, error) {
	if *inFile == "" {
		return demo.Walls(), demo.WorldWidth, nil
	}
	f, err := os.Open(*inFile)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	walls, err := terrain.ReadWalls(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%v: %v", *inFile, err)
	}
	return walls, *world, nil
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func (v *viewer) draw() {
	cols, rows := v.screen.Size()
	if v.info && rows > 1 {
		rows--
	}

	view := terrain.Rect{X: v.x, Y: v.y, Right: v.x + cols, Bottom: v.y + rows*2}
	bm := terrain.NewBitmap(view.Width(), view.Height())
	bm.FillBackground()
	v.level.WhiteTerrain(bm, view)
	for k := terrain.KindNormal; k <= terrain.KindExplode; k++ {
		v.level.BlackTerrain(bm, view, k)
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			st := tcell.StyleDefault.
				Foreground(pxColor(bm, cx, 2*cy)).
				Background(pxColor(bm, cx, 2*cy+1))
			v.screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
	if v.info {
		v.drawInfo(cols, rows)
	}
	v.screen.Show()
}

func pxColor(bm *terrain.Bitmap, x, y int) tcell.Color {
	if bm.Pixel(x, y) {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func (v *viewer) drawInfo(cols, row int) {
	msg := fmt.Sprintf(" (%d,%d)  %d walls  %d junctions  arrows/hjkl pan, g home, i info, q quit",
		v.x, v.y, len(v.level.Walls), v.level.NumJunctions())
	st := tcell.StyleDefault.Reverse(true)
	for i := 0; i < cols; i++ {
		r := ' '
		if i < len(msg) {
			r = rune(msg[i])
		}
		v.screen.SetContent(i, row, r, nil, st)
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	step := 8
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = 32
	}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.pan(-step, 0)
	case tcell.KeyRight:
		v.pan(step, 0)
	case tcell.KeyUp:
		v.pan(0, -step)
	case tcell.KeyDown:
		v.pan(0, step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			v.pan(-step, 0)
		case 'l':
			v.pan(step, 0)
		case 'k':
			v.pan(0, -step)
		case 'j':
			v.pan(0, step)
		case 'g':
			v.x, v.y = 0, 0
		case 'i':
			v.info = !v.info
		}
	}
	return true
}

// pan moves the viewport, wrapping x at the world seam the same way the
// renderer does.
func (v *viewer) pan(dx, dy int) {
	v.x += dx
	v.y += dy
	if ww := v.level.WorldWidth; ww > 0 {
		v.x = ((v.x % ww) + ww) % ww
	}
}
