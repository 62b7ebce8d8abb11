// terrapng renders a terrain wall file to a PNG: one viewport by default,
// or the whole world as a sheet of concurrently rendered tiles.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"runtime"

	"github.com/stuarthighley/terrain"
	"github.com/stuarthighley/terrain/internal/demo"
	"github.com/stuarthighley/terrain/taskq"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

var (
	inFile  = flag.String("in", "", "wall file to render (built-in demo level when empty)")
	outFile = flag.String("o", "terrain.png", "output PNG")
	width   = flag.Int("width", 512, "viewport width in pixels")
	height  = flag.Int("height", 342, "viewport height in pixels")
	viewX   = flag.Int("x", 0, "viewport left edge in world coordinates")
	viewY   = flag.Int("y", 0, "viewport top edge in world coordinates")
	world   = flag.Int("world", demo.WorldWidth, "world width for horizontal wrapping")
	scale   = flag.Int("scale", 1, "integer upscale factor")
	labels  = flag.Bool("labels", false, "annotate junctions with their coordinates")
	sheet   = flag.Int("sheet", 0, "tile the world into N columns and render them all")
	dumpLvl = flag.Bool("dump", false, "print the level tables to stdout")
	verbose = flag.Bool("v", false, "log progress")
)

func main() {
	flag.Parse()
	if *verbose {
		terrain.SetLogger(log.New(os.Stderr, "", log.LstdFlags))
	}

	walls, worldWidth, err := loadWalls()
	if err != nil {
		log.Fatalln(err)
	}
	level, err := terrain.NewLevel(walls, worldWidth)
	if err != nil {
		log.Fatalln(err)
	}
	if *dumpLvl {
		level.Dump(os.Stdout)
	}

	var img image.Image
	if *sheet > 0 {
		img = renderSheet(level, *sheet)
	} else {
		view := terrain.Rect{
			X: *viewX, Y: *viewY,
			Right: *viewX + *width, Bottom: *viewY + *height,
		}
		gray := grayImage(renderView(level, view))
		if *labels {
			drawLabels(gray, level, view)
		}
		img = gray
	}
	if *scale > 1 {
		img = upscale(img, *scale)
	}

	if err := writePNG(*outFile, img); err != nil {
		log.Fatalln(err)
	}
	log.Println("wrote", *outFile)
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

// renderView runs the full frame pipeline for one viewport: background
// weave, white pass, then the black pass for each kind.
func renderView(level *terrain.Level, view terrain.Rect) *terrain.Bitmap {
	bm := terrain.NewBitmap(view.Width(), view.Height())
	bm.FillBackground()
	level.WhiteTerrain(bm, view)
	for k := terrain.KindNormal; k <= terrain.KindExplode; k++ {
		level.BlackTerrain(bm, view, k)
	}
	return bm
}

// renderSheet splits the world into n columns and renders them in parallel,
// one tile per worker job.
func renderSheet(level *terrain.Level, n int) image.Image {
	tileW := (level.WorldWidth + n - 1) / n
	img := image.NewGray(image.Rect(0, 0, n*tileW, *height))

	// Tiles cover disjoint pixel columns, so the workers can write into the
	// shared image without locking.
	q := taskq.New(runtime.NumCPU(), n, func(i int) {
		view := terrain.Rect{
			X: i * tileW, Y: *viewY,
			Right: (i + 1) * tileW, Bottom: *viewY + *height,
		}
		bm := renderView(level, view)
		copyTile(img, bm, view.X)
	})
	for i := 0; i < n; i++ {
		q.Submit(i)
	}
	q.Wait()
	q.Close()
	return img
}

func copyTile(img *image.Gray, bm *terrain.Bitmap, destX int) {
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			img.SetGray(destX+x, y, pixelGray(bm, x, y))
		}
	}
}

func grayImage(bm *terrain.Bitmap) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, bm.Width, bm.Height))
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			img.SetGray(x, y, pixelGray(bm, x, y))
		}
	}
	return img
}

func pixelGray(bm *terrain.Bitmap, x, y int) color.Gray {
	if bm.Pixel(x, y) {
		return color.Gray{Y: 0x00}
	}
	return color.Gray{Y: 0xFF}
}

// drawLabels writes each visible junction's world coordinates beside it.
func drawLabels(img *image.Gray, level *terrain.Level, view terrain.Rect) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: inconsolata.Regular8x16,
	}
	for _, j := range level.Junctions[:level.NumJunctions()] {
		if j.X < view.X || j.X >= view.Right || j.Y < view.Y || j.Y >= view.Bottom {
			continue
		}
		d.Dot = fixed.P(j.X-view.X+8, j.Y-view.Y-2)
		d.DrawString(fmt.Sprintf("%d,%d", j.X, j.Y))
	}
}

func upscale(src image.Image, n int) image.Image {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
