// terraserve serves a terrain level over HTTP: a small viewer page, a
// one-shot PNG endpoint, and a websocket that streams freshly rendered
// frames as the client pans.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/coder/websocket"
	"github.com/stuarthighley/terrain"
	"github.com/stuarthighley/terrain/internal/demo"
)

var (
	addr   = flag.String("addr", "localhost:8080", "listen address")
	inFile = flag.String("in", "", "wall file to serve (built-in demo level when empty)")
	world  = flag.Int("world", demo.WorldWidth, "world width for horizontal wrapping")
	width  = flag.Int("width", 512, "frame width in pixels")
	height = flag.Int("height", 342, "frame height in pixels")
)

type server struct {
	level *terrain.Level
}

func main() {
	flag.Parse()
	terrain.SetLogger(log.New(os.Stderr, "", log.LstdFlags))

	walls, worldWidth, err := loadWalls()
	if err != nil {
		log.Fatalln(err)
	}
	level, err := terrain.NewLevel(walls, worldWidth)
	if err != nil {
		log.Fatalln(err)
	}
	s := &server{level: level}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/frame.png", s.handleFrame)
	mux.HandleFunc("/ws", s.handleWS)

	log.Println("listening on", *addr)
	log.Fatalln(http.ListenAndServe(*addr, mux))
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

// renderFrame produces one PNG of the viewport anchored at (x, y).
func (s *server) renderFrame(x, y int) []byte {
	view := terrain.Rect{X: x, Y: y, Right: x + *width, Bottom: y + *height}
	bm := terrain.NewBitmap(view.Width(), view.Height())
	bm.FillBackground()
	s.level.WhiteTerrain(bm, view)
	for k := terrain.KindNormal; k <= terrain.KindExplode; k++ {
		s.level.BlackTerrain(bm, view, k)
	}

	img := image.NewGray(image.Rect(0, 0, bm.Width, bm.Height))
	for iy := 0; iy < bm.Height; iy++ {
		for ix := 0; ix < bm.Width; ix++ {
			v := uint8(0xFF)
			if bm.Pixel(ix, iy) {
				v = 0x00
			}
			img.SetGray(ix, iy, color.Gray{Y: v})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("encode frame: %v", err)
	}
	return buf.Bytes()
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *server) handleFrame(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, _ := strconv.Atoi(q.Get("x"))
	y, _ := strconv.Atoi(q.Get("y"))
	w.Header().Set("Content-Type", "image/png")
	w.Write(s.renderFrame(x, y))
}

// panMsg is the client's pan intent. Home resets the viewport.
type panMsg struct {
	DX   int  `json:"dx"`
	DY   int  `json:"dy"`
	Home bool `json:"home"`
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	ctx := r.Context()

	x, y := 0, 0
	if err := conn.Write(ctx, websocket.MessageBinary, s.renderFrame(x, y)); err != nil {
		return
	}
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg panMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Home {
			x, y = 0, 0
		} else {
			x += msg.DX
			y += msg.DY
		}
		if ww := s.level.WorldWidth; ww > 0 {
			x = ((x % ww) + ww) % ww
		}
		if err := conn.Write(ctx, websocket.MessageBinary, s.renderFrame(x, y)); err != nil {
			return
		}
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>terrain</title>
<style>body{background:#444;margin:0;display:flex;justify-content:center}
canvas{margin-top:2em;image-rendering:pixelated;border:1px solid #000}</style>
</head>
<body>
<canvas id="c"></canvas>
<script>
const c = document.getElementById("c"), g = c.getContext("2d");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = async (ev) => {
	const img = await createImageBitmap(ev.data);
	c.width = img.width; c.height = img.height;
	g.drawImage(img, 0, 0);
};
const steps = {ArrowLeft:[-16,0], ArrowRight:[16,0], ArrowUp:[0,-16], ArrowDown:[0,16]};
document.addEventListener("keydown", (ev) => {
	if (ev.key === "Home") { ws.send(JSON.stringify({home:true})); return; }
	const s = steps[ev.key];
	if (s) { ws.send(JSON.stringify({dx:s[0], dy:s[1]})); ev.preventDefault(); }
});
</script>
</body>
</html>
`
