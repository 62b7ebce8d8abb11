// Package demo carries the built-in level the commands fall back to when no
// wall file is given.
package demo

import "github.com/stuarthighley/terrain"

// WorldWidth is the demo level's wrap width.
const WorldWidth = 512

// Walls returns a small cave run exercising every wall direction, all four
// kinds, and a chain of junctions, plus one wall near the world seam.
func Walls() []terrain.Wall {
	return []terrain.Wall{
		{StartX: 40, StartY: 40, Length: 48, Dir: terrain.DirSouth, Kind: terrain.KindNormal},
		{StartX: 40, StartY: 88, Length: 40, Dir: terrain.DirSE, Kind: terrain.KindNormal},
		{StartX: 80, StartY: 128, Length: 120, Dir: terrain.DirEast, Kind: terrain.KindNormal},
		{StartX: 200, StartY: 128, Length: 36, Dir: terrain.DirSE, Up: true, Kind: terrain.KindNormal},
		{StartX: 236, StartY: 92, Length: 37, Dir: terrain.DirSSE, Up: true, Kind: terrain.KindBounce},
		{StartX: 254, StartY: 55, Length: 41, Dir: terrain.DirESE, Up: true, Kind: terrain.KindNormal},
		{StartX: 295, StartY: 35, Length: 50, Dir: terrain.DirESE, Kind: terrain.KindNormal},
		{StartX: 345, StartY: 60, Length: 48, Dir: terrain.DirSSE, Kind: terrain.KindGhost},
		{StartX: 369, StartY: 108, Length: 80, Dir: terrain.DirEast, Kind: terrain.KindExplode},
		{StartX: 500, StartY: 150, Length: 40, Dir: terrain.DirSouth, Kind: terrain.KindNormal},
	}
}
