package terrain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// PackedWall is the minimal on-disk wall sub-record inside a level
// container. The Spec word packs direction into bits 0-2, kind into bits
// 3-4 (biased by one to fit the two-bit field), and the up flag into bit 8.
// Everything else about a wall is re-derived on unpack.
type PackedWall struct {
	StartX int16
	StartY int16
	Length uint16
	Spec   uint16
}

const (
	specDirMask   = 0x0007
	specKindMask  = 0x0018
	specKindShift = 3
	specUpBit     = 0x0100
)

// wallMagic introduces a wall section in a level container.
var wallMagic = [4]byte{'W', 'A', 'L', 'L'}

// PackWall projects a wall down to its stored record. Packing then
// unpacking any classifier-produced wall reproduces it bit for bit,
// endpoint and 8-way direction included. The record fields are narrower
// than the in-memory ones; WriteWalls rejects walls they cannot hold.
func PackWall(w Wall) PackedWall {
	spec := uint16(w.Dir) & specDirMask
	spec |= uint16(w.Kind-KindNormal) << specKindShift & specKindMask
	if w.Up {
		spec |= specUpBit
	}
	return PackedWall{
		StartX: int16(w.StartX),
		StartY: int16(w.StartY),
		Length: uint16(w.Length),
		Spec:   spec,
	}
}

// UnpackWall re-derives a full wall from its stored record: endpoint from
// the per-direction length-fraction tables, the NNE/ENE odd-length rule,
// and the consolidated 8-way direction. It is the only legal decoder for
// the Spec word.
func UnpackWall(p PackedWall) (Wall, error) {
	w := Wall{
		StartX: int(p.StartX),
		StartY: int(p.StartY),
		Length: int(p.Length),
		Dir:    StoredDir(p.Spec & specDirMask),
		Up:     p.Spec&specUpBit != 0,
		Kind:   Kind(p.Spec&specKindMask>>specKindShift) + KindNormal,
	}
	if err := w.finish(); err != nil {
		return Wall{}, err
	}
	return w, nil
}

// ReadWalls decodes a wall section: a 4-byte "WALL" magic, a big-endian
// uint16 record count, then that many packed records. The surrounding level
// container is the caller's concern.
func ReadWalls(r io.Reader) ([]Wall, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("terrain: reading wall section magic: %v", err)
	}
	if magic != wallMagic {
		return nil, fmt.Errorf("terrain: bad wall section magic %q", magic)
	}

	var count uint16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("terrain: reading wall count: %v", err)
	}

	packed := make([]PackedWall, count)
	if err := binary.Read(r, binary.BigEndian, &packed); err != nil {
		return nil, fmt.Errorf("terrain: reading %d wall records: %v", count, err)
	}

	walls := make([]Wall, 0, count)
	for i, p := range packed {
		w, err := UnpackWall(p)
		if err != nil {
			return nil, fmt.Errorf("terrain: wall record %d: %v", i, err)
		}
		walls = append(walls, w)
	}
	logger.Printf("terrain: read %d walls", len(walls))
	return walls, nil
}

// WriteWalls encodes a wall section in the format ReadWalls consumes. Walls
// whose coordinates or length do not fit the packed record are rejected
// before anything is written.
func WriteWalls(w io.Writer, walls []Wall) error {
	if len(walls) > 0xFFFF {
		return errors.New("terrain: too many walls for one section")
	}
	packed := make([]PackedWall, len(walls))
	for i, wall := range walls {
		if wall.StartX != int(int16(wall.StartX)) || wall.StartY != int(int16(wall.StartY)) {
			return fmt.Errorf("terrain: wall record %d: start (%d,%d) out of range", i, wall.StartX, wall.StartY)
		}
		if wall.Length != int(uint16(wall.Length)) {
			return fmt.Errorf("terrain: wall record %d: length %d out of range", i, wall.Length)
		}
		packed[i] = PackWall(wall)
	}
	if _, err := w.Write(wallMagic[:]); err != nil {
		return fmt.Errorf("terrain: writing wall section magic: %v", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(walls))); err != nil {
		return fmt.Errorf("terrain: writing wall count: %v", err)
	}
	if err := binary.Write(w, binary.BigEndian, packed); err != nil {
		return fmt.Errorf("terrain: writing %d wall records: %v", len(walls), err)
	}
	return nil
}
