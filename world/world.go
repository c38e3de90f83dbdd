package world

import (
	"io"
	"unsafe"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blockgame/game"
	"github.com/oomph-ac/blockgame/world/block"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Size is the side length of a world. Every axis of a grid position must be in [0, Size).
const Size = game.WorldSize

const cellCount = Size * Size * Size

// World is a bounded cubic grid of blocks. Positions passed to its methods are grid positions; use
// WorldToGrid to convert a world space position first. Out of bounds positions are never stored:
// they read as air and writes to them are ignored.
//
// A World is not safe for concurrent use. It is owned by the goroutine running the tick loop.
type World struct {
	cells [cellCount]block.Type
	log   *logrus.Logger
}

// New creates a world filled by the generator passed. A nil generator produces the default flat
// world, and a nil logger discards all output.
func New(gen Generator, log *logrus.Logger) *World {
	if gen == nil {
		gen = FlatGenerator{}
	}
	w := NewEmpty(log)
	gen.Generate(w)
	w.updateSurface()

	w.log.WithFields(logrus.Fields{
		"generator": gen.Name(),
		"digest":    w.Digest(),
	}).Debug("world generated")
	return w
}

// NewEmpty creates a world where every cell is air.
func NewEmpty(log *logrus.Logger) *World {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &World{log: log}
}

// Block returns the block at the position passed. Air is returned if the position is out of bounds.
func (w *World) Block(pos cube.Pos) block.Type {
	if !InBounds(pos) {
		return block.Air
	}
	return w.cells[index(pos)]
}

// HasBlock returns true if the block at the position passed is solid.
func (w *World) HasBlock(pos cube.Pos) bool {
	return w.Block(pos) != block.Air
}

// Break replaces the block at the position passed with air. Nothing happens if the position is out
// of bounds or already air.
func (w *World) Break(pos cube.Pos) {
	if !w.HasBlock(pos) {
		return
	}
	prev := w.cells[index(pos)]
	w.cells[index(pos)] = block.Air

	w.log.WithFields(logrus.Fields{"pos": pos, "block": prev}).Debug("block broken")
	w.updateSurface()
}

// Place places grass at the position passed. See PlaceOfType.
func (w *World) Place(pos cube.Pos) {
	w.PlaceOfType(pos, block.Grass)
}

// PlaceOfType places a block of the type passed at the position. Placing never replaces a solid
// block: nothing happens if the position is out of bounds, occupied, or if t is not a solid type.
func (w *World) PlaceOfType(pos cube.Pos, t block.Type) {
	if !t.Solid() || !InBounds(pos) || w.HasBlock(pos) {
		return
	}
	w.cells[index(pos)] = t

	w.log.WithFields(logrus.Fields{"pos": pos, "block": t}).Debug("block placed")
	w.updateSurface()
}

// Height returns the Y value directly above the highest solid block in the grid column (x, z), or
// zero if the column is empty or out of bounds.
func (w *World) Height(x, z int) int {
	for y := Size - 1; y >= 0; y-- {
		if w.HasBlock(cube.Pos{x, y, z}) {
			return y + 1
		}
	}
	return 0
}

// GroundHeight returns the world space Y of the top of the highest solid block in the column that
// contains the world space position (x, z).
func (w *World) GroundHeight(x, z float32) float32 {
	pos := WorldToGrid(x, 0, z)
	return float32(w.Height(pos.X(), pos.Z()))
}

// Digest returns a checksum of every cell in the world.
func (w *World) Digest() uint64 {
	return xxh3.Hash(unsafe.Slice((*byte)(unsafe.Pointer(&w.cells[0])), cellCount))
}

// updateSurface turns covered grass into dirt and exposed dirt into grass. Placed dirt is left alone.
// It is a single pass over the grid: conversions never change whether a cell is air, so the result
// does not depend on the order cells are visited in.
func (w *World) updateSurface() {
	var converted int
	for y := 0; y < Size; y++ {
		for z := 0; z < Size; z++ {
			for x := 0; x < Size; x++ {
				i := index(cube.Pos{x, y, z})
				covered := w.HasBlock(cube.Pos{x, y + 1, z})

				switch t := w.cells[i]; {
				case t == block.Grass && covered:
					w.cells[i] = block.Dirt
					converted++
				case t == block.Dirt && !covered:
					w.cells[i] = block.Grass
					converted++
				}
			}
		}
	}
	if converted > 0 {
		w.log.WithField("converted", converted).Debug("surface updated")
	}
}

// set writes a block without running the surface rule. It is used by generators.
func (w *World) set(pos cube.Pos, t block.Type) {
	if InBounds(pos) && t.Valid() {
		w.cells[index(pos)] = t
	}
}

func index(pos cube.Pos) int {
	return (pos[1]*Size+pos[2])*Size + pos[0]
}
