package world

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blockgame/world/block"
)

// Generator fills a newly created world with its initial blocks. The surface rule is run once after
// Generate returns.
type Generator interface {
	// Name returns the name the generator is selected by in the settings.
	Name() string
	// Generate fills the empty world passed.
	Generate(w *World)
}

// FlatGenerator generates a flat slab: two layers of cobblestone with a layer of grass on top.
type FlatGenerator struct{}

// Name ...
func (FlatGenerator) Name() string { return "flat" }

// Generate ...
func (FlatGenerator) Generate(w *World) {
	for z := 0; z < Size; z++ {
		for x := 0; x < Size; x++ {
			w.set(cube.Pos{x, 0, z}, block.Cobblestone)
			w.set(cube.Pos{x, 1, z}, block.Cobblestone)
			w.set(cube.Pos{x, 2, z}, block.Grass)
		}
	}
}

const (
	hillsBase      = 3
	hillsAmplitude = 8
	hillsScale     = 1.0 / 16
)

// HillsGenerator generates rolling terrain from perlin noise. Every column has two layers of
// cobblestone, is filled with dirt and capped with grass. The lowest column is as high as the
// flat slab.
type HillsGenerator struct {
	Seed int64
}

// Name ...
func (HillsGenerator) Name() string { return "hills" }

// Generate ...
func (g HillsGenerator) Generate(w *World) {
	noise := perlin.NewPerlin(2, 2, 3, g.Seed)
	for z := 0; z < Size; z++ {
		for x := 0; x < Size; x++ {
			n := noise.Noise2D(float64(x)*hillsScale, float64(z)*hillsScale)
			// Noise2D is roughly in [-1, 1].
			height := hillsBase + int((n+1)/2*hillsAmplitude)
			height = max(hillsBase, min(height, Size-1))

			for y := 0; y < height; y++ {
				t := block.Dirt
				switch {
				case y < 2:
					t = block.Cobblestone
				case y == height-1:
					t = block.Grass
				}
				w.set(cube.Pos{x, y, z}, t)
			}
		}
	}
}

// GeneratorByName returns the generator with the name passed. Names are case insensitive.
func GeneratorByName(name string, seed int64) (Generator, error) {
	switch strings.ToLower(name) {
	case "", "flat":
		return FlatGenerator{}, nil
	case "hills":
		return HillsGenerator{Seed: seed}, nil
	}
	return nil, fmt.Errorf("unknown world generator %q", name)
}
