package block

import (
	"image/color"

	"github.com/ethaniccc/float32-cube/cube"
)

// Type is the tag stored in every cell of a world. Air is the only type that is not solid.
type Type uint8

const (
	Air Type = iota
	Grass
	Dirt
	Cobblestone
	// PlacedDirt is dirt put down by a player. It never turns into grass, even when exposed.
	PlacedDirt

	typeCount
)

// Texture identifiers returned by Type.Texture.
const (
	TextureGrassTop    = "grass_top"
	TextureGrassSide   = "grass_side"
	TextureDirt        = "dirt"
	TextureCobblestone = "cobblestone"
)

var typeNames = [typeCount]string{
	Air:         "air",
	Grass:       "grass",
	Dirt:        "dirt",
	Cobblestone: "cobblestone",
	PlacedDirt:  "placed_dirt",
}

// faceTextures maps a type to its textures, indexed by cube.Face.
var faceTextures = [typeCount][6]string{
	Grass: {
		cube.FaceDown:  TextureDirt,
		cube.FaceUp:    TextureGrassTop,
		cube.FaceNorth: TextureGrassSide,
		cube.FaceSouth: TextureGrassSide,
		cube.FaceWest:  TextureGrassSide,
		cube.FaceEast:  TextureGrassSide,
	},
	Dirt:        uniform(TextureDirt),
	PlacedDirt:  uniform(TextureDirt),
	Cobblestone: uniform(TextureCobblestone),
}

var colours = [typeCount]color.RGBA{
	Grass:       {R: 102, G: 204, B: 51, A: 255},
	Dirt:        {R: 153, G: 102, B: 51, A: 255},
	PlacedDirt:  {R: 153, G: 102, B: 51, A: 255},
	Cobblestone: {R: 102, G: 102, B: 102, A: 255},
}

func uniform(tex string) [6]string {
	return [6]string{tex, tex, tex, tex, tex, tex}
}

// Types returns every valid block type, Air included.
func Types() []Type {
	return []Type{Air, Grass, Dirt, Cobblestone, PlacedDirt}
}

// Valid returns true if t is one of the known block types.
func (t Type) Valid() bool {
	return t < typeCount
}

// Solid returns true if t occupies its cell.
func (t Type) Solid() bool {
	return t != Air && t.Valid()
}

// String ...
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return typeNames[t]
}

// Texture returns the texture identifier drawn on the face passed. An empty string is returned for Air.
func (t Type) Texture(face cube.Face) string {
	if !t.Valid() || int(face) < 0 || int(face) >= 6 {
		return ""
	}
	return faceTextures[t][face]
}

// Colour returns a flat swatch colour for the type. Air is fully transparent.
func (t Type) Colour() color.RGBA {
	if !t.Valid() {
		return color.RGBA{}
	}
	return colours[t]
}
