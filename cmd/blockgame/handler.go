package main

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blockgame/audio"
	"github.com/oomph-ac/blockgame/session"
	"github.com/oomph-ac/blockgame/world/block"
)

// soundHandler plays a sound whenever the player breaks or places a block.
type soundHandler struct {
	session.NopHandler
	sounds *audio.Manager
}

func (h soundHandler) HandleBreak(cube.Pos, block.Type) {
	h.sounds.Play(audio.SoundBreak)
}

func (h soundHandler) HandlePlace(cube.Pos, block.Type) {
	h.sounds.Play(audio.SoundPlace)
}
