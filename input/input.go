package input

// MoveKey is a set of directional movement keys.
type MoveKey uint8

// Movement keys, relative to the direction the player is looking.
const (
	// Forward moves along the view direction.
	Forward MoveKey = 1 << iota
	// Back moves against the view direction.
	Back
	// Left strafes to the left.
	Left
	// Right strafes to the right.
	Right
)

// Has returns true if every key in k2 is part of k.
func (k MoveKey) Has(k2 MoveKey) bool {
	return k&k2 == k2
}

// NoSlot is the value of Frame.Select when no hotbar slot was selected.
const NoSlot = -1

// Frame is the input sampled for a single tick.
type Frame struct {
	// Move holds the movement keys that are active.
	Move MoveKey
	// Jump is true if the player should jump.
	Jump bool
	// LookX and LookY are the look deltas since the last frame. Positive LookX turns right and
	// positive LookY looks down.
	LookX, LookY float32
	// Break and Place are true if the break and place actions are active.
	Break, Place bool
	// Select is the hotbar slot to select, or NoSlot.
	Select int
	// Scroll is the number of slots to scroll the hotbar by. Only its sign is used.
	Scroll int
	// Quit is true if the session should end.
	Quit bool
}

// Empty returns a frame with no input.
func Empty() Frame {
	return Frame{Select: NoSlot}
}

// Source supplies a frame of input once per tick.
type Source interface {
	// Poll returns the input for the next tick.
	Poll() Frame
}

// Replay is a Source that returns a fixed list of frames, then asks the session to quit.
type Replay struct {
	frames []Frame
}

// NewReplay returns a Replay of the frames passed.
func NewReplay(frames ...Frame) *Replay {
	return &Replay{frames: frames}
}

// Poll ...
func (r *Replay) Poll() Frame {
	if len(r.frames) == 0 {
		f := Empty()
		f.Quit = true
		return f
	}
	f := r.frames[0]
	r.frames = r.frames[1:]
	return f
}
