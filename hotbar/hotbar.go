package hotbar

import "github.com/oomph-ac/blockgame/world/block"

// Size is the number of slots in a hotbar.
const Size = 9

// Hotbar holds the block types a player can place and which of them is selected. An empty slot
// holds block.Air.
type Hotbar struct {
	slots    [Size]block.Type
	selected int
}

// New returns a hotbar holding grass, placed dirt and cobblestone in its first three slots. The
// first slot is selected.
func New() *Hotbar {
	h := &Hotbar{}
	h.slots[0] = block.Grass
	h.slots[1] = block.PlacedDirt
	h.slots[2] = block.Cobblestone
	return h
}

// Select selects the slot passed. Slots outside [0, Size) are ignored.
func (h *Hotbar) Select(slot int) {
	if slot >= 0 && slot < Size {
		h.selected = slot
	}
}

// Scroll moves the selection by one slot in the direction of dir, wrapping around at both ends. A
// zero dir does nothing.
func (h *Hotbar) Scroll(dir int) {
	switch {
	case dir > 0:
		h.selected = (h.selected + 1) % Size
	case dir < 0:
		h.selected = (h.selected + Size - 1) % Size
	}
}

// SelectedSlot returns the index of the selected slot.
func (h *Hotbar) SelectedSlot() int {
	return h.selected
}

// Selected returns the block type in the selected slot.
func (h *Hotbar) Selected() block.Type {
	return h.slots[h.selected]
}

// HasSelected returns true if the selected slot is not empty.
func (h *Hotbar) HasSelected() bool {
	return h.Selected() != block.Air
}

// SetSlot puts the block type passed in a slot. Invalid slots and types are ignored.
func (h *Hotbar) SetSlot(slot int, t block.Type) {
	if slot >= 0 && slot < Size && t.Valid() {
		h.slots[slot] = t
	}
}

// Slots returns a copy of every slot.
func (h *Hotbar) Slots() [Size]block.Type {
	return h.slots
}
