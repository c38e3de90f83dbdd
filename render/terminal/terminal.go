package terminal

import (
	"fmt"
	"math"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/gdamore/tcell/v2"
	"github.com/oomph-ac/blockgame/render"
	"github.com/oomph-ac/blockgame/world"
	"github.com/oomph-ac/blockgame/world/block"
)

// column is the highest solid block drawn in a grid column during a frame.
type column struct {
	y  int
	t  block.Type
	ok bool
}

// Renderer draws a top-down map of the world around the player on a terminal screen. Every column
// shows its highest block, brighter the higher it is. The bottom two rows hold the hotbar and the
// debug state of the tick.
type Renderer struct {
	screen tcell.Screen

	view render.View
	tops [world.Size][world.Size]column
}

// New returns a Renderer drawing to the screen passed. The screen must already be initialised.
func New(screen tcell.Screen) *Renderer {
	screen.HideCursor()
	return &Renderer{screen: screen}
}

// BeginFrame ...
func (r *Renderer) BeginFrame(v render.View) {
	r.view = v
	r.tops = [world.Size][world.Size]column{}
}

// DrawBlock ...
func (r *Renderer) DrawBlock(t block.Type, pos cube.Pos) {
	if !world.InBounds(pos) {
		return
	}
	c := &r.tops[pos.X()][pos.Z()]
	if !c.ok || pos.Y() >= c.y {
		*c = column{y: pos.Y(), t: t, ok: true}
	}
}

// EndFrame ...
func (r *Renderer) EndFrame() {
	s := r.screen
	s.Clear()

	w, h := s.Size()
	mapH := h - 2
	if w <= 0 || mapH <= 0 {
		s.Show()
		return
	}
	cx, cy := w/2, mapH/2
	player := world.VecToGrid(r.view.Eye)

	for sy := 0; sy < mapH; sy++ {
		for sx := 0; sx < w; sx++ {
			// Grid Z grows away from the viewer, which is up on the screen.
			gx, gz := player.X()+sx-cx, player.Z()-(sy-cy)
			if gx < 0 || gx >= world.Size || gz < 0 || gz >= world.Size {
				continue
			}
			c := r.tops[gx][gz]
			if !c.ok {
				continue
			}
			style := columnStyle(c)
			if t := r.view.Target; t.Hit && t.Target.X() == gx && t.Target.Z() == gz {
				style = style.Reverse(true)
			}
			s.SetContent(sx, sy, glyph(c.t), nil, style)
		}
	}

	arrow, dx, dy := facing(r.view.Yaw)
	s.SetContent(cx, cy, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	if ax, ay := cx+dx, cy+dy; ax >= 0 && ax < w && ay >= 0 && ay < mapH {
		s.SetContent(ax, ay, arrow, nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	r.drawHotbar(0, h-2)
	drawText(s, 0, h-1, r.view.Debug, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	s.Show()
}

func (r *Renderer) drawHotbar(x, y int) {
	for i, t := range r.view.Hotbar {
		name := "-"
		if t.Solid() {
			name = t.String()
		}
		label := fmt.Sprintf(" %d:%s ", i+1, name)
		style := tcell.StyleDefault
		if i == r.view.Selected {
			label = fmt.Sprintf("[%d:%s]", i+1, name)
			style = style.Bold(true)
		}
		x += drawText(r.screen, x, y, label, style)
	}
}

// columnStyle colours a column after its top block, darker the lower the block is.
func columnStyle(c column) tcell.Style {
	col := c.t.Colour()
	f := 0.4 + 0.6*float64(c.y+1)/float64(world.Size)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(float64(col.R)*f),
		int32(float64(col.G)*f),
		int32(float64(col.B)*f),
	))
}

func glyph(t block.Type) rune {
	switch t {
	case block.Grass:
		return '"'
	case block.Dirt, block.PlacedDirt:
		return ':'
	case block.Cobblestone:
		return '#'
	}
	return '?'
}

var arrows = [8]struct {
	r      rune
	dx, dy int
}{
	{'↑', 0, -1}, {'↗', 1, -1}, {'→', 1, 0}, {'↘', 1, 1},
	{'↓', 0, 1}, {'↙', -1, 1}, {'←', -1, 0}, {'↖', -1, -1},
}

// facing returns the arrow for the yaw passed and the screen offset it is drawn at. A yaw of zero
// faces up the screen and yaw grows clockwise.
func facing(yaw float32) (rune, int, int) {
	octant := int(math.Round(float64(yaw)/45)) % 8
	if octant < 0 {
		octant += 8
	}
	a := arrows[octant]
	return a.r, a.dx, a.dy
}

// drawText draws s starting at (x, y) and returns the number of cells used.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	n := 0
	for _, ch := range text {
		s.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}
