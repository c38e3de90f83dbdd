package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/oomph-ac/blockgame/input"
)

// lookStep is the look delta of one arrow key press, in the same units as mouse motion.
const lookStep = 50

// Translate returns the change an event makes to the next input frame, or nil if the event is not
// bound to anything. Terminals do not report key releases, so every key press counts for a single
// tick and holding a key relies on key repeat.
func Translate(ev tcell.Event) func(*input.Frame) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		return translateMouse(ev)
	}
	return nil
}

func translateKey(ev *tcell.EventKey) func(*input.Frame) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return func(f *input.Frame) { f.Quit = true }
	case tcell.KeyUp:
		return func(f *input.Frame) { f.LookY -= lookStep }
	case tcell.KeyDown:
		return func(f *input.Frame) { f.LookY += lookStep }
	case tcell.KeyLeft:
		return func(f *input.Frame) { f.LookX -= lookStep }
	case tcell.KeyRight:
		return func(f *input.Frame) { f.LookX += lookStep }
	case tcell.KeyRune:
	default:
		return nil
	}

	switch r := ev.Rune(); r {
	case 'w', 'W':
		return move(input.Forward)
	case 's', 'S':
		return move(input.Back)
	case 'a', 'A':
		return move(input.Left)
	case 'd', 'D':
		return move(input.Right)
	case ' ':
		return func(f *input.Frame) { f.Jump = true }
	case 'f', 'F':
		return func(f *input.Frame) { f.Break = true }
	case 'e', 'E':
		return func(f *input.Frame) { f.Place = true }
	case '[':
		return scroll(-1)
	case ']':
		return scroll(1)
	case 'q', 'Q':
		return func(f *input.Frame) { f.Quit = true }
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		slot := int(r - '1')
		return func(f *input.Frame) { f.Select = slot }
	}
	return nil
}

func translateMouse(ev *tcell.EventMouse) func(*input.Frame) {
	b := ev.Buttons()
	switch {
	case b&tcell.WheelUp != 0:
		return scroll(-1)
	case b&tcell.WheelDown != 0:
		return scroll(1)
	}
	breaking, placing := b&tcell.ButtonPrimary != 0, b&tcell.ButtonSecondary != 0
	if !breaking && !placing {
		return nil
	}
	return func(f *input.Frame) {
		f.Break = f.Break || breaking
		f.Place = f.Place || placing
	}
}

func move(k input.MoveKey) func(*input.Frame) {
	return func(f *input.Frame) { f.Move |= k }
}

func scroll(dir int) func(*input.Frame) {
	return func(f *input.Frame) { f.Scroll += dir }
}

// Pump translates the events of the screen passed and pushes them to q until ctx is cancelled or
// the screen is finalised. Events are dropped while q is full.
func Pump(ctx context.Context, s tcell.Screen, q *input.Queue) {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if update := Translate(ev); update != nil {
				q.Push(update)
			}
		}
	}
}
