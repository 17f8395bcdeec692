// Package term drives a wisp engine from a tcell terminal: mouse events
// become pointer samples and frames are drawn as colored cells.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/wisp"
)

// Default cell size in world units. Terminal cells are roughly twice as tall
// as they are wide.
const (
	DefaultCellW = 8.0
	DefaultCellH = 16.0
)

const eventBuffer = 100

// Source reads tcell events on a background goroutine and hands the latest
// mouse snapshot to the engine once per tick. Keys that end the session are
// recorded so the caller's loop can stop.
type Source struct {
	screen tcell.Screen
	events chan tcell.Event

	CellW, CellH float64

	last        wisp.PointerInput
	seen        bool
	interrupted bool
	resized     bool
}

// NewSource enables mouse reporting on screen. Call Listen to start reading
// events.
func NewSource(screen tcell.Screen) *Source {
	screen.EnableMouse()
	return &Source{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		CellW:  DefaultCellW,
		CellH:  DefaultCellH,
	}
}

// Listen polls the screen on its own goroutine until the screen is finalized,
// at which point PollEvent returns nil and the goroutine exits.
func (s *Source) Listen() {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			s.deliver(ev)
		}
	}()
}

// deliver queues ev without blocking. When the buffer is full the oldest
// event is dropped, so an unpolled source never stalls the reader.
func (s *Source) deliver(ev tcell.Event) {
	for {
		select {
		case s.events <- ev:
			return
		default:
		}
		select {
		case <-s.events:
		default:
		}
	}
}

// Poll drains pending events without blocking and returns the most recent
// pointer snapshot in world units.
func (s *Source) Poll() (wisp.PointerInput, bool) {
	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			return s.last, s.seen
		}
	}
}

// Interrupted reports whether Escape or Ctrl-C was pressed.
func (s *Source) Interrupted() bool {
	return s.interrupted
}

// TakeResize reports and clears a pending terminal resize.
func (s *Source) TakeResize() bool {
	r := s.resized
	s.resized = false
	return r
}

func (s *Source) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		s.last = s.translate(ev)
		s.seen = true
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			s.interrupted = true
		}
	case *tcell.EventResize:
		s.resized = true
	}
}

// translate converts a cell-space mouse event to the center of that cell in
// world units.
func (s *Source) translate(ev *tcell.EventMouse) wisp.PointerInput {
	cx, cy := ev.Position()
	return wisp.PointerInput{
		X:       (float64(cx) + 0.5) * s.CellW,
		Y:       (float64(cy) + 0.5) * s.CellH,
		Pressed: ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0,
	}
}

// Host hides the terminal's text cursor while the engine is mounted.
type Host struct {
	Screen tcell.Screen
}

// SetCursorVisible hides or restores the terminal cursor.
func (h Host) SetCursorVisible(visible bool) {
	if visible {
		h.Screen.SetCursorStyle(tcell.CursorStyleDefault)
		return
	}
	h.Screen.HideCursor()
}
