package wisp

// InjectSource is a PointerSource fed by synthetic events, one per Poll. It
// is how scripts and tests drive the engine without a real device. Once the
// queue drains, the last position and button state repeat.
type InjectSource struct {
	queue []PointerInput
	last  PointerInput
	seen  bool
}

// NewInjectSource returns an empty source.
func NewInjectSource() *InjectSource {
	return &InjectSource{}
}

// Move queues a pointer move to (x, y), keeping the current button state.
func (s *InjectSource) Move(x, y float64) {
	s.queue = append(s.queue, PointerInput{X: x, Y: y, Pressed: s.tail().Pressed})
}

// Press queues a button press at (x, y).
func (s *InjectSource) Press(x, y float64) {
	s.queue = append(s.queue, PointerInput{X: x, Y: y, Pressed: true})
}

// Release queues a button release at (x, y).
func (s *InjectSource) Release(x, y float64) {
	s.queue = append(s.queue, PointerInput{X: x, Y: y, Pressed: false})
}

// Sweep queues a linear move from (fromX, fromY) to (toX, toY) spread over
// frames samples, ending exactly at the destination. Minimum frames is 1.
func (s *InjectSource) Sweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued events.
func (s *InjectSource) Pending() int {
	return len(s.queue)
}

// Position returns the last polled position.
func (s *InjectSource) Position() (x, y float64) {
	return s.last.X, s.last.Y
}

// Poll pops one queued event. With an empty queue it repeats the last event,
// or reports nothing if no event was ever queued.
func (s *InjectSource) Poll() (PointerInput, bool) {
	if len(s.queue) == 0 {
		return s.last, s.seen
	}
	evt := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	s.last = evt
	s.seen = true
	return evt, true
}

// tail returns the most recently queued event, or the last polled one.
func (s *InjectSource) tail() PointerInput {
	if len(s.queue) > 0 {
		return s.queue[len(s.queue)-1]
	}
	return s.last
}
