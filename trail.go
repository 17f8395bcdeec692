package wisp

const (
	// TrailLength is the number of recent raw positions kept.
	TrailLength = 5
	// TrailLifetime is how long, in seconds, a sample stays in the trail.
	TrailLifetime = 0.25
)

// trailPoint is one buffered sample and how long ago it was pushed.
type trailPoint struct {
	pos Vec2
	age float64
}

// Trail is a fixed-capacity ring of recent raw pointer positions, most recent
// first. It never grows: once full, each push drops the oldest entry.
type Trail struct {
	points  [TrailLength]trailPoint
	head    int // index of the most recent entry
	count   int
	enabled bool
}

// NewTrail creates a trail. A disabled trail ignores pushes, which is how
// reduced motion turns the effect off.
func NewTrail(enabled bool) *Trail {
	return &Trail{enabled: enabled, head: TrailLength - 1}
}

// Enabled reports whether pushes are recorded.
func (t *Trail) Enabled() bool {
	return t.enabled
}

// Push records p as the most recent entry.
func (t *Trail) Push(p Vec2) {
	if !t.enabled {
		return
	}
	t.head = (t.head + 1) % TrailLength
	t.points[t.head] = trailPoint{pos: p}
	if t.count < TrailLength {
		t.count++
	}
}

// Reset drops every entry.
func (t *Trail) Reset() {
	t.points = [TrailLength]trailPoint{}
	t.head = TrailLength - 1
	t.count = 0
}

// Len returns the number of buffered entries.
func (t *Trail) Len() int {
	return t.count
}

// At returns entry i, where 0 is the most recent. Panics if i is out of range.
func (t *Trail) At(i int) Vec2 {
	return t.entry(i).pos
}

// Age returns how many seconds ago entry i was pushed.
func (t *Trail) Age(i int) float64 {
	return t.entry(i).age
}

func (t *Trail) entry(i int) *trailPoint {
	if i < 0 || i >= t.count {
		panic("wisp: trail index out of range")
	}
	return &t.points[(t.head-i+TrailLength)%TrailLength]
}

// Points returns a copy of the buffered positions, most recent first.
func (t *Trail) Points() []Vec2 {
	out := make([]Vec2, t.count)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Decay ages every entry by dt seconds and drops entries older than
// TrailLifetime from the tail. A resting pointer's trail empties this way.
func (t *Trail) Decay(dt float64) {
	for i := 0; i < t.count; i++ {
		t.entry(i).age += dt
	}
	// Entries age in push order, so expired ones are always at the tail.
	for t.count > 0 && t.entry(t.count-1).age > TrailLifetime {
		t.count--
	}
}

// TrailWeight returns the size and opacity factor for entry i: 1 for the most
// recent, strictly decreasing toward the oldest.
func TrailWeight(i int) float64 {
	return lerp(1, 0.2, float64(i)/float64(TrailLength))
}
