package wisp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StateStyle is the look of the cursor layers for one CursorKind.
type StateStyle struct {
	// RingRadius is the outer ring radius in pixels.
	RingRadius float64 `json:"ringRadius"`
	// RingWidth is the ring stroke width in pixels.
	RingWidth float64 `json:"ringWidth"`
	// DotRadius is the inner dot radius. Zero hides the dot.
	DotRadius float64 `json:"dotRadius"`
	RingColor Color   `json:"ringColor"`
	// GlowColor fills the ring. A zero alpha disables the glow.
	GlowColor Color `json:"glowColor"`
	DotColor  Color `json:"dotColor"`
	// Pulse draws an expanding secondary ring.
	Pulse bool `json:"pulse"`
}

// StyleSheet holds one style per kind.
type StyleSheet struct {
	styles [numKinds]StateStyle
}

// For returns the style for k. KindUnset and unknown kinds use the default
// style.
func (s StyleSheet) For(k CursorKind) StateStyle {
	if k == KindUnset || int(k) >= numKinds {
		k = KindDefault
	}
	return s.styles[k]
}

// Set replaces the style for k.
func (s *StyleSheet) Set(k CursorKind, st StateStyle) {
	if k == KindUnset || int(k) >= numKinds {
		return
	}
	s.styles[k] = st
}

var (
	colorAccent = Color{R: 0.55, G: 0.36, B: 0.96, A: 1}
	colorCyan   = Color{R: 0.13, G: 0.83, B: 0.93, A: 1}
	colorPink   = Color{R: 0.93, G: 0.28, B: 0.6, A: 1}
	colorAmber  = Color{R: 0.98, G: 0.75, B: 0.14, A: 1}
)

// DefaultStyleSheet returns the built-in look: Default smallest, Link mid,
// Button largest with a pulse and no dot.
func DefaultStyleSheet() StyleSheet {
	var s StyleSheet
	s.Set(KindDefault, StateStyle{
		RingRadius: 16, RingWidth: 1.5, DotRadius: 4,
		RingColor: ColorWhite.WithAlpha(0.6), DotColor: ColorWhite,
	})
	s.Set(KindLink, StateStyle{
		RingRadius: 28, RingWidth: 2, DotRadius: 3,
		RingColor: colorCyan, GlowColor: colorCyan.WithAlpha(0.15), DotColor: colorCyan,
	})
	s.Set(KindButton, StateStyle{
		RingRadius: 36, RingWidth: 2, DotRadius: 0,
		RingColor: colorAccent, GlowColor: colorAccent.WithAlpha(0.2), Pulse: true,
	})
	s.Set(KindCard, StateStyle{
		RingRadius: 32, RingWidth: 1.5, DotRadius: 3,
		RingColor: colorPink, GlowColor: colorPink.WithAlpha(0.1), DotColor: colorPink,
	})
	s.Set(KindDragging, StateStyle{
		RingRadius: 12, RingWidth: 3, DotRadius: 6,
		RingColor: colorAmber, DotColor: colorAmber,
	})
	s.Set(KindTyping, StateStyle{
		RingRadius: 6, RingWidth: 1, DotRadius: 2,
		RingColor: ColorWhite.WithAlpha(0.4), DotColor: ColorWhite,
	})
	s.Set(KindLoading, StateStyle{
		RingRadius: 22, RingWidth: 2, DotRadius: 4,
		RingColor: colorAmber.WithAlpha(0.8), DotColor: colorAmber, Pulse: true,
	})
	return s
}

const (
	transitionDuration = 0.15 // seconds to ease between state radii
	pulseDuration      = 1.0  // seconds per pulse cycle
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written through to the fields.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// NewTweenGroup tweens each field from its current value to the matching
// entry of to. Extra fields beyond 4 are ignored.
func NewTweenGroup(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	for i := 0; i < len(fields) && i < len(to) && i < 4; i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), duration, fn)
		g.fields[i] = fields[i]
		g.count++
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// styleAnimator eases the rendered radii toward the current style and runs
// the looping pulse.
type styleAnimator struct {
	ring, dot float64
	trans     *TweenGroup

	pulse      *gween.Tween
	pulsePhase float64 // 0..1 progress through the current pulse
}

// snap jumps to st without easing.
func (a *styleAnimator) snap(st StateStyle) {
	a.ring = st.RingRadius
	a.dot = st.DotRadius
	a.trans = nil
}

// retarget starts easing toward st from the current radii.
func (a *styleAnimator) retarget(st StateStyle) {
	a.trans = NewTweenGroup(
		[]*float64{&a.ring, &a.dot},
		[]float64{st.RingRadius, st.DotRadius},
		transitionDuration, ease.OutCubic,
	)
	if !st.Pulse {
		a.pulse = nil
		a.pulsePhase = 0
	}
}

// update advances the transition and, when st pulses, the pulse loop.
func (a *styleAnimator) update(dt float32, st StateStyle) {
	if a.trans != nil {
		a.trans.Update(dt)
		if a.trans.Done {
			a.trans = nil
		}
	}
	if !st.Pulse {
		return
	}
	if a.pulse == nil {
		a.pulse = gween.New(0, 1, pulseDuration, ease.OutQuad)
	}
	v, finished := a.pulse.Update(dt)
	a.pulsePhase = float64(v)
	if finished {
		a.pulse.Reset()
	}
}
