package wisp

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LayerType identifies the kind of draw instruction in a Frame.
type LayerType uint8

const (
	LayerTrail LayerType = iota // filled circle at a buffered raw position
	LayerGlow                   // filled circle behind the ring
	LayerPulse                  // expanding secondary ring
	LayerRing                   // outer ring stroke at the outer position
	LayerDot                    // filled inner dot at the inner position
	LayerLabel                  // pill background plus text below the ring
)

const (
	// MaxLabelRunes caps label text length.
	MaxLabelRunes = 24

	trailBaseRadius = 3.0
	trailBaseAlpha  = 0.5
	pulseGrowth     = 0.5 // pulse ring grows to (1 + pulseGrowth) * ring radius
	labelGap        = 8.0
	labelPadX       = 6.0
	labelHeight     = 16.0
	labelCharWidth  = 6.0 // ebitenutil debug font advance
)

var labelBackground = Color{R: 0.08, G: 0.08, B: 0.1, A: 0.85}

// Layer is one draw instruction. Width is the stroke width; zero means a
// filled shape.
type Layer struct {
	Type   LayerType
	Center Vec2
	Radius float64
	Width  float64
	Color  Color
	// Label only.
	Text string
	Rect Rect
}

// Frame is the ordered list of layers for one frame, in paint order.
type Frame struct {
	Layers []Layer
}

// Count returns the number of layers of type t.
func (f Frame) Count(t LayerType) int {
	n := 0
	for i := range f.Layers {
		if f.Layers[i].Type == t {
			n++
		}
	}
	return n
}

// Find returns the first layer of type t.
func (f Frame) Find(t LayerType) (Layer, bool) {
	for i := range f.Layers {
		if f.Layers[i].Type == t {
			return f.Layers[i], true
		}
	}
	return Layer{}, false
}

// Layout computes the layers for the current state without drawing. An
// unmounted engine, or one that has not yet seen the pointer, lays out
// nothing.
func (e *Engine) Layout() Frame {
	var f Frame
	if !e.mounted || !e.hasSample {
		return f
	}
	st := e.cfg.Styles.For(e.state.Kind)
	inner, outer := e.inner.Position(), e.outer.Position()

	// Oldest first so the newest particle paints on top.
	for i := e.trail.Len() - 1; i >= 0; i-- {
		w := TrailWeight(i)
		f.Layers = append(f.Layers, Layer{
			Type:   LayerTrail,
			Center: e.trail.At(i),
			Radius: trailBaseRadius * w,
			Color:  st.RingColor.WithAlpha(trailBaseAlpha * w),
		})
	}

	if st.GlowColor.A > 0 {
		f.Layers = append(f.Layers, Layer{Type: LayerGlow, Center: outer, Radius: e.anim.ring, Color: st.GlowColor})
	}
	if st.Pulse && e.anim.pulse != nil {
		p := e.anim.pulsePhase
		f.Layers = append(f.Layers, Layer{
			Type:   LayerPulse,
			Center: outer,
			Radius: e.anim.ring * (1 + pulseGrowth*p),
			Width:  st.RingWidth,
			Color:  st.RingColor.WithAlpha(1 - p),
		})
	}
	f.Layers = append(f.Layers, Layer{
		Type: LayerRing, Center: outer, Radius: e.anim.ring, Width: st.RingWidth, Color: st.RingColor,
	})
	if st.DotRadius > 0 {
		f.Layers = append(f.Layers, Layer{Type: LayerDot, Center: inner, Radius: e.anim.dot, Color: st.DotColor})
	}

	if text := labelText(e.state.Label); text != "" {
		w := float64(len([]rune(text)))*labelCharWidth + 2*labelPadX
		f.Layers = append(f.Layers, Layer{
			Type:  LayerLabel,
			Text:  text,
			Color: labelBackground,
			Rect: Rect{
				X:      outer.X - w/2,
				Y:      outer.Y + e.anim.ring + labelGap,
				Width:  w,
				Height: labelHeight,
			},
		})
	}
	return f
}

// labelText upper-cases and caps a label.
func labelText(label string) string {
	label = strings.ToUpper(strings.TrimSpace(label))
	if r := []rune(label); len(r) > MaxLabelRunes {
		label = string(r[:MaxLabelRunes])
	}
	return label
}

// Draw lays out the current frame and draws it onto screen.
func (e *Engine) Draw(screen *ebiten.Image) {
	DrawFrame(screen, e.Layout())
}

// DrawFrame draws f onto screen with anti-aliased vector shapes.
func DrawFrame(screen *ebiten.Image, f Frame) {
	for i := range f.Layers {
		l := &f.Layers[i]
		cx, cy := float32(l.Center.X), float32(l.Center.Y)
		switch l.Type {
		case LayerTrail, LayerGlow, LayerDot:
			if l.Radius <= 0 {
				continue
			}
			vector.DrawFilledCircle(screen, cx, cy, float32(l.Radius), l.Color.toRGBA(), true)
		case LayerPulse, LayerRing:
			if l.Radius <= 0 {
				continue
			}
			vector.StrokeCircle(screen, cx, cy, float32(l.Radius), float32(l.Width), l.Color.toRGBA(), true)
		case LayerLabel:
			r := l.Rect
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), l.Color.toRGBA(), true)
			ebitenutil.DebugPrintAt(screen, l.Text, int(r.X+labelPadX), int(r.Y))
		}
	}
}
