package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/wisp"
)

const (
	runeTrail = '•'
	runeRing  = '○'
	runePulse = '·'
	runeDot   = '●'
)

// Canvas draws wisp frames into a tcell screen, mapping world units to cells.
type Canvas struct {
	Screen       tcell.Screen
	CellW, CellH float64
}

// NewCanvas returns a canvas using the default cell size.
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{Screen: screen, CellW: DefaultCellW, CellH: DefaultCellH}
}

// Draw paints f over whatever is already on the screen. It does not call
// Show.
func (c *Canvas) Draw(f wisp.Frame) {
	for _, l := range f.Layers {
		switch l.Type {
		case wisp.LayerTrail:
			c.set(l.Center, runeTrail, l.Color)
		case wisp.LayerRing:
			c.circle(l.Center, l.Radius, runeRing, l.Color)
		case wisp.LayerPulse:
			c.circle(l.Center, l.Radius, runePulse, l.Color)
		case wisp.LayerDot:
			c.set(l.Center, runeDot, l.Color)
		case wisp.LayerLabel:
			c.label(l)
		}
	}
}

// cell maps a world point to a cell coordinate.
func (c *Canvas) cell(p wisp.Vec2) (int, int) {
	return int(math.Floor(p.X / c.CellW)), int(math.Floor(p.Y / c.CellH))
}

func (c *Canvas) set(p wisp.Vec2, r rune, col wisp.Color) {
	x, y := c.cell(p)
	w, h := c.Screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.Screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(toTcell(col)))
}

// circle plots the outline by sampling angles; enough samples that adjacent
// points never skip a cell.
func (c *Canvas) circle(center wisp.Vec2, radius float64, r rune, col wisp.Color) {
	if radius <= 0 {
		return
	}
	steps := int(math.Ceil(2*math.Pi*radius/math.Min(c.CellW, c.CellH))) * 2
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.set(wisp.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}, r, col)
	}
}

func (c *Canvas) label(l wisp.Layer) {
	x, y := c.cell(wisp.Vec2{X: l.Rect.X, Y: l.Rect.Y})
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(toTcell(l.Color))
	w, h := c.Screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, r := range []rune(" " + l.Text + " ") {
		if x+i < 0 || x+i >= w {
			continue
		}
		c.Screen.SetContent(x+i, y, r, nil, style)
	}
}

// toTcell flattens a translucent color over black.
func toTcell(col wisp.Color) tcell.Color {
	ch := func(v float64) int32 {
		v *= col.A
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int32(v * 255)
	}
	return tcell.NewRGBColor(ch(col.R), ch(col.G), ch(col.B))
}
