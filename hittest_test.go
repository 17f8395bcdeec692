package wisp

import (
	"math"
	"testing"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	square := []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	reversed := []Vec2{{0, 100}, {100, 100}, {100, 0}, {0, 0}}

	tests := []struct {
		name   string
		points []Vec2
		x, y   float64
		want   bool
	}{
		{"inside", square, 50, 50, true},
		{"on edge", square, 0, 50, true},
		{"outside", square, -1, 50, false},
		{"reversed winding inside", reversed, 50, 50, true},
		{"reversed winding outside", reversed, 150, 50, false},
		{"degenerate", square[:2], 50, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := HitPolygon{Points: tt.points}
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNodeContainsLocal(t *testing.T) {
	box := NewBox("box", 100, 50)
	if !nodeContainsLocal(box, 50, 25) {
		t.Error("box should contain its center")
	}
	if nodeContainsLocal(box, 101, 25) {
		t.Error("box should not contain a point past its width")
	}

	container := NewContainer("c")
	if nodeContainsLocal(container, 0, 0) {
		t.Error("a container without a box is not hit-testable")
	}
	container.HitShape = HitCircle{Radius: 10}
	if !nodeContainsLocal(container, 5, 0) {
		t.Error("HitShape should make a container hit-testable")
	}
}

// --- HitTest ---

func TestHitTest_TopmostNode(t *testing.T) {
	root := NewContainer("root")
	bottom := NewBox("bottom", 100, 100)
	top := NewBox("top", 100, 100)
	root.AddChildren(bottom, top)

	if got := HitTest(root, 50, 50); got != top {
		t.Errorf("HitTest = %v, want top", nodeName(got))
	}
}

func TestHitTest_DeepestDescendant(t *testing.T) {
	root := NewContainer("root")
	btn := NewButton("btn", "Go", 100, 40)
	icon := NewBox("icon", 20, 20)
	icon.SetPosition(10, 10)
	root.AddChild(btn)
	btn.AddChild(icon)

	if got := HitTest(root, 15, 15); got != icon {
		t.Errorf("HitTest = %v, want icon", nodeName(got))
	}
	if got := HitTest(root, 80, 30); got != btn {
		t.Errorf("HitTest = %v, want btn", nodeName(got))
	}
}

func TestHitTest_SkipsInvisible(t *testing.T) {
	root := NewContainer("root")
	bottom := NewBox("bottom", 100, 100)
	top := NewBox("top", 100, 100)
	top.Visible = false
	root.AddChildren(bottom, top)

	if got := HitTest(root, 50, 50); got != bottom {
		t.Errorf("HitTest = %v, want bottom", nodeName(got))
	}
}

func TestHitTest_SkipsNonInteractableSubtree(t *testing.T) {
	root := NewContainer("root")
	bottom := NewBox("bottom", 100, 100)
	overlay := NewContainer("overlay")
	overlay.Interactable = false
	overlay.AddChild(NewBox("inner", 100, 100))
	root.AddChildren(bottom, overlay)

	if got := HitTest(root, 50, 50); got != bottom {
		t.Errorf("HitTest = %v, want bottom", nodeName(got))
	}
}

func TestHitTest_RespectsZIndex(t *testing.T) {
	root := NewContainer("root")
	a := NewBox("a", 100, 100)
	b := NewBox("b", 100, 100)
	root.AddChildren(a, b)
	a.SetZIndex(10)

	if got := HitTest(root, 50, 50); got != a {
		t.Errorf("HitTest = %v, want a", nodeName(got))
	}
}

func TestHitTest_Miss(t *testing.T) {
	root := NewContainer("root")
	root.AddChild(NewBox("box", 10, 10))
	if got := HitTest(root, 500, 500); got != nil {
		t.Errorf("HitTest = %v, want nil", nodeName(got))
	}
	if got := HitTest(nil, 0, 0); got != nil {
		t.Error("HitTest on nil root should be nil")
	}
}

func TestHitTest_TransformedNode(t *testing.T) {
	root := NewContainer("root")
	box := NewBox("box", 10, 10)
	box.SetPosition(200, 100)
	box.SetScale(2, 2)
	root.AddChild(box)

	if got := HitTest(root, 215, 115); got != box {
		t.Errorf("HitTest = %v, want box", nodeName(got))
	}
	if got := HitTest(root, 195, 105); got != nil {
		t.Errorf("HitTest = %v, want nil", nodeName(got))
	}
}

func TestHitTest_RotatedNode(t *testing.T) {
	root := NewContainer("root")
	box := NewBox("box", 100, 10)
	box.SetRotation(math.Pi / 2) // now extends down the +Y axis
	root.AddChild(box)

	if got := HitTest(root, -5, 50); got != box {
		t.Errorf("HitTest = %v, want box", nodeName(got))
	}
	if got := HitTest(root, 50, 5); got != nil {
		t.Errorf("HitTest = %v, want nil", nodeName(got))
	}
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}
