package wisp

import "github.com/hajimehoshi/ebiten/v2"

// PointerInput is one polled pointer snapshot in world coordinates.
type PointerInput struct {
	X, Y    float64
	Pressed bool
}

// PointerSource supplies pointer snapshots once per tick. ok is false when the
// source has nothing this tick.
type PointerSource interface {
	Poll() (in PointerInput, ok bool)
}

// Host owns the native pointer. The engine hides it while mounted.
type Host interface {
	SetCursorVisible(visible bool)
}

// EbitenSource polls the mouse through ebiten. Any of the three buttons
// counts as pressed.
type EbitenSource struct{}

// Poll reads the cursor position and button state.
func (EbitenSource) Poll() (PointerInput, bool) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return PointerInput{X: float64(mx), Y: float64(my), Pressed: pressed}, true
}

// EbitenHost hides and restores the window's native cursor.
type EbitenHost struct{}

// SetCursorVisible switches between ebiten's hidden and visible cursor modes.
func (EbitenHost) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}
