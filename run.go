package wisp

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	// DrawScene paints the page under the cursor. Optional.
	DrawScene func(screen *ebiten.Image)
	// Source overrides the pointer source. Defaults to EbitenSource.
	Source PointerSource
}

// game adapts an Engine to ebiten.Game.
type game struct {
	engine *Engine
	cfg    RunConfig
}

func (g *game) Update() error {
	g.engine.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	if g.cfg.DrawScene != nil {
		g.cfg.DrawScene(screen)
	}
	g.engine.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window, mounts the engine against ebiten's mouse and native
// cursor, and runs the loop until the window closes. The engine is unmounted
// on return, restoring the native cursor.
func Run(engine *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	src := cfg.Source
	if src == nil {
		src = EbitenSource{}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	engine.Mount(EbitenHost{}, src)
	defer engine.Unmount()

	return ebiten.RunGame(&game{engine: engine, cfg: cfg})
}
