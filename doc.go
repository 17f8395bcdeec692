// Package wisp is a pointer interaction engine for [Ebitengine] and other 2D
// toolkits: a custom cursor made of a spring-smoothed outer ring, a faster
// inner dot, a short fading trail and a state label that reacts to what the
// pointer is over.
//
// # Quick start
//
// Build a tree of [Node] values describing the interactive page, then hand it
// to an [Engine] and [Run]:
//
//	root := wisp.NewContainer("page")
//	root.AddChild(wisp.NewAnchor("about", "About me", 120, 24))
//	root.AddChild(wisp.NewButton("hire", "Hire me", 140, 40).
//		SetHint(wisp.Hint{Magnetic: true}))
//
//	env, err := wisp.ProbeEnvironment()
//	if err != nil { ... }
//	engine := wisp.NewEngine(root, wisp.DefaultConfig(), env)
//	wisp.Run(engine, wisp.RunConfig{Title: "Portfolio", Width: 960, Height: 600})
//
// For full control, call [Engine.Mount] yourself and drive [Engine.Update] and
// [Engine.Draw] from your own ebiten.Game.
//
// # Participation
//
// Any node can take part by attaching a [Hint]: an explicit state override,
// a label override, a magnetic opt-in, or a link/button/card role marker.
// Anchors, buttons and text inputs are classified from their [ElementType]
// without a hint.
//
// # Capabilities
//
// [ProbeEnvironment] is read once. On touch-primary devices, or without a
// pointer, the engine never mounts: the native cursor stays and nothing is
// drawn. Reduced motion disables the trail.
//
// # Backends
//
// The root package draws with ebiten. The term package drives the same
// engine from a tcell terminal, and the ecs sub-module forwards cursor events
// into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package wisp
