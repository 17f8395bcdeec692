package wisp

import (
	"math"
	"testing"
)

func TestSpringConfigDerived(t *testing.T) {
	tests := []struct {
		name      string
		cfg       SpringConfig
		wantOmega float64
		wantZeta  float64
	}{
		{"inner", DefaultInnerSpring, 40, 1},
		{"outer", DefaultOuterSpring, 20, 1},
		{"underdamped", SpringConfig{Stiffness: 100, Damping: 5, Mass: 1}, 10, 0.25},
		{"zero mass", SpringConfig{Stiffness: 100, Damping: 5}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "omega", tt.cfg.AngularFrequency(), tt.wantOmega)
			assertNear(t, "zeta", tt.cfg.DampingRatio(), tt.wantZeta)
		})
	}
}

func TestSmootherSnap(t *testing.T) {
	s := NewSmoother(DefaultInnerSpring)
	s.Snap(Vec2{10, 20})
	if s.Position() != (Vec2{10, 20}) || s.Target() != (Vec2{10, 20}) {
		t.Errorf("after Snap: pos %+v target %+v", s.Position(), s.Target())
	}
	if s.Velocity() != (Vec2{}) {
		t.Errorf("velocity = %+v, want zero", s.Velocity())
	}
	if !s.Settled(1e-9) {
		t.Error("snapped smoother should be settled")
	}
}

func TestSmootherConvergesWithoutOvershoot(t *testing.T) {
	for _, cfg := range []SpringConfig{DefaultInnerSpring, DefaultOuterSpring} {
		s := NewSmoother(cfg)
		s.SetTarget(Vec2{100, -50})
		prev := s.Position()
		for i := 0; i < 60; i++ {
			s.Step(1.0 / 60)
			p := s.Position()
			if p.X > 100+1e-6 || p.Y < -50-1e-6 {
				t.Fatalf("%+v frame %d overshot: %+v", cfg, i, p)
			}
			if p.X < prev.X-1e-9 {
				t.Fatalf("%+v frame %d moved backward: %v -> %v", cfg, i, prev.X, p.X)
			}
			prev = p
		}
		if d := s.Position().Dist(Vec2{100, -50}); d > 0.5 {
			t.Errorf("%+v: distance after 1s = %v, want < 0.5", cfg, d)
		}
	}
}

func TestSmootherInnerLeadsOuter(t *testing.T) {
	inner := NewSmoother(DefaultInnerSpring)
	outer := NewSmoother(DefaultOuterSpring)
	inner.SetTarget(Vec2{X: 100})
	outer.SetTarget(Vec2{X: 100})
	for i := 0; i < 20; i++ {
		inner.Step(1.0 / 60)
		outer.Step(1.0 / 60)
		if outer.Position().X >= inner.Position().X {
			t.Fatalf("frame %d: outer %v not behind inner %v", i, outer.Position().X, inner.Position().X)
		}
	}
}

func TestSmootherIgnoresNonPositiveDt(t *testing.T) {
	s := NewSmoother(DefaultInnerSpring)
	s.SetTarget(Vec2{X: 10})
	s.Step(0)
	s.Step(-1)
	if s.Position() != (Vec2{}) {
		t.Errorf("position = %+v, want origin", s.Position())
	}
}

func TestSmootherVariableDt(t *testing.T) {
	s := NewSmoother(DefaultOuterSpring)
	s.SetTarget(Vec2{X: 10})
	for i := 0; i < 30; i++ {
		dt := 1.0 / 60
		if i%2 == 1 {
			dt = 1.0 / 144
		}
		s.Step(dt)
	}
	if x := s.Position().X; x <= 0 || x > 10 || math.IsNaN(x) {
		t.Errorf("x = %v, want in (0, 10]", x)
	}
}
