package wisp

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring by its physical parameters.
type SpringConfig struct {
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
	Mass      float64 `json:"mass"`
}

var (
	// DefaultInnerSpring drives the dot: fast, critically damped.
	DefaultInnerSpring = SpringConfig{Stiffness: 800, Damping: 40, Mass: 0.5}
	// DefaultOuterSpring drives the ring: slower, critically damped.
	DefaultOuterSpring = SpringConfig{Stiffness: 400, Damping: 40, Mass: 1}
)

// AngularFrequency returns sqrt(k/m).
func (c SpringConfig) AngularFrequency() float64 {
	if c.Mass <= 0 || c.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio returns c / (2 sqrt(k m)). 1 is critically damped.
func (c SpringConfig) DampingRatio() float64 {
	km := c.Stiffness * c.Mass
	if km <= 0 {
		return 0
	}
	return c.Damping / (2 * math.Sqrt(km))
}

// Smoother turns a discrete target into continuous motion with one spring
// per axis.
type Smoother struct {
	cfg    SpringConfig
	spring harmonica.Spring
	dt     float64

	pos    Vec2
	vel    Vec2
	target Vec2
}

// NewSmoother creates a smoother at rest at the origin.
func NewSmoother(cfg SpringConfig) *Smoother {
	return &Smoother{cfg: cfg}
}

// SetTarget updates the position the spring pulls toward.
func (s *Smoother) SetTarget(p Vec2) {
	s.target = p
}

// Target returns the current target.
func (s *Smoother) Target() Vec2 {
	return s.target
}

// Snap places the smoother at p, at rest, with p as its target.
func (s *Smoother) Snap(p Vec2) {
	s.pos = p
	s.target = p
	s.vel = Vec2{}
}

// Step advances the spring by dt seconds. The underlying coefficients are
// rebuilt only when dt changes.
func (s *Smoother) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt != s.dt {
		s.spring = harmonica.NewSpring(dt, s.cfg.AngularFrequency(), s.cfg.DampingRatio())
		s.dt = dt
	}
	s.pos.X, s.vel.X = s.spring.Update(s.pos.X, s.vel.X, s.target.X)
	s.pos.Y, s.vel.Y = s.spring.Update(s.pos.Y, s.vel.Y, s.target.Y)
}

// Position returns the current smoothed position.
func (s *Smoother) Position() Vec2 {
	return s.pos
}

// Velocity returns the current velocity in pixels per second.
func (s *Smoother) Velocity() Vec2 {
	return s.vel
}

// Settled reports whether the smoother is within eps of its target and moving
// slower than eps pixels per second.
func (s *Smoother) Settled(eps float64) bool {
	return s.pos.Dist(s.target) <= eps && s.vel.Len() <= eps
}
