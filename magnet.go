package wisp

// Magnet configures magnetic pull toward opted-in nodes.
type Magnet struct {
	// Radius in pixels around the element center inside which pull applies.
	Radius float64 `json:"radius"`
	// Strength in [0, 1]: 0 = no pull, 1 = pointer locked to the center.
	Strength float64 `json:"strength"`
}

// DefaultMagnet is the pull DefaultConfig uses. A zero Magnet disables
// magnetic pull.
var DefaultMagnet = Magnet{Radius: 100, Strength: 0.3}

// isMagnetic reports whether n opted in to magnetic pull.
func isMagnetic(n *Node) bool {
	return n.Cursor != nil && n.Cursor.Magnetic
}

// MagneticPull adjusts a raw pointer position toward the center of the
// nearest magnetic node at or above target. Inside the radius the pointer is
// pulled Strength of the way to the center regardless of distance; at or
// beyond the radius, or when no laid-out magnetic node exists, raw is
// returned unchanged.
func MagneticPull(raw Vec2, target *Node, m Magnet) Vec2 {
	el := target.Closest(isMagnetic)
	if el == nil {
		return raw
	}
	bounds := el.WorldBounds()
	if bounds.Empty() {
		return raw
	}
	center := bounds.Center()
	if raw.Dist(center) >= m.Radius {
		return raw
	}
	return center.Add(raw.Sub(center).Scale(1 - m.Strength))
}
