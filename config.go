package wisp

import (
	"encoding/json"
	"fmt"
)

// Config tunes the engine. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	Magnet Magnet       `json:"magnet"`
	Inner  SpringConfig `json:"inner"`
	Outer  SpringConfig `json:"outer"`
	Styles StyleSheet   `json:"-"`
	// Debug logs state transitions and frame timing to stderr.
	Debug bool `json:"debug"`
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return Config{
		Magnet: DefaultMagnet,
		Inner:  DefaultInnerSpring,
		Outer:  DefaultOuterSpring,
		Styles: DefaultStyleSheet(),
	}
}

// configFile is the JSON shape accepted by LoadConfig.
type configFile struct {
	Magnet *Magnet                    `json:"magnet"`
	Inner  *SpringConfig              `json:"inner"`
	Outer  *SpringConfig              `json:"outer"`
	Styles map[string]json.RawMessage `json:"styles"`
	Debug  bool                       `json:"debug"`
}

// LoadConfig parses JSON and overlays it onto DefaultConfig. Fields absent
// from the document keep their defaults, including individual style fields.
// Style keys are state tags such as "link" or "button".
//
//	{"magnet": {"radius": 80}, "styles": {"button": {"ringRadius": 40}}}
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()

	f := configFile{
		Magnet: &cfg.Magnet,
		Inner:  &cfg.Inner,
		Outer:  &cfg.Outer,
	}
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Debug = f.Debug

	for tag, raw := range f.Styles {
		kind, ok := lookupKind(tag)
		if !ok {
			return Config{}, fmt.Errorf("parse config: unknown state %q", tag)
		}
		st := cfg.Styles.For(kind)
		if err := json.Unmarshal(raw, &st); err != nil {
			return Config{}, fmt.Errorf("parse config: style %q: %w", tag, err)
		}
		cfg.Styles.Set(kind, st)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports tuning that cannot produce a working cursor.
func (c Config) Validate() error {
	if c.Magnet.Radius < 0 {
		return fmt.Errorf("magnet radius %v is negative", c.Magnet.Radius)
	}
	if c.Magnet.Strength < 0 || c.Magnet.Strength > 1 {
		return fmt.Errorf("magnet strength %v outside [0, 1]", c.Magnet.Strength)
	}
	for name, s := range map[string]SpringConfig{"inner": c.Inner, "outer": c.Outer} {
		if s.Stiffness <= 0 || s.Mass <= 0 || s.Damping < 0 {
			return fmt.Errorf("%s spring %+v: stiffness and mass must be positive", name, s)
		}
	}
	return nil
}

// lookupKind matches a canonical state tag exactly, for config keys where a
// typo should be reported rather than defaulted.
func lookupKind(tag string) (CursorKind, bool) {
	for k := KindDefault; int(k) < numKinds; k++ {
		if kindNames[k] == tag {
			return k, true
		}
	}
	return KindUnset, false
}

// UnmarshalJSON accepts {"r":..,"g":..,"b":..,"a":..}.
func (c *Color) UnmarshalJSON(data []byte) error {
	v := struct {
		R, G, B, A *float64
	}{&c.R, &c.G, &c.B, &c.A}
	return json.Unmarshal(data, &v)
}
