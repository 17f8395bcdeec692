package wisp

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the capability probes.
const (
	EnvTouch         = "WISP_TOUCH"
	EnvReducedMotion = "WISP_REDUCED_MOTION"
	EnvHeadless      = "WISP_HEADLESS"
)

// Environment is the device capability snapshot taken once at mount. It is
// not re-evaluated: a device does not change touch capability at runtime.
type Environment struct {
	// TouchPrimary is true on devices whose primary input is touch.
	TouchPrimary bool
	// ReducedMotion disables the trail.
	ReducedMotion bool
	// PointerAvailable is false in headless runs with no pointing device.
	PointerAvailable bool
}

// DesktopEnvironment is a pointer-driven device with full motion.
var DesktopEnvironment = Environment{PointerAvailable: true}

// Active reports whether the engine should run at all. Touch-primary devices
// and environments without a pointer keep the native cursor and render
// nothing.
func (e Environment) Active() bool {
	return e.PointerAvailable && !e.TouchPrimary
}

// ProbeEnvironment detects device capabilities from the platform, then
// applies WISP_* overrides. Each env file, if given, is loaded with godotenv
// first; variables already set in the process win over file values.
func ProbeEnvironment(envFiles ...string) (Environment, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Environment{}, fmt.Errorf("load env: %w", err)
		}
	}

	env := Environment{
		TouchPrimary:     runtime.GOOS == "android" || runtime.GOOS == "ios",
		PointerAvailable: true,
	}

	var err error
	if env.TouchPrimary, err = boolOverride(EnvTouch, env.TouchPrimary); err != nil {
		return Environment{}, err
	}
	if env.ReducedMotion, err = boolOverride(EnvReducedMotion, env.ReducedMotion); err != nil {
		return Environment{}, err
	}
	headless, err := boolOverride(EnvHeadless, false)
	if err != nil {
		return Environment{}, err
	}
	if headless {
		env.PointerAvailable = false
	}
	return env, nil
}

// boolOverride returns the parsed value of key, or def when key is unset or
// empty.
func boolOverride(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("probe %s: %w", key, err)
	}
	return b, nil
}
