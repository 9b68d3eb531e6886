package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/echo-sandbox/input"
	"github.com/lixenwraith/echo-sandbox/parameter"
)

// Validate checks every field; all violations are reported together
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	for name, v := range map[string]float64{
		"physics.gravity_x": c.Physics.GravityX,
		"physics.gravity_y": c.Physics.GravityY,
		"physics.gravity_z": c.Physics.GravityZ,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad("%s must be finite", name)
		}
	}
	if !(c.Physics.PlayerMass > 0) || math.IsInf(c.Physics.PlayerMass, 0) {
		bad("physics.player_mass must be positive, got %v", c.Physics.PlayerMass)
	}
	if c.Physics.PlayerRestitution < 0 || c.Physics.PlayerRestitution > 1 {
		bad("physics.player_restitution must be within [0, 1], got %v", c.Physics.PlayerRestitution)
	}

	if c.Motion.Speed < 0 || math.IsNaN(c.Motion.Speed) || math.IsInf(c.Motion.Speed, 0) {
		bad("motion.speed must be finite and non-negative, got %v", c.Motion.Speed)
	}

	if c.Recorder.HorizonMS <= 0 {
		bad("recorder.horizon_ms must be positive, got %d", c.Recorder.HorizonMS)
	}

	if !(c.Echo.Size > 0) {
		bad("echo.size must be positive, got %v", c.Echo.Size)
	}
	if c.Echo.CloneLifetimeMS <= 0 {
		bad("echo.clone_lifetime_ms must be positive, got %d", c.Echo.CloneLifetimeMS)
	}

	if c.Input.HoldRepeatMS <= 0 {
		bad("input.hold_repeat_ms must be positive, got %d", c.Input.HoldRepeatMS)
	}
	if c.Input.HoldInitialMS < c.Input.HoldRepeatMS {
		bad("input.hold_initial_ms (%d) must not be shorter than hold_repeat_ms (%d)", c.Input.HoldInitialMS, c.Input.HoldRepeatMS)
	}
	for key, action := range c.Input.Bindings {
		if _, err := input.ParseAction(action); err != nil {
			bad("input.bindings %q: %v", key, err)
		}
	}

	if c.Loop.TickRate < 1 || c.Loop.TickRate > parameter.MaxTickRate {
		bad("loop.tick_rate must be within [1, %d], got %d", parameter.MaxTickRate, c.Loop.TickRate)
	}

	if c.Render.FovDegrees <= 0 || c.Render.FovDegrees >= 180 {
		bad("render.fov_degrees must be within (0, 180), got %v", c.Render.FovDegrees)
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		bad("audio.master_volume must be within [0, 1], got %v", c.Audio.MasterVolume)
	}

	return errors.Join(errs...)
}
