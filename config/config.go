// Package config loads sandbox settings from defaults, an optional file and the environment
package config

import (
	"errors"
	"time"

	"github.com/lixenwraith/echo-sandbox/parameter"
	"github.com/lixenwraith/echo-sandbox/recorder"
)

// ErrInvalidConfig marks a configuration that failed validation
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix namespaces every environment override
const EnvPrefix = "ECHO_"

// Config is the full sandbox configuration
type Config struct {
	Physics  PhysicsConfig  `toml:"physics" yaml:"physics" envPrefix:"PHYSICS_"`
	Motion   MotionConfig   `toml:"motion" yaml:"motion" envPrefix:"MOTION_"`
	Recorder RecorderConfig `toml:"recorder" yaml:"recorder" envPrefix:"RECORDER_"`
	Echo     EchoConfig     `toml:"echo" yaml:"echo" envPrefix:"SPAWN_"`
	Input    InputConfig    `toml:"input" yaml:"input" envPrefix:"INPUT_"`
	Loop     LoopConfig     `toml:"loop" yaml:"loop" envPrefix:"LOOP_"`
	Render   RenderConfig   `toml:"render" yaml:"render" envPrefix:"RENDER_"`
	Audio    AudioConfig    `toml:"audio" yaml:"audio" envPrefix:"AUDIO_"`

	Debug bool `toml:"debug" yaml:"debug" env:"DEBUG"`
}

type PhysicsConfig struct {
	GravityX          float64 `toml:"gravity_x" yaml:"gravity_x" env:"GRAVITY_X"`
	GravityY          float64 `toml:"gravity_y" yaml:"gravity_y" env:"GRAVITY_Y"`
	GravityZ          float64 `toml:"gravity_z" yaml:"gravity_z" env:"GRAVITY_Z"`
	PlayerMass        float64 `toml:"player_mass" yaml:"player_mass" env:"PLAYER_MASS"`
	PlayerRestitution float64 `toml:"player_restitution" yaml:"player_restitution" env:"PLAYER_RESTITUTION"`
}

type MotionConfig struct {
	Speed float64 `toml:"speed" yaml:"speed" env:"SPEED"`
}

// RecorderConfig sets the history horizon; the sample rate is always loop.tick_rate
type RecorderConfig struct {
	HorizonMS int `toml:"horizon_ms" yaml:"horizon_ms" env:"HORIZON_MS"`
}

type EchoConfig struct {
	Size            float64 `toml:"size" yaml:"size" env:"SIZE"`
	CloneLifetimeMS int     `toml:"clone_lifetime_ms" yaml:"clone_lifetime_ms" env:"CLONE_LIFETIME_MS"`
}

// InputConfig tunes hold synthesis and overlays key bindings
// Bindings map a key identifier to an action name; "none" unbinds
type InputConfig struct {
	HoldInitialMS int               `toml:"hold_initial_ms" yaml:"hold_initial_ms" env:"HOLD_INITIAL_MS"`
	HoldRepeatMS  int               `toml:"hold_repeat_ms" yaml:"hold_repeat_ms" env:"HOLD_REPEAT_MS"`
	Bindings      map[string]string `toml:"bindings" yaml:"bindings" env:"BINDINGS"`
}

type LoopConfig struct {
	TickRate int `toml:"tick_rate" yaml:"tick_rate" env:"TICK_RATE"`
}

type RenderConfig struct {
	ShowHUD    bool    `toml:"show_hud" yaml:"show_hud" env:"SHOW_HUD"`
	FovDegrees float64 `toml:"fov_degrees" yaml:"fov_degrees" env:"FOV_DEGREES"`
	CameraX    float64 `toml:"camera_x" yaml:"camera_x" env:"CAMERA_X"`
	CameraY    float64 `toml:"camera_y" yaml:"camera_y" env:"CAMERA_Y"`
	CameraZ    float64 `toml:"camera_z" yaml:"camera_z" env:"CAMERA_Z"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled" yaml:"enabled" env:"ENABLED"`
	MasterVolume float64 `toml:"master_volume" yaml:"master_volume" env:"MASTER_VOLUME"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			GravityX:          parameter.GravityX,
			GravityY:          parameter.GravityY,
			GravityZ:          parameter.GravityZ,
			PlayerMass:        parameter.PlayerMass,
			PlayerRestitution: parameter.PlayerRestitution,
		},
		Motion: MotionConfig{
			Speed: parameter.PlayerSpeed,
		},
		Recorder: RecorderConfig{
			HorizonMS: int(parameter.RecordHorizon / time.Millisecond),
		},
		Echo: EchoConfig{
			Size:            parameter.EchoSize,
			CloneLifetimeMS: int(parameter.CloneLifetime / time.Millisecond),
		},
		Input: InputConfig{
			HoldInitialMS: int(parameter.KeyHoldInitial / time.Millisecond),
			HoldRepeatMS:  int(parameter.KeyHoldRepeat / time.Millisecond),
		},
		Loop: LoopConfig{
			TickRate: parameter.TickRate,
		},
		Render: RenderConfig{
			ShowHUD:    true,
			FovDegrees: parameter.CameraFovDegrees,
			CameraX:    parameter.CameraX,
			CameraY:    parameter.CameraY,
			CameraZ:    parameter.CameraZ,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
		},
	}
}

// TickInterval returns the fixed simulation step
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.TickRate)
}

// RecordHorizon returns how far back the recorder remembers
func (c *Config) RecordHorizon() time.Duration {
	return time.Duration(c.Recorder.HorizonMS) * time.Millisecond
}

// RecordCapacity returns how many poses cover the horizon at one sample per tick
func (c *Config) RecordCapacity() int {
	return recorder.Capacity(c.RecordHorizon(), c.Loop.TickRate)
}

// CloneLifetime returns the wall-clock lifetime of a clone
func (c *Config) CloneLifetime() time.Duration {
	return time.Duration(c.Echo.CloneLifetimeMS) * time.Millisecond
}

// HoldTimeouts returns the initial and repeat key hold timeouts
func (c *Config) HoldTimeouts() (initial, repeat time.Duration) {
	return time.Duration(c.Input.HoldInitialMS) * time.Millisecond,
		time.Duration(c.Input.HoldRepeatMS) * time.Millisecond
}
