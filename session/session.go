// Package session assembles one sandbox run: scene, physics, recorder, echoes and the loop
package session

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/echo-sandbox/audio"
	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/config"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/echo"
	"github.com/lixenwraith/echo-sandbox/engine"
	"github.com/lixenwraith/echo-sandbox/input"
	"github.com/lixenwraith/echo-sandbox/motion"
	"github.com/lixenwraith/echo-sandbox/parameter"
	"github.com/lixenwraith/echo-sandbox/physics"
	"github.com/lixenwraith/echo-sandbox/recorder"
	"github.com/lixenwraith/echo-sandbox/render"
	"github.com/lixenwraith/echo-sandbox/status"
	"github.com/lixenwraith/echo-sandbox/vmath"
	"go.uber.org/zap"
)

// Options carries the collaborators supplied by the host
// Every field is optional; a nil Screen runs headless
type Options struct {
	TimeProvider engine.TimeProvider
	Audio        audio.Player
	Screen       tcell.Screen
	Logger       *zap.Logger
	Registry     *status.Registry
}

// Session owns every piece of gameplay state for one run
type Session struct {
	ID     uuid.UUID
	cfg    *config.Config
	logger *zap.Logger
	reg    *status.Registry
	audio  audio.Player

	clock     *engine.PausableClock
	scheduler *engine.ClockScheduler
	timers    *engine.TimerService
	loop      *engine.Loop[Event]

	world   *engine.World
	physics *physics.World
	ground  core.Entity
	player  core.Entity

	recorder   *recorder.Recorder
	driver     *echo.Driver
	spawner    *echo.Spawner
	controller *motion.Controller

	keys *input.State
	hold *input.HoldTracker

	viewport *render.Viewport

	statSpeed    *status.AtomicFloat
	statAltitude *status.AtomicFloat
}

// New builds the scene and wires the tick pipeline
// Physics setup failure aborts before any gameplay state is reachable
func New(cfg *config.Config, opts Options) (*Session, error) {
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("session", id.String()))

	provider := opts.TimeProvider
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	reg := opts.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}
	player := opts.Audio
	if player == nil {
		player = &audio.NoopPlayer{}
	}

	interval := cfg.TickInterval()
	if err := physics.ValidateTimestep(interval); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}
	gravity := vmath.V3F(cfg.Physics.GravityX, cfg.Physics.GravityY, cfg.Physics.GravityZ)
	phys, err := physics.NewWorld(gravity, logger.Named("physics"))
	if err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}

	table := input.DefaultKeyTable()
	if err := table.Apply(cfg.Input.Bindings); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}

	s := &Session{
		ID:         id,
		cfg:        cfg,
		logger:     logger,
		reg:        reg,
		audio:      player,
		clock:      engine.NewPausableClock(provider),
		scheduler:  engine.NewClockScheduler(reg),
		timers:     engine.NewTimerService(provider, reg),
		world:      engine.NewWorld(),
		physics:    phys,
		controller: motion.NewController(cfg.Motion.Speed),
		keys:       input.NewState(table),

		statSpeed:    reg.Floats.Get(status.KeyPlayerSpeed),
		statAltitude: reg.Floats.Get(status.KeyPlayerAltitude),
	}

	if err := s.buildScene(); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}

	capacity := cfg.RecordCapacity()
	s.recorder = recorder.New(capacity, reg)
	s.driver = echo.NewDriver(s.world, player, reg, logger.Named("echo"))
	s.spawner = echo.NewSpawner(s.world, s.player, s.recorder, s.driver, s.timers, player, reg, logger.Named("echo"),
		echo.SpawnerConfig{Size: cfg.Echo.Size, CloneLifetime: cfg.CloneLifetime()})

	initial, repeat := cfg.HoldTimeouts()
	s.hold = input.NewHoldTracker(s.timers, initial, repeat, func(ev input.KeyEvent) {
		s.HandleKey(ev)
	})

	s.scheduler.Register("record", engine.PriorityRecord, s.record)
	s.scheduler.Register("replay", engine.PriorityReplay, func(uint64, time.Duration) { s.driver.Advance() })
	s.scheduler.Register("motion", engine.PriorityMotion, s.move)
	s.scheduler.Register("physics", engine.PriorityPhysics, s.step)

	if opts.Screen != nil {
		cam := render.NewCamera(
			vmath.V3F(cfg.Render.CameraX, cfg.Render.CameraY, cfg.Render.CameraZ),
			vmath.V3F(0, 0, 0),
			cfg.Render.FovDegrees,
		)
		s.viewport = render.NewViewport(opts.Screen, cam, cfg.Render.ShowHUD, logger.Named("render"))
	}

	s.loop = engine.NewLoop(s.scheduler, s.timers, s.clock, interval, logger.Named("loop"), s.Handle, s.draw)

	logger.Info("session ready",
		zap.Int("record_capacity", capacity),
		zap.Duration("tick", interval),
		zap.Float64("speed", cfg.Motion.Speed),
		zap.Strings("callbacks", s.scheduler.Names()),
	)
	return s, nil
}

func (s *Session) buildScene() error {
	groundShape := component.ShapeComponent{
		HalfX: parameter.GroundWidth / 2,
		HalfY: parameter.GroundThickness / 2,
		HalfZ: parameter.GroundDepth / 2,
	}
	groundPose := component.PoseAt(vmath.V3F(0, -parameter.GroundThickness/2, 0))
	s.ground = s.world.CreateBox(component.KindGround, groundShape, groundPose)
	if _, err := s.physics.AddStatic(s.ground, physics.BodyConfig{Pose: groundPose, Shape: groundShape}); err != nil {
		return err
	}

	playerShape := component.Cube(parameter.PlayerSize)
	playerPose := component.PoseAt(vmath.V3F(0, parameter.PlayerSpawnY, 0))
	s.player = s.world.CreateBox(component.KindPlayer, playerShape, playerPose)
	body, err := s.physics.AddBody(s.player, physics.BodyConfig{
		Pose:        playerPose,
		Shape:       playerShape,
		Mass:        s.cfg.Physics.PlayerMass,
		Restitution: s.cfg.Physics.PlayerRestitution,
	})
	if err != nil {
		return err
	}
	s.controller.Lock(body)

	// Disposed entities lose their rigid body in the same call
	s.world.OnDispose(func(e core.Entity) { s.physics.Remove(e) })
	return nil
}

// record samples the controlled body before this tick's motion command
func (s *Session) record(uint64, time.Duration) {
	if pose, ok := s.world.Pose(s.player); ok {
		s.recorder.Sample(pose)
	}
}

func (s *Session) move(uint64, time.Duration) {
	body, _ := s.physics.Body(s.player)
	s.controller.Update(s.keys, body)
}

func (s *Session) step(_ uint64, dt time.Duration) {
	s.physics.Step(dt)
	s.physics.Sync(s.world)

	if body, ok := s.physics.Body(s.player); ok {
		v := body.LinearVelocity()
		s.statSpeed.Set(math.Hypot(v.X, v.Z))
		s.statAltitude.Set(body.Pose().Position.Y)
	}
}

func (s *Session) draw() {
	if s.viewport == nil {
		return
	}
	s.viewport.Draw(s.world, render.Overlay{
		Lines:  s.reg.Lines(),
		Paused: s.loop.Paused(),
		Muted:  s.audio.IsMuted(),
	})
}

// Handle routes one loop event; returns false to stop the session
func (s *Session) Handle(ev Event) bool {
	switch ev.Kind {
	case EventResize:
		if s.viewport != nil {
			s.viewport.Resize(ev.Width, ev.Height)
		}
		return true
	case EventKey:
		if _, bound := s.keys.Action(ev.Key); !bound {
			return true
		}
		return s.HandleKey(s.hold.Press(ev.Key))
	default:
		return true
	}
}

// HandleKey applies a key transition; spawns happen synchronously on key-down
// Toggles act only on the initial press so auto-repeat cannot flip them back
func (s *Session) HandleKey(ev input.KeyEvent) bool {
	wasHeld := s.keys.KeyHeld(ev.Key)
	action := s.keys.Apply(ev)
	if !ev.Down || action == input.ActionNone {
		return true
	}

	switch action {
	case input.ActionSpawnClone:
		s.spawner.Trigger(component.KindClone)
	case input.ActionSpawnPhantom:
		s.spawner.Trigger(component.KindPhantom)
	case input.ActionPause:
		if !wasHeld {
			paused := s.loop.TogglePause()
			s.logger.Info("pause toggled", zap.Bool("paused", paused))
		}
	case input.ActionToggleMute:
		if !wasHeld {
			enabled := s.audio.ToggleMute()
			s.logger.Info("audio toggled", zap.Bool("enabled", enabled))
		}
	case input.ActionQuit:
		s.logger.Info("quit requested", zap.String("key", ev.Key))
		return false
	}
	return true
}

// Run drives the session until ctx is cancelled or a quit key arrives
func (s *Session) Run(ctx context.Context, events <-chan Event) error {
	defer s.Close()
	return s.loop.Run(ctx, events)
}

// Step executes one frame synchronously, as the loop ticker would
func (s *Session) Step() {
	s.loop.Frame()
}

// Close disposes every echo and cancels their timers
func (s *Session) Close() {
	s.hold.ReleaseAll()
	s.spawner.Clear()
	s.driver.Clear()
	s.logger.Info("session closed",
		zap.Uint64("ticks", s.scheduler.TickCount()),
		zap.Duration("paused", s.clock.TotalPauseDuration()),
	)
}

func (s *Session) World() *engine.World              { return s.world }
func (s *Session) Physics() *physics.World           { return s.physics }
func (s *Session) Player() core.Entity               { return s.player }
func (s *Session) Recorder() *recorder.Recorder      { return s.recorder }
func (s *Session) Driver() *echo.Driver              { return s.driver }
func (s *Session) Spawner() *echo.Spawner            { return s.spawner }
func (s *Session) Timers() *engine.TimerService      { return s.timers }
func (s *Session) Scheduler() *engine.ClockScheduler { return s.scheduler }
func (s *Session) Keys() *input.State                { return s.keys }
func (s *Session) Paused() bool                      { return s.loop.Paused() }
func (s *Session) Registry() *status.Registry        { return s.reg }
