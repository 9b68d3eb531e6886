package echo

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/echo-sandbox/audio"
	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/engine"
	"github.com/lixenwraith/echo-sandbox/parameter"
	"github.com/lixenwraith/echo-sandbox/recorder"
	"github.com/lixenwraith/echo-sandbox/status"
	"go.uber.org/zap"
)

// SpawnerConfig sets echo geometry and clone lifetime
type SpawnerConfig struct {
	Size          float64
	CloneLifetime time.Duration
}

// DefaultSpawnerConfig returns the stock echo settings
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Size:          parameter.EchoSize,
		CloneLifetime: parameter.CloneLifetime,
	}
}

type cloneEntry struct {
	component.CloneComponent
	timer engine.TimerID
}

// Spawner creates echoes of the controlled entity on demand
// Clones expire on the wall-clock timer service; phantoms are handed to the Driver
type Spawner struct {
	world    *engine.World
	target   core.Entity
	recorder *recorder.Recorder
	driver   *Driver
	timers   *engine.TimerService
	player   audio.Player
	logger   *zap.Logger
	cfg      SpawnerConfig

	clones        *Arena[cloneEntry]
	cloneByEntity map[core.Entity]Handle

	statClonesLive    *atomic.Int64
	statClonesTotal   *atomic.Int64
	statPhantomsTotal *atomic.Int64
}

// NewSpawner wires a spawner echoing target; reg and player may be nil
func NewSpawner(
	world *engine.World,
	target core.Entity,
	rec *recorder.Recorder,
	driver *Driver,
	timers *engine.TimerService,
	player audio.Player,
	reg *status.Registry,
	logger *zap.Logger,
	cfg SpawnerConfig,
) *Spawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if player == nil {
		player = &audio.NoopPlayer{}
	}
	s := &Spawner{
		world:         world,
		target:        target,
		recorder:      rec,
		driver:        driver,
		timers:        timers,
		player:        player,
		logger:        logger,
		cfg:           cfg,
		clones:        NewArena[cloneEntry](),
		cloneByEntity: make(map[core.Entity]Handle),
	}
	if reg != nil {
		s.statClonesLive = reg.Ints.Get(status.KeyClonesLive)
		s.statClonesTotal = reg.Ints.Get(status.KeyClonesTotal)
		s.statPhantomsTotal = reg.Ints.Get(status.KeyPhantomsTotal)
	}

	// A clone disposed elsewhere drops its pending expiry
	world.OnDispose(func(e core.Entity) {
		h, ok := s.cloneByEntity[e]
		if !ok {
			return
		}
		if c, ok := s.clones.Get(h); ok {
			s.timers.Cancel(c.timer)
		}
		s.forgetClone(e, h)
	})
	return s
}

// Trigger spawns an echo of kind KindClone or KindPhantom
// Returns false for any other kind or when the target no longer exists
func (s *Spawner) Trigger(kind component.Kind) (core.Entity, bool) {
	switch kind {
	case component.KindClone:
		return s.spawnClone()
	case component.KindPhantom:
		return s.spawnPhantom()
	default:
		s.logger.Debug("ignored spawn request", zap.Stringer("kind", kind))
		return 0, false
	}
}

func (s *Spawner) spawnClone() (core.Entity, bool) {
	pose, ok := s.world.Pose(s.target)
	if !ok {
		s.logger.Debug("clone skipped, target missing", zap.Uint64("target", uint64(s.target)))
		return 0, false
	}

	e := s.world.CreateBox(component.KindClone, component.Cube(s.cfg.Size), component.PoseAt(pose.Position))
	h := s.clones.Insert(cloneEntry{
		CloneComponent: component.CloneComponent{
			Entity:    e,
			SpawnTime: s.timers.Now(),
			Position:  pose.Position,
		},
	})
	s.cloneByEntity[e] = h

	// The slot is live until the timer fires, so the entry pointer is valid here
	c, _ := s.clones.Get(h)
	c.timer = s.timers.AfterFunc(s.cfg.CloneLifetime, func() { s.expireClone(h) })

	s.publishClones()
	if s.statClonesTotal != nil {
		s.statClonesTotal.Add(1)
	}
	s.player.Play(core.SoundClone)
	s.logger.Debug("clone spawned",
		zap.Uint64("entity", uint64(e)),
		zap.Float64("x", pose.Position.X),
		zap.Float64("y", pose.Position.Y),
		zap.Float64("z", pose.Position.Z),
		zap.Duration("lifetime", s.cfg.CloneLifetime),
	)
	return e, true
}

func (s *Spawner) expireClone(h Handle) {
	c, ok := s.clones.Get(h)
	if !ok {
		return
	}
	e := c.Entity
	age := s.timers.Now().Sub(c.SpawnTime)
	s.forgetClone(e, h)
	s.world.Dispose(e)
	s.player.Play(core.SoundExpire)
	s.logger.Debug("clone expired", zap.Uint64("entity", uint64(e)), zap.Duration("age", age))
}

func (s *Spawner) spawnPhantom() (core.Entity, bool) {
	if !s.world.Alive(s.target) {
		s.logger.Debug("phantom skipped, target missing", zap.Uint64("target", uint64(s.target)))
		return 0, false
	}

	snapshot := s.recorder.Snapshot()
	start := component.IdentityPose()
	if len(snapshot) > 0 {
		start = snapshot[0]
	}

	e := s.world.CreateBox(component.KindPhantom, component.Cube(s.cfg.Size), start)
	s.driver.Add(e, snapshot)

	if s.statPhantomsTotal != nil {
		s.statPhantomsTotal.Add(1)
	}
	s.player.Play(core.SoundPhantom)
	s.logger.Debug("phantom spawned",
		zap.Uint64("entity", uint64(e)),
		zap.Int("frames", len(snapshot)),
	)
	return e, true
}

// Clones returns the number of live clones
func (s *Spawner) Clones() int {
	return s.clones.Len()
}

// Clone returns the record of a live clone entity
func (s *Spawner) Clone(e core.Entity) (component.CloneComponent, bool) {
	h, ok := s.cloneByEntity[e]
	if !ok {
		return component.CloneComponent{}, false
	}
	c, ok := s.clones.Get(h)
	if !ok {
		return component.CloneComponent{}, false
	}
	return c.CloneComponent, true
}

// Clear disposes every live clone and cancels its expiry
func (s *Spawner) Clear() {
	s.clones.Each(func(h Handle, c *cloneEntry) {
		e := c.Entity
		s.timers.Cancel(c.timer)
		s.forgetClone(e, h)
		s.world.Dispose(e)
	})
}

func (s *Spawner) forgetClone(e core.Entity, h Handle) {
	s.clones.Remove(h)
	delete(s.cloneByEntity, e)
	s.publishClones()
}

func (s *Spawner) publishClones() {
	if s.statClonesLive != nil {
		s.statClonesLive.Store(int64(s.clones.Len()))
	}
}
