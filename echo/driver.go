package echo

import (
	"sync/atomic"

	"github.com/lixenwraith/echo-sandbox/audio"
	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/engine"
	"github.com/lixenwraith/echo-sandbox/status"
	"go.uber.org/zap"
)

// Driver replays live phantoms, one snapshot pose per tick each
// Poses are written straight to the scene transform; phantoms never own a rigid body
type Driver struct {
	world  *engine.World
	player audio.Player
	logger *zap.Logger

	phantoms *Arena[component.PhantomComponent]
	byEntity map[core.Entity]Handle

	statLive *atomic.Int64
}

// NewDriver creates a driver writing into world; reg and player may be nil
func NewDriver(world *engine.World, player audio.Player, reg *status.Registry, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if player == nil {
		player = &audio.NoopPlayer{}
	}
	d := &Driver{
		world:    world,
		player:   player,
		logger:   logger,
		phantoms: NewArena[component.PhantomComponent](),
		byEntity: make(map[core.Entity]Handle),
	}
	if reg != nil {
		d.statLive = reg.Ints.Get(status.KeyPhantomsLive)
	}

	// Entities disposed elsewhere leave the arena at the same point
	world.OnDispose(func(e core.Entity) {
		if h, ok := d.byEntity[e]; ok {
			d.forget(e, h)
		}
	})
	return d
}

// Add registers a phantom for entity e replaying snapshot
// The driver takes ownership of snapshot; callers must pass a private copy
func (d *Driver) Add(e core.Entity, snapshot []component.Pose) Handle {
	if snapshot == nil {
		snapshot = []component.Pose{}
	}
	h := d.phantoms.Insert(component.PhantomComponent{Entity: e, Snapshot: snapshot})
	d.byEntity[e] = h
	d.publish()
	return h
}

// Advance moves every live phantom forward by one pose
// An exhausted phantom is removed and its entity disposed in the same step
// Returns the number of phantoms disposed
func (d *Driver) Advance() int {
	disposed := 0
	d.phantoms.Each(func(h Handle, p *component.PhantomComponent) {
		if !p.Exhausted() {
			if d.world.SetPose(p.Entity, p.Snapshot[p.Cursor]) {
				p.Cursor++
				return
			}
		}

		e := p.Entity
		replayed := p.Cursor
		d.forget(e, h)
		d.world.Dispose(e)
		d.player.Play(core.SoundExpire)
		disposed++
		d.logger.Debug("phantom finished",
			zap.Uint64("entity", uint64(e)),
			zap.Int("replayed", replayed),
		)
	})
	return disposed
}

// Get returns a copy of the phantom behind h
func (d *Driver) Get(h Handle) (component.PhantomComponent, bool) {
	p, ok := d.phantoms.Get(h)
	if !ok {
		return component.PhantomComponent{}, false
	}
	return *p, true
}

// Remove cancels a phantom and disposes its entity; false if already gone
func (d *Driver) Remove(h Handle) bool {
	p, ok := d.phantoms.Get(h)
	if !ok {
		return false
	}
	e := p.Entity
	d.forget(e, h)
	d.world.Dispose(e)
	return true
}

// Live returns the number of phantoms still replaying
func (d *Driver) Live() int {
	return d.phantoms.Len()
}

// Clear disposes every live phantom
func (d *Driver) Clear() {
	d.phantoms.Each(func(h Handle, p *component.PhantomComponent) {
		e := p.Entity
		d.forget(e, h)
		d.world.Dispose(e)
	})
}

func (d *Driver) forget(e core.Entity, h Handle) {
	d.phantoms.Remove(h)
	delete(d.byEntity, e)
	d.publish()
}

func (d *Driver) publish() {
	if d.statLive != nil {
		d.statLive.Store(int64(d.phantoms.Len()))
	}
}
