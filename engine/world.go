package engine

import (
	"sync"

	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/core"
)

// World is the primitive entity arena: every visible box lives here
// Transforms is the single pose channel read by the renderer; it is written either
// directly (kinematic entities) or by the physics sync (simulated entities)
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Kinds      *Store[component.Kind]
	Shapes     *Store[component.ShapeComponent]
	Transforms *Store[component.Pose]

	disposeHooks []func(core.Entity)
}

// NewWorld creates an empty arena
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Kinds:        NewStore[component.Kind](),
		Shapes:       NewStore[component.ShapeComponent](),
		Transforms:   NewStore[component.Pose](),
	}
}

// CreateBox allocates a new box entity with the given kind, shape and initial pose
func (w *World) CreateBox(kind component.Kind, shape component.ShapeComponent, pose component.Pose) core.Entity {
	w.mu.Lock()
	e := w.nextEntityID
	w.nextEntityID++
	w.mu.Unlock()

	w.Kinds.Set(e, kind)
	w.Shapes.Set(e, shape)
	w.Transforms.Set(e, pose)
	return e
}

// Dispose destroys an entity exactly once
// Returns false if the entity was never created or is already disposed
func (w *World) Dispose(e core.Entity) bool {
	if !w.Kinds.Remove(e) {
		return false
	}
	w.Shapes.Remove(e)
	w.Transforms.Remove(e)

	for _, hook := range w.disposeHooks {
		hook(e)
	}
	return true
}

// OnDispose registers a hook invoked after an entity is removed
// Physics uses it to drop the rigid body bound to the entity
func (w *World) OnDispose(fn func(core.Entity)) {
	w.disposeHooks = append(w.disposeHooks, fn)
}

// Alive reports whether the entity exists
func (w *World) Alive(e core.Entity) bool {
	return w.Kinds.Has(e)
}

// Pose returns the entity's current transform
func (w *World) Pose(e core.Entity) (component.Pose, bool) {
	return w.Transforms.Get(e)
}

// SetPose writes the entity's transform directly
// No-op for disposed entities so stale writers cannot resurrect them
func (w *World) SetPose(e core.Entity, pose component.Pose) bool {
	if !w.Alive(e) {
		return false
	}
	w.Transforms.Set(e, pose)
	return true
}

// Count returns the number of live entities of a kind
func (w *World) Count(kind component.Kind) int {
	n := 0
	for _, e := range w.Kinds.Entities() {
		if k, _ := w.Kinds.Get(e); k == kind {
			n++
		}
	}
	return n
}

// Entities returns all live entities in creation order
func (w *World) Entities() []core.Entity {
	return w.Kinds.Entities()
}

// Clear disposes every entity, running hooks for each
func (w *World) Clear() {
	for _, e := range w.Kinds.Entities() {
		w.Dispose(e)
	}
}
