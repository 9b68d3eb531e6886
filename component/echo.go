package component

import (
	"time"

	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/vmath"
)

// CloneComponent is a static duplicate that expires on a wall-clock timer
// Carries position only; clones always spawn axis-aligned
type CloneComponent struct {
	Entity    core.Entity
	SpawnTime time.Time
	Position  vmath.Vec3F
}

// PhantomComponent replays a private pose snapshot one entry per tick
// Snapshot is owned exclusively by the phantom and never mutated after spawn
// Cursor only increases and never exceeds len(Snapshot)
type PhantomComponent struct {
	Entity   core.Entity
	Snapshot []Pose
	Cursor   int
}

// Exhausted reports whether every snapshot entry has been replayed
func (p *PhantomComponent) Exhausted() bool {
	return p.Cursor >= len(p.Snapshot)
}

// Remaining returns the number of poses left to replay
func (p *PhantomComponent) Remaining() int {
	return len(p.Snapshot) - p.Cursor
}
