package physics

import (
	"fmt"
	"time"

	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/vmath"
	"go.uber.org/zap"
)

const (
	// contactSlop tolerates penetration from the previous step before a contact is rejected
	contactSlop = 0.05
	// restingSpeed is the bounce speed below which a landing body comes to rest
	restingSpeed = 0.2
)

// DefaultGravity is standard earth gravity along -Y
var DefaultGravity = vmath.V3F(0, -9.81, 0)

// PoseWriter receives simulated poses after each step
type PoseWriter interface {
	SetPose(e core.Entity, pose component.Pose) bool
}

// World integrates rigid bodies under constant gravity with static box supports
// Entities without a body are never touched, so kinematically authored poses stay orthogonal
type World struct {
	gravity vmath.Vec3F
	logger  *zap.Logger

	dynamic []*Body
	static  []*Body
	byID    map[core.Entity]*Body
}

// NewWorld validates the gravity vector and creates an empty world
// Failure here is fatal for the session: no gameplay state exists yet
func NewWorld(gravity vmath.Vec3F, logger *zap.Logger) (*World, error) {
	if !vmath.V3FIsFinite(gravity) {
		return nil, fmt.Errorf("physics init %v: %w", gravity, ErrInvalidGravity)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		gravity: gravity,
		logger:  logger,
		byID:    make(map[core.Entity]*Body),
	}, nil
}

// ValidateTimestep rejects a fixed step the integrator cannot use
func ValidateTimestep(dt time.Duration) error {
	if dt <= 0 {
		return fmt.Errorf("physics step %s: %w", dt, ErrInvalidTimestep)
	}
	return nil
}

// Gravity returns the constant gravity vector
func (w *World) Gravity() vmath.Vec3F {
	return w.gravity
}

// AddBody attaches a dynamic rigid body to entity e
func (w *World) AddBody(e core.Entity, cfg BodyConfig) (*Body, error) {
	return w.add(e, cfg, false)
}

// AddStatic attaches an immovable collider to entity e
func (w *World) AddStatic(e core.Entity, cfg BodyConfig) (*Body, error) {
	return w.add(e, cfg, true)
}

func (w *World) add(e core.Entity, cfg BodyConfig, static bool) (*Body, error) {
	if _, exists := w.byID[e]; exists {
		return nil, fmt.Errorf("entity %d: %w", e, ErrDuplicateBody)
	}
	b, err := newBody(e, cfg, static)
	if err != nil {
		return nil, err
	}
	w.byID[e] = b
	if static {
		w.static = append(w.static, b)
	} else {
		w.dynamic = append(w.dynamic, b)
	}
	w.logger.Debug("body added",
		zap.Uint64("entity", uint64(e)),
		zap.Bool("static", static),
		zap.Float64("mass", cfg.Mass),
	)
	return b, nil
}

// Body returns the rigid body bound to entity e
func (w *World) Body(e core.Entity) (*Body, bool) {
	b, ok := w.byID[e]
	return b, ok
}

// Remove detaches the body of entity e; safe to call for entities without one
func (w *World) Remove(e core.Entity) bool {
	b, ok := w.byID[e]
	if !ok {
		return false
	}
	delete(w.byID, e)
	if b.static {
		w.static = removeBody(w.static, b)
	} else {
		w.dynamic = removeBody(w.dynamic, b)
	}
	return true
}

// BodyCount returns the number of bodies of both kinds
func (w *World) BodyCount() int {
	return len(w.byID)
}

// Step advances every dynamic body by dt using semi-implicit Euler
func (w *World) Step(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}

	for _, b := range w.dynamic {
		prevBottom := b.bottom()

		b.linVel = vmath.V3FAdd(b.linVel, vmath.V3FScale(w.gravity, sec))
		b.angVel = vmath.V3FAdd(b.angVel, vmath.V3FScale(vmath.V3FMulElem(b.torque, b.invInertia), sec))
		b.torque = vmath.Vec3F{}

		b.position = vmath.V3FAdd(b.position, vmath.V3FScale(b.linVel, sec))
		b.orientation = vmath.QuatIntegrate(b.orientation, b.angVel, sec)

		b.grounded = false
		for _, s := range w.static {
			if resolveSupport(b, s, prevBottom) {
				b.grounded = true
			}
		}
	}
}

// Sync publishes every dynamic body's pose to the scene
func (w *World) Sync(out PoseWriter) {
	for _, b := range w.dynamic {
		out.SetPose(b.entity, b.Pose())
	}
}

func removeBody(list []*Body, b *Body) []*Body {
	for i, x := range list {
		if x == b {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
