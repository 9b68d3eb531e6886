package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/core"
	"github.com/lixenwraith/echo-sandbox/vmath"
)

// BodyConfig describes a dynamic rigid body at creation
type BodyConfig struct {
	Pose        component.Pose
	Shape       component.ShapeComponent
	Mass        float64
	Restitution float64
}

// Body is a simulated rigid body bound to one scene entity
// Pose is owned by the integrator; callers command it through velocities and torques only
type Body struct {
	entity core.Entity

	position    vmath.Vec3F
	orientation mgl64.Quat
	linVel      vmath.Vec3F
	angVel      vmath.Vec3F
	torque      vmath.Vec3F

	shape       component.ShapeComponent
	invMass     float64
	invInertia  vmath.Vec3F
	restitution float64
	static      bool

	grounded bool
}

func newBody(e core.Entity, cfg BodyConfig, static bool) (*Body, error) {
	if !vmath.V3FIsFinite(cfg.Pose.Position) {
		return nil, fmt.Errorf("body %d: %w", e, ErrInvalidPose)
	}
	if !static && (cfg.Mass <= 0 || math.IsNaN(cfg.Mass) || math.IsInf(cfg.Mass, 0)) {
		return nil, fmt.Errorf("body %d mass %v: %w", e, cfg.Mass, ErrInvalidMass)
	}
	if cfg.Restitution < 0 || cfg.Restitution > 1 {
		return nil, fmt.Errorf("body %d restitution %v: %w", e, cfg.Restitution, ErrInvalidRestitution)
	}

	orientation := cfg.Pose.Rotation
	if orientation.Len() == 0 {
		orientation = vmath.QuatIdentity()
	}

	b := &Body{
		entity:      e,
		position:    cfg.Pose.Position,
		orientation: orientation,
		shape:       cfg.Shape,
		restitution: cfg.Restitution,
		static:      static,
	}
	if !static {
		b.invMass = 1 / cfg.Mass
		b.invInertia = boxInverseInertia(cfg.Mass, cfg.Shape)
	}
	return b, nil
}

// boxInverseInertia returns the diagonal inverse inertia tensor of a solid box
func boxInverseInertia(mass float64, s component.ShapeComponent) vmath.Vec3F {
	w, h, d := 2*s.HalfX, 2*s.HalfY, 2*s.HalfZ
	ix := mass * (h*h + d*d) / 12
	iy := mass * (w*w + d*d) / 12
	iz := mass * (w*w + h*h) / 12
	return vmath.Vec3F{X: invOrZero(ix), Y: invOrZero(iy), Z: invOrZero(iz)}
}

func invOrZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return 1 / v
}

// Entity returns the scene entity this body drives
func (b *Body) Entity() core.Entity {
	return b.entity
}

// LinearVelocity returns the current linear velocity
func (b *Body) LinearVelocity() vmath.Vec3F {
	return b.linVel
}

// SetLinearVelocity replaces the linear velocity; ignored on static bodies
func (b *Body) SetLinearVelocity(v vmath.Vec3F) {
	if b.static || !vmath.V3FIsFinite(v) {
		return
	}
	b.linVel = v
}

// AngularVelocity returns the current angular velocity in rad/s
func (b *Body) AngularVelocity() vmath.Vec3F {
	return b.angVel
}

// ApplyTorque accumulates torque for the next step
func (b *Body) ApplyTorque(t vmath.Vec3F) {
	b.torque = vmath.V3FAdd(b.torque, t)
}

// SetMassProperties overrides the diagonal inertia; a zero axis locks rotation about it
// Locking all three axes also clears any angular velocity
func (b *Body) SetMassProperties(inertia vmath.Vec3F) {
	if b.static {
		return
	}
	b.invInertia = vmath.Vec3F{X: invOrZero(inertia.X), Y: invOrZero(inertia.Y), Z: invOrZero(inertia.Z)}
	b.angVel = vmath.V3FMulElem(b.angVel, nonZeroMask(b.invInertia))
}

// RotationLocked reports whether no torque can rotate the body
func (b *Body) RotationLocked() bool {
	return b.invInertia == (vmath.Vec3F{})
}

// Pose returns a copy of the body's simulated placement
func (b *Body) Pose() component.Pose {
	return component.Pose{Position: b.position, Rotation: b.orientation}
}

// Grounded reports whether the body rested on a static surface after the last step
func (b *Body) Grounded() bool {
	return b.grounded
}

// Static reports whether the body is immovable
func (b *Body) Static() bool {
	return b.static
}

func (b *Body) bottom() float64 {
	return b.position.Y - b.shape.HalfY
}

func (b *Body) top() float64 {
	return b.position.Y + b.shape.HalfY
}

func nonZeroMask(v vmath.Vec3F) vmath.Vec3F {
	m := vmath.Vec3F{}
	if v.X != 0 {
		m.X = 1
	}
	if v.Y != 0 {
		m.Y = 1
	}
	if v.Z != 0 {
		m.Z = 1
	}
	return m
}
