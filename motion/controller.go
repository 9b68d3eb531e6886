package motion

import (
	"github.com/lixenwraith/echo-sandbox/input"
	"github.com/lixenwraith/echo-sandbox/physics"
	"github.com/lixenwraith/echo-sandbox/vmath"
)

// HeldState answers whether a logical action is currently held
type HeldState interface {
	Held(action input.Action) bool
}

// Controller converts held movement keys into a velocity command on the controlled body
type Controller struct {
	speed float64
}

// NewController creates a controller commanding the given horizontal speed
func NewController(speed float64) *Controller {
	return &Controller{speed: speed}
}

// Speed returns the commanded horizontal speed
func (c *Controller) Speed() float64 {
	return c.speed
}

// Lock zeroes the body's inertia so applied torques never rotate it
func (c *Controller) Lock(body *physics.Body) {
	if body == nil {
		return
	}
	body.SetMassProperties(vmath.Vec3F{})
}

// Update commands the body's horizontal velocity from state
// Backward overrides forward and right overrides left; vertical velocity is kept
func (c *Controller) Update(state HeldState, body *physics.Body) {
	if body == nil || state == nil {
		return
	}

	var forward, lateral float64
	if state.Held(input.ActionForward) {
		forward = c.speed
	}
	if state.Held(input.ActionBackward) {
		forward = -c.speed
	}
	if state.Held(input.ActionLeft) {
		lateral = -c.speed
	}
	if state.Held(input.ActionRight) {
		lateral = c.speed
	}

	vertical := body.LinearVelocity().Y
	body.SetLinearVelocity(vmath.V3F(lateral, vertical, forward))
}
