package motion

import (
	"testing"

	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/input"
	"github.com/lixenwraith/echo-sandbox/physics"
	"github.com/lixenwraith/echo-sandbox/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type heldSet map[input.Action]bool

func (h heldSet) Held(a input.Action) bool { return h[a] }

func newBody(t *testing.T) *physics.Body {
	t.Helper()
	w, err := physics.NewWorld(physics.DefaultGravity, nil)
	require.NoError(t, err)
	b, err := w.AddBody(1, physics.BodyConfig{
		Pose:  component.PoseAt(vmath.V3F(0, 5, 0)),
		Shape: component.Cube(2),
		Mass:  1,
	})
	require.NoError(t, err)
	return b
}

func TestUpdate_Combinations(t *testing.T) {
	const speed = 5.0
	tests := []struct {
		name string
		held heldSet
		want vmath.Vec3F
	}{
		{"idle", heldSet{}, vmath.V3F(0, 0, 0)},
		{"forward", heldSet{input.ActionForward: true}, vmath.V3F(0, 0, speed)},
		{"backward", heldSet{input.ActionBackward: true}, vmath.V3F(0, 0, -speed)},
		{"backward wins", heldSet{input.ActionForward: true, input.ActionBackward: true}, vmath.V3F(0, 0, -speed)},
		{"left", heldSet{input.ActionLeft: true}, vmath.V3F(-speed, 0, 0)},
		{"right wins", heldSet{input.ActionLeft: true, input.ActionRight: true}, vmath.V3F(speed, 0, 0)},
		{"diagonal", heldSet{input.ActionForward: true, input.ActionRight: true}, vmath.V3F(speed, 0, speed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBody(t)
			b.SetLinearVelocity(vmath.V3F(9, 0, 9))
			NewController(speed).Update(tt.held, b)
			assert.Equal(t, tt.want, b.LinearVelocity())
		})
	}
}

func TestUpdate_PreservesVertical(t *testing.T) {
	b := newBody(t)
	b.SetLinearVelocity(vmath.V3F(1, -3.2, 1))

	NewController(5).Update(heldSet{input.ActionForward: true}, b)

	assert.Equal(t, vmath.V3F(0, -3.2, 5), b.LinearVelocity())
}

func TestUpdate_FromKeyState(t *testing.T) {
	state := input.NewState(input.DefaultKeyTable())
	state.Apply(input.KeyEvent{Key: "arrowup", Down: true})
	state.Apply(input.KeyEvent{Key: "s", Down: true})
	state.Apply(input.KeyEvent{Key: "q", Down: true})

	b := newBody(t)
	NewController(4).Update(state, b)
	assert.Equal(t, vmath.V3F(-4, 0, -4), b.LinearVelocity())
}

func TestUpdate_MissingBodySkips(t *testing.T) {
	assert.NotPanics(t, func() {
		NewController(5).Update(heldSet{input.ActionForward: true}, nil)
	})
}

func TestLock(t *testing.T) {
	b := newBody(t)
	c := NewController(5)
	c.Lock(b)
	assert.True(t, b.RotationLocked())
	c.Lock(nil)
}
