package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/engine"
	"github.com/lixenwraith/echo-sandbox/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera(w, h int) *Camera {
	cam := NewCamera(vmath.V3F(0, 10, -20), vmath.V3F(0, 0, 0), 60)
	cam.SetViewport(w, h)
	return cam
}

func groundShape() component.ShapeComponent {
	return component.ShapeComponent{HalfX: 15, HalfY: 0.5, HalfZ: 15}
}

func TestCamera_Project(t *testing.T) {
	cam := newTestCamera(80, 24)

	sx, sy, _, ok := cam.Project(vmath.V3F(0, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 40, sx, 1e-9)
	assert.InDelta(t, 12, sy, 1e-9)

	rx, _, _, ok := cam.Project(vmath.V3F(5, 0, 0))
	require.True(t, ok)
	assert.Greater(t, rx, sx, "world +X renders to the right")

	_, uy, _, ok := cam.Project(vmath.V3F(0, 5, 0))
	require.True(t, ok)
	assert.Less(t, uy, sy, "world +Y renders upward")

	_, _, nearDepth, _ := cam.Project(vmath.V3F(0, 0, -5))
	_, _, farDepth, _ := cam.Project(vmath.V3F(0, 0, 5))
	assert.Less(t, nearDepth, farDepth)

	_, _, _, ok = cam.Project(vmath.V3F(0, 10, -40))
	assert.False(t, ok, "behind the camera")
}

func TestBlendAndScale(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{200, 100, 50}
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, RGB{100, 50, 25}, Blend(a, b, 0.5))
	assert.Equal(t, RGB{255, 200, 100}, Scale(b, 2))
}

func TestRenderBuffer_DepthTest(t *testing.T) {
	buf := NewRenderBuffer(4, 2)

	assert.True(t, buf.Shade(1, 1, 0.5, RgbPlayer, 1))
	assert.False(t, buf.Shade(1, 1, 0.7, RgbGround, 1), "farther sample hidden")
	assert.True(t, buf.Shade(1, 1, 0.2, RgbGround, 1))

	c, ok := buf.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, RgbGround, c.Bg)
	assert.Equal(t, 0.2, c.Depth)

	// Translucent blends without writing depth
	assert.True(t, buf.Shade(1, 1, 0.1, RgbPhantom, 0.5))
	c, _ = buf.Get(1, 1)
	assert.Equal(t, Blend(RgbGround, RgbPhantom, 0.5), c.Bg)
	assert.Equal(t, 0.2, c.Depth)

	assert.False(t, buf.Shade(9, 9, 0, RgbPlayer, 1))

	buf.Resize(2, 2)
	w, h := buf.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	c, _ = buf.Get(1, 1)
	assert.True(t, math.IsInf(c.Depth, 1))
}

func TestDrawBox_PlayerOverGround(t *testing.T) {
	buf := NewRenderBuffer(80, 24)
	cam := newTestCamera(80, 24)

	groundMat, _ := MaterialFor(component.KindGround)
	playerMat, _ := MaterialFor(component.KindPlayer)

	require.Positive(t, DrawBox(buf, cam, component.PoseAt(vmath.V3F(0, -0.5, 0)), groundShape(), groundMat))
	center, _ := buf.Get(40, 12)
	assert.NotEqual(t, RgbBackground, center.Bg)

	require.Positive(t, DrawBox(buf, cam, component.PoseAt(vmath.V3F(0, 1, 0)), component.Cube(2), playerMat))
	center, _ = buf.Get(40, 11)
	assert.Greater(t, center.Bg.G, uint8(120), "player cyan in front of ground")

	// Far corner of the screen stays background
	corner, _ := buf.Get(0, 0)
	assert.Equal(t, RgbBackground, corner.Bg)
}

func TestDrawBox_RotatedBoxStillDraws(t *testing.T) {
	buf := NewRenderBuffer(80, 24)
	cam := newTestCamera(80, 24)
	mat, _ := MaterialFor(component.KindPhantom)

	pose := component.Pose{
		Position: vmath.V3F(2, 1, 0),
		Rotation: vmath.QuatIntegrate(vmath.QuatIdentity(), vmath.V3F(0, 1, 0), 0.7),
	}
	assert.Positive(t, DrawBox(buf, cam, pose, component.Cube(2), mat))

	// Zero quaternion falls back to identity
	assert.Positive(t, DrawBox(NewRenderBuffer(80, 24), cam, component.Pose{}, component.Cube(2), mat))
}

func TestViewport_DrawAndResize(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	world := engine.NewWorld()
	world.CreateBox(component.KindGround, groundShape(), component.PoseAt(vmath.V3F(0, -0.5, 0)))
	player := world.CreateBox(component.KindPlayer, component.Cube(2), component.PoseAt(vmath.V3F(0, 1, 0)))
	clonePos := vmath.V3F(6, 1, 0)
	clone := world.CreateBox(component.KindClone, component.Cube(2), component.PoseAt(clonePos))

	cam := NewCamera(vmath.V3F(0, 10, -20), vmath.V3F(0, 0, 0), 60)
	vp := NewViewport(screen, cam, true, nil)
	vp.Draw(world, Overlay{Lines: []string{"echo.clones=1"}, Paused: true})

	r, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, 'P', r)
	r, _, _, _ = screen.GetContent(1, 1)
	assert.Equal(t, 'e', r)

	// The translucent clone stands on the ground beside the player and tints it
	sx, sy, _, ok := cam.Project(clonePos)
	require.True(t, ok)
	cx, cy := int(math.Floor(sx)), int(math.Floor(sy))
	withClone, _ := vp.Buffer().Get(cx, cy)
	require.True(t, world.Dispose(clone))
	vp.Draw(world, Overlay{})
	without, _ := vp.Buffer().Get(cx, cy)
	assert.NotEqual(t, RgbBackground, without.Bg, "ground expected behind the clone")
	assert.NotEqual(t, withClone.Bg, without.Bg)
	assert.Greater(t, withClone.Bg.G, without.Bg.G)
	assert.True(t, world.Alive(player))

	vp.Resize(100, 30)
	w, h := vp.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
}
