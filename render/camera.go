package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/echo-sandbox/parameter"
	"github.com/lixenwraith/echo-sandbox/vmath"
)

// Camera is a fixed perspective camera projecting world points onto terminal cells
// Screen X follows world +X, matching the lateral axis of the motion keys
type Camera struct {
	eye    mgl64.Vec3
	target mgl64.Vec3
	fovY   float64
	near   float64
	far    float64

	width, height int
	viewProj      mgl64.Mat4
}

// NewCamera creates a camera at eye looking at target
func NewCamera(eye, target vmath.Vec3F, fovDegrees float64) *Camera {
	c := &Camera{
		eye:    vmath.V3FToMgl(eye),
		target: vmath.V3FToMgl(target),
		fovY:   mgl64.DegToRad(fovDegrees),
		near:   parameter.CameraNear,
		far:    parameter.CameraFar,
	}
	c.SetViewport(1, 1)
	return c
}

// Eye returns the camera position
func (c *Camera) Eye() vmath.Vec3F {
	return vmath.V3FFromMgl(c.eye)
}

// SetViewport recomputes the projection for a cell grid
func (c *Camera) SetViewport(width, height int) {
	c.width, c.height = max(width, 1), max(height, 1)
	aspect := float64(c.width) / (float64(c.height) * parameter.CellAspect)
	proj := mgl64.Perspective(c.fovY, aspect, c.near, c.far)
	view := mgl64.LookAtV(c.eye, c.target, mgl64.Vec3{0, 1, 0})
	c.viewProj = proj.Mul4(view)
}

// Project maps a world point to fractional cell coordinates and NDC depth
// Returns false for points behind the near plane or beyond the far plane
func (c *Camera) Project(p vmath.Vec3F) (sx, sy, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip.W()
	if w <= c.near {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	// The view basis is right-handed; mirror X so world +X reads left to right
	sx = (1 - ndc.X()) / 2 * float64(c.width)
	sy = (1 - ndc.Y()) / 2 * float64(c.height)
	return sx, sy, ndc.Z(), true
}
