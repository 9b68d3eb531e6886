package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/echo-sandbox/component"
	"github.com/lixenwraith/echo-sandbox/vmath"
)

// boxFaces lists corner indices per face in a consistent order, with the local normal
// Corner i has sign bits x=i&1, y=i&2, z=i&4
var boxFaces = [6]struct {
	corners [4]int
	normal  vmath.Vec3F
}{
	{[4]int{1, 3, 7, 5}, vmath.Vec3F{X: 1}},
	{[4]int{0, 4, 6, 2}, vmath.Vec3F{X: -1}},
	{[4]int{2, 6, 7, 3}, vmath.Vec3F{Y: 1}},
	{[4]int{0, 1, 5, 4}, vmath.Vec3F{Y: -1}},
	{[4]int{4, 5, 7, 6}, vmath.Vec3F{Z: 1}},
	{[4]int{0, 2, 3, 1}, vmath.Vec3F{Z: -1}},
}

type screenVert struct {
	x, y, z float64
}

// faceShade approximates a hemispheric light from above
func faceShade(n vmath.Vec3F, emissive float64) float64 {
	s := 0.35 + 0.65*(0.5+0.5*n.Y)
	if math.Abs(n.X) > 0.5 {
		s *= 0.85
	}
	return math.Min(math.Max(s, emissive), 1)
}

// DrawBox rasterizes the visible faces of a box into buf
func DrawBox(buf *RenderBuffer, cam *Camera, pose component.Pose, shape component.ShapeComponent, mat Material) int {
	rot := pose.Rotation
	if rot.Len() == 0 {
		rot = vmath.QuatIdentity()
	}

	var world [8]vmath.Vec3F
	var proj [8]screenVert
	var visible [8]bool
	for i := range world {
		local := mgl64.Vec3{-shape.HalfX, -shape.HalfY, -shape.HalfZ}
		if i&1 != 0 {
			local[0] = shape.HalfX
		}
		if i&2 != 0 {
			local[1] = shape.HalfY
		}
		if i&4 != 0 {
			local[2] = shape.HalfZ
		}
		world[i] = vmath.V3FAdd(pose.Position, vmath.V3FFromMgl(rot.Rotate(local)))
		x, y, z, ok := cam.Project(world[i])
		proj[i] = screenVert{x, y, z}
		visible[i] = ok
	}

	eye := cam.Eye()
	painted := 0
	for _, f := range boxFaces {
		n := vmath.V3FFromMgl(rot.Rotate(vmath.V3FToMgl(f.normal)))
		center := vmath.V3FScale(vmath.V3FAdd(world[f.corners[0]], world[f.corners[2]]), 0.5)
		if vmath.V3FDot(n, vmath.V3FSub(eye, center)) <= 0 {
			continue
		}
		a, b, c, d := f.corners[0], f.corners[1], f.corners[2], f.corners[3]
		if !visible[a] || !visible[b] || !visible[c] || !visible[d] {
			continue
		}
		color := Scale(mat.Color, faceShade(n, mat.Emissive))
		painted += fillTriangle(buf, proj[a], proj[b], proj[c], color, mat.Alpha)
		painted += fillTriangle(buf, proj[a], proj[c], proj[d], color, mat.Alpha)
	}
	return painted
}

// fillTriangle shades every cell whose center lies inside the triangle
// Top-left fill rule keeps shared edges from being painted twice
func fillTriangle(buf *RenderBuffer, v0, v1, v2 screenVert, color RGB, alpha float64) int {
	area := edge(v0, v1, v2.x, v2.y)
	if area == 0 {
		return 0
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	w, h := buf.Size()
	minX := max(int(math.Floor(math.Min(v0.x, math.Min(v1.x, v2.x)))), 0)
	maxX := min(int(math.Ceil(math.Max(v0.x, math.Max(v1.x, v2.x)))), w-1)
	minY := max(int(math.Floor(math.Min(v0.y, math.Min(v1.y, v2.y)))), 0)
	maxY := min(int(math.Ceil(math.Max(v0.y, math.Max(v1.y, v2.y)))), h-1)

	painted := 0
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(v1, v2, px, py)
			w1 := edge(v2, v0, px, py)
			w2 := edge(v0, v1, px, py)
			if !inside(w0, v1, v2) || !inside(w1, v2, v0) || !inside(w2, v0, v1) {
				continue
			}
			z := (w0*v0.z + w1*v1.z + w2*v2.z) / area
			if buf.Shade(x, y, z, color, alpha) {
				painted++
			}
		}
	}
	return painted
}

func edge(a, b screenVert, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// inside applies the top-left rule for samples exactly on an edge
func inside(w float64, a, b screenVert) bool {
	if w > 0 {
		return true
	}
	if w < 0 {
		return false
	}
	dy := b.y - a.y
	return dy < 0 || (dy == 0 && b.x < a.x)
}
