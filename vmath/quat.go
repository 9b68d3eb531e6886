package vmath

import "github.com/go-gl/mathgl/mgl64"

// QuatIdentity returns the axis-aligned orientation
func QuatIdentity() mgl64.Quat {
	return mgl64.QuatIdent()
}

// QuatIntegrate advances orientation q by angular velocity w (rad/s) over dt seconds
// Uses first-order integration q' = q + 0.5*dt*(w*q), renormalized
func QuatIntegrate(q mgl64.Quat, w Vec3F, dt float64) mgl64.Quat {
	if V3FMagSq(w) == 0 || dt == 0 {
		return q
	}
	spin := mgl64.Quat{W: 0, V: V3FToMgl(w)}.Mul(q).Scale(0.5 * dt)
	out := q.Add(spin)
	if out.Len() == 0 {
		return q
	}
	return out.Normalize()
}

// QuatNear compares two quaternions component-wise with tolerance
func QuatNear(a, b mgl64.Quat, eps float64) bool {
	return a.ApproxEqualThreshold(b, eps)
}
