package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/echo-sandbox/vmath"
)

// Pose is an entity placement at one instant
// Both fields are value types; copying a Pose never shares memory
type Pose struct {
	Position vmath.Vec3F
	Rotation mgl64.Quat
}

// IdentityPose returns a pose at origin with axis-aligned rotation
func IdentityPose() Pose {
	return Pose{Rotation: vmath.QuatIdentity()}
}

// PoseAt returns an axis-aligned pose at position p
func PoseAt(p vmath.Vec3F) Pose {
	return Pose{Position: p, Rotation: vmath.QuatIdentity()}
}
