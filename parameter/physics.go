package parameter

// World
const (
	GravityX = 0.0
	GravityY = -9.81
	GravityZ = 0.0
)

// Ground is a static slab whose top face lies at y=0
const (
	GroundWidth     = 30.0
	GroundDepth     = 30.0
	GroundThickness = 1.0
)
