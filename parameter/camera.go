package parameter

// Camera placement looking at the origin
const (
	CameraX = 0.0
	CameraY = 10.0
	CameraZ = -20.0

	CameraFovDegrees = 60.0
	CameraNear       = 0.1
	CameraFar        = 200.0

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)
