package physics

import "errors"

var (
	ErrInvalidGravity     = errors.New("gravity must be finite")
	ErrInvalidTimestep    = errors.New("timestep must be positive")
	ErrInvalidPose        = errors.New("pose must be finite")
	ErrInvalidMass        = errors.New("dynamic body mass must be positive and finite")
	ErrInvalidRestitution = errors.New("restitution must be within [0, 1]")
	ErrDuplicateBody      = errors.New("entity already has a body")
)
