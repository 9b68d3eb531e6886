package parameter

// Controlled body
const (
	PlayerSize        = 2.0
	PlayerSpawnY      = 5.0
	PlayerMass        = 1.0
	PlayerRestitution = 0.0

	// PlayerSpeed is the horizontal speed commanded while a movement key is held
	PlayerSpeed = 10.0
)
