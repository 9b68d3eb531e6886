package parameter

// HUD layout
const (
	HUDMarginX = 1
	HUDMarginY = 0

	// StatusLineHeight is the bottom row reserved for key hints
	StatusLineHeight = 1
)
