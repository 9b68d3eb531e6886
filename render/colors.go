package render

import "github.com/lixenwraith/echo-sandbox/component"

// Scene palette
var (
	RgbBackground = RGB{26, 27, 38}
	RgbGround     = RGB{51, 51, 77}
	RgbPlayer     = RGB{0, 230, 255}
	RgbClone      = RGB{0, 230, 255}
	RgbPhantom    = RGB{255, 51, 128}

	RgbHUDText   = RGB{200, 200, 210}
	RgbHUDPaused = RGB{255, 165, 0}
	RgbHUDHint   = RGB{120, 120, 140}
)

// Material is the surface look of one entity kind
type Material struct {
	Color RGB
	Alpha float64
	// Emissive is a shade floor so lit faces never go fully dark
	Emissive float64
}

// Opaque reports whether the material writes depth
func (m Material) Opaque() bool {
	return m.Alpha >= 1
}

// MaterialFor returns the material drawn for kind
func MaterialFor(kind component.Kind) (Material, bool) {
	switch kind {
	case component.KindGround:
		return Material{Color: RgbGround, Alpha: 1}, true
	case component.KindPlayer:
		return Material{Color: RgbPlayer, Alpha: 1, Emissive: 0.25}, true
	case component.KindClone:
		return Material{Color: RgbClone, Alpha: 0.4}, true
	case component.KindPhantom:
		return Material{Color: RgbPhantom, Alpha: 0.6}, true
	default:
		return Material{}, false
	}
}
