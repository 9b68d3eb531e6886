package component

// Kind classifies scene entities for rendering and lifecycle rules
type Kind uint8

const (
	KindNone Kind = iota
	KindGround
	KindPlayer
	KindClone
	KindPhantom
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindPlayer:
		return "player"
	case KindClone:
		return "clone"
	case KindPhantom:
		return "phantom"
	default:
		return "none"
	}
}

// ShapeComponent describes the box primitive backing an entity
// HalfExtents are half the box size per axis
type ShapeComponent struct {
	HalfX, HalfY, HalfZ float64
}

// Cube returns a cube shape with the given edge length
func Cube(size float64) ShapeComponent {
	h := size / 2
	return ShapeComponent{HalfX: h, HalfY: h, HalfZ: h}
}
