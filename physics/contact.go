package physics

// ReflectAxisF clamps a position component into [lo, hi] and reflects the velocity on contact
// Only velocity heading out of the range is reflected, scaled by restitution
func ReflectAxisF(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	return false
}

// overlapXZ reports whether two boxes overlap in the horizontal plane
func overlapXZ(a, b *Body) bool {
	dx := a.position.X - b.position.X
	dz := a.position.Z - b.position.Z
	return abs(dx) < a.shape.HalfX+b.shape.HalfX && abs(dz) < a.shape.HalfZ+b.shape.HalfZ
}

// resolveSupport lands a dynamic body on top of a static box
// Contact is only accepted from above: prevBottom must not have started below the surface
func resolveSupport(b, s *Body, prevBottom float64) bool {
	if !overlapXZ(b, s) {
		return false
	}
	surface := s.top()
	if b.bottom() >= surface || prevBottom < surface-contactSlop {
		return false
	}

	e := min(b.restitution, s.restitution)
	y := b.bottom()
	ReflectAxisF(&y, &b.linVel.Y, surface, surface+b.shape.HalfY*2, e)
	b.position.Y = y + b.shape.HalfY
	if b.linVel.Y < restingSpeed {
		b.linVel.Y = 0
	}
	return true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
