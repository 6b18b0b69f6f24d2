package gamemath

// Lands reports whether a body moving with vertical speed vy comes to rest
// on top of surface this frame. slop widens the catch window below the
// surface top so fast falls do not tunnel through thin platforms.
func Lands(body Rect, vy float64, surface Rect, slop float64) bool {
	top := surface.Top()
	return vy <= 0 &&
		body.OverlapsX(surface) &&
		body.Y >= top &&
		body.Y+vy <= top+slop
}

// Integrate applies one frame of gravity to a vertical speed and returns the
// new speed and position.
func Integrate(y, vy, gravity float64) (newY, newVY float64) {
	newVY = vy - gravity
	return y + newVY, newVY
}
