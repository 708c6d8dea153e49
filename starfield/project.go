package starfield

// Project maps s onto the screen with a perspective divide.
//
// ok is false when the star is at or behind the viewer (Z <= 0). The
// division truncates toward zero, and the result may lie off screen.
func Project(s Star) (x, y int, ok bool) {
	if s.Z <= 0 {
		return 0, 0, false
	}
	z := int(s.Z)
	return HalfWidth + int(s.X)/z, HalfHeight + int(s.Y)/z, true
}
