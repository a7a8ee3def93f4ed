package gamemath

// ApplyGravity adds gravity in the given direction (+1 down, -1 up) to a vertical speed.
func ApplyGravity(speedY, gravity, direction float64) float64 {
	return speedY + gravity*direction
}

// ClampVertical clamps y to [0, height-size] and reports which edge was touched.
// touched is -1 for the ceiling, +1 for the floor and 0 when y was already inside.
func ClampVertical(y, size, height float64) (clamped float64, touched int) {
	if y < 0 {
		return 0, -1
	}
	if y > height-size {
		return height - size, 1
	}
	return y, 0
}

// OutOfBounds reports whether a body of the given size has left [0, height].
func OutOfBounds(y, size, height float64) bool {
	return y < 0 || y+size > height
}

// Decay scales a magnitude geometrically and snaps it to zero under floor.
func Decay(value, factor, floor float64) float64 {
	value *= factor
	if value < floor {
		return 0
	}
	return value
}

// ClampAbs clamps a value to [-max, max].
func ClampAbs(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
