package gamemath

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the trailing (right) edge of the box.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge of the box.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether a and b overlap by more than margin on both axes.
// Overlaps(a, b, m) == Overlaps(b, a, m) for boxes wider and taller than m.
func Overlaps(a, b Rect, margin float64) bool {
	return a.X+margin < b.X+b.W &&
		a.X+a.W-margin > b.X &&
		a.Y+margin < b.Y+b.H &&
		a.Y+a.H-margin > b.Y
}
