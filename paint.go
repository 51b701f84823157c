package uishade

// Paint produces a color for a sample point in primitive-local space
// (relative to the primitive center). Implementations must be pure: the
// same point always yields the same color.
type Paint interface {
	At(p Vec2) RGBA
}

// Solid is a uniform paint.
type Solid struct {
	Color RGBA
}

// At implements the Paint interface.
func (s Solid) At(Vec2) RGBA {
	return s.Color
}
