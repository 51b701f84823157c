package uishade

// Corner indices, counter-clockwise from top-left. This is the order corner
// radii are supplied in per-primitive attributes.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// Inset (border width) indices, one per edge.
const (
	InsetLeft = iota
	InsetTop
	InsetRight
	InsetBottom
)

// Box is an axis-aligned box described by its center and half-size.
// Boxes are ephemeral: constructed per evaluation, never persisted.
type Box struct {
	Center   Vec2
	HalfSize Vec2
}

// Node describes one rounded rectangle and its border band: the outer size,
// four corner radii (CCW from top-left), and four per-edge border insets
// (left, top, right, bottom). Insets may be asymmetric and may exceed the
// half-size; the distance computation clamps rather than failing.
type Node struct {
	Size        Vec2
	CornerRadii [4]float32
	Inset       [4]float32
}

// HalfSize returns half the node's size.
func (n Node) HalfSize() Vec2 {
	return n.Size.Mul(0.5)
}

// InsetBox shrinks a box by per-edge insets (left, top, right, bottom) and
// recenters it. Insets larger than the box produce a negative half-size;
// callers clamp before using it in distance computations.
func InsetBox(b Box, inset [4]float32) Box {
	return Box{
		Center: Vec2{
			X: b.Center.X + 0.5*(inset[InsetLeft]-inset[InsetRight]),
			Y: b.Center.Y + 0.5*(inset[InsetTop]-inset[InsetBottom]),
		},
		HalfSize: Vec2{
			X: b.HalfSize.X - 0.5*(inset[InsetLeft]+inset[InsetRight]),
			Y: b.HalfSize.Y - 0.5*(inset[InsetTop]+inset[InsetBottom]),
		},
	}
}

// Rect is an axis-aligned rectangle given by its minimum and maximum corner.
type Rect struct {
	Min, Max Vec2
}

// Contains reports whether p lies inside the rectangle. Points exactly on
// the boundary count as inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ClipColor returns the color unchanged when pos lies inside rect and fully
// transparent otherwise, regardless of any other computation.
func ClipColor(c RGBA, pos Vec2, rect Rect) RGBA {
	if rect.Contains(pos) {
		return c
	}
	return Transparent
}
