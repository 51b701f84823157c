package uishade

import "github.com/chewxy/math32"

// quadrantRadius picks the corner radius for the quadrant containing p:
// the bottom pair when p.Y > 0, the right value when p.X > 0. The selection
// is two mix steps rather than a branch chain so it stays uniform across
// lanes when ported to a data-parallel target.
func quadrantRadius(p Vec2, radii [4]float32) float32 {
	sx := stepGT(p.X)
	sy := stepGT(p.Y)
	top := mix(radii[CornerTopLeft], radii[CornerTopRight], sx)
	bottom := mix(radii[CornerBottomLeft], radii[CornerBottomRight], sx)
	return mix(top, bottom, sy)
}

// BoxDistance returns the signed distance from p (relative to the box
// center) to an axis-aligned box with the given half-size. Negative inside,
// zero on the boundary, positive outside.
func BoxDistance(p, halfSize Vec2) float32 {
	q := p.Abs().Sub(halfSize)
	return q.Max(Vec2{}).Length() + math32.Min(math32.Max(q.X, q.Y), 0)
}

// RoundedBoxDistance returns the signed distance from p (relative to the
// box center) to a rounded box with the given half-size and corner radii
// (CCW from top-left). Negative inside, zero on the boundary, positive
// outside. With all radii zero it reduces exactly to BoxDistance.
func RoundedBoxDistance(p, halfSize Vec2, radii [4]float32) float32 {
	radius := quadrantRadius(p, radii)

	// Vector from the corner closest to p, to p.
	cornerToPoint := p.Abs().Sub(halfSize)
	// Vector from the center of the corner's rounding circle to p.
	q := cornerToPoint.AddScalar(radius)

	// Outside the rounding circle's quadrant the clamped length gives the
	// distance to the arc; inside, min(max(q.x, q.y), 0) recovers the
	// straight-edge distance.
	l := q.Max(Vec2{}).Length()
	m := math32.Min(math32.Max(q.X, q.Y), 0)
	return l + m - radius
}

// ClampRadii limits each corner radius to [0, min(halfSize.X, halfSize.Y)].
// Negative and oversized radii are invalid per-primitive input and are
// absorbed here rather than propagated.
func ClampRadii(radii [4]float32, halfSize Vec2) [4]float32 {
	limit := math32.Min(halfSize.X, halfSize.Y)
	if limit < 0 {
		limit = 0
	}
	for i, r := range radii {
		radii[i] = clamp(r, 0, limit)
	}
	return radii
}
