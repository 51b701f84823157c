package uishade

import "github.com/chewxy/math32"

// DashPattern describes a dashed border: alternating drawn and skipped
// segment lengths measured along the rounded rectangle's perimeter, plus a
// phase offset into the pattern. Both lengths must be non-negative and
// their sum positive; a zero sum is a host precondition violation.
type DashPattern struct {
	DashLength  float32
	BreakLength float32
	Offset      float32
}

// quadrant returns the perimeter-walk quadrant index for p:
// 0=top-left, 1=top-right, 2=bottom-right, 3=bottom-left.
// The walk starts at the left edge midpoint and proceeds clockwise,
// visiting the quadrants in index order.
func quadrant(p Vec2) int {
	if p.Y <= 0 {
		if p.X <= 0 {
			return 0
		}
		return 1
	}
	if p.X > 0 {
		return 2
	}
	return 3
}

// quadrantLength returns the perimeter length contributed by one quadrant:
// two straight-edge segments of half-size minus the corner radius, plus a
// quarter-circle arc.
func quadrantLength(halfSize Vec2, radius float32) float32 {
	return (halfSize.X - radius) + (halfSize.Y - radius) + radius*(math32.Pi/2)
}

// Perimeter returns the boundary length of a rounded rectangle with the
// given half-size and corner radii (CCW from top-left).
func Perimeter(halfSize Vec2, radii [4]float32) float32 {
	var total float32
	for _, r := range radii {
		total += quadrantLength(halfSize, r)
	}
	return total
}

// ArcPosition maps a boundary-adjacent point p (relative to the box center)
// to its arc-length position along the perimeter walk. Within a quadrant
// the path runs straight edge, then corner arc, then straight edge; even
// quadrants enter along a vertical edge, odd quadrants along a horizontal
// one, which keeps the walk continuous across quadrant boundaries.
func ArcPosition(p Vec2, halfSize Vec2, radii [4]float32) float32 {
	q := quadrant(p)
	radii = ClampRadii(radii, halfSize)

	var t float32
	for i := 0; i < q; i++ {
		t += quadrantLength(halfSize, radii[i])
	}
	return t + quadrantPosition(q, p, halfSize, radii[q])
}

// quadrantPosition returns the arc-length position of p within its
// quadrant's edge-arc-edge path.
func quadrantPosition(q int, p, halfSize Vec2, radius float32) float32 {
	a := math32.Abs(p.X)
	b := math32.Abs(p.Y)

	// Even quadrants walk the vertical edge first; swapping the roles of
	// the two axes makes all four quadrants share one formula.
	ex, ey := b, a
	sx, sy := halfSize.Y, halfSize.X
	if q&1 == 1 {
		ex, ey = a, b
		sx, sy = halfSize.X, halfSize.Y
	}

	edge := sx - radius
	far := sy - radius
	if ex > edge && ey > far {
		// Rounded corner: arc length from the incoming tangent point,
		// measured around the corner circle.
		theta := math32.Atan2(ex-edge, ey-far)
		return edge + radius*theta
	}
	if ex <= edge {
		// Incoming straight edge.
		return ex
	}
	// Outgoing straight edge: distance walked past the arc's far corner.
	return edge + radius*(math32.Pi/2) + (far - ey)
}

// scaled rescales the dash and break lengths so that an integer number of
// dash+break segments exactly tiles the perimeter, avoiding an uneven
// trailing segment.
func (d DashPattern) scaled(perimeter float32) (dash, brk float32) {
	period := d.DashLength + d.BreakLength
	if period <= 0 || perimeter <= 0 {
		return d.DashLength, d.BreakLength
	}
	segments := math32.Floor(perimeter / period)
	if segments < 1 {
		segments = 1
	}
	k := perimeter / (segments * period)
	return d.DashLength * k, d.BreakLength * k
}

// Dashed reports whether arc-length position t along a perimeter of the
// given total length falls inside a drawn dash segment.
func (d DashPattern) Dashed(t, perimeter float32) bool {
	dash, brk := d.scaled(perimeter)
	period := dash + brk
	if period <= 0 {
		return false
	}
	m := math32.Mod(t+d.Offset, period)
	if m < 0 {
		m += period
	}
	return m <= dash
}
