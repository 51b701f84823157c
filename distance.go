package uishade

import "github.com/chewxy/math32"

// Distance carries the two signed-distance channels of a node: Edge is the
// distance to the outer boundary, Border the distance to the border band
// (the outer box minus the inset inner box). Negative values are inside.
type Distance struct {
	Edge   float32
	Border float32
}

// seamCorrect tightens the inner distance in quadrants whose two adjacent
// insets differ, blending it with the outer distance offset by the smaller
// inset. Without this, a large inset next to a small one leaves a visible
// seam along the inner left/top edge.
func seamCorrect(inner, edge float32, p Vec2, inset [4]float32) float32 {
	ix := mix(inset[InsetLeft], inset[InsetRight], stepGT(p.X))
	iy := mix(inset[InsetTop], inset[InsetBottom], stepGT(p.Y))
	if ix == iy {
		return inner
	}
	return math32.Max(inner, edge+math32.Min(ix, iy))
}

// NodeDistance computes both distance channels for node n at sample point p
// (relative to the node center). Outer corner radii are clamped into
// [0, min(half-size)] before use; the inner radii follow the policy.
func NodeDistance(p Vec2, n Node, policy BorderRadiusPolicy) Distance {
	half := n.HalfSize()
	radii := ClampRadii(n.CornerRadii, half)

	edge := RoundedBoxDistance(p, half, radii)
	inner := InsetRoundedBoxDistance(p, half, radii, n.Inset, policy)
	if policy == RadiusClampedSeamCorrected {
		inner = seamCorrect(inner, edge, p, n.Inset)
	}

	// The border band is the set difference (outer box) minus (inner box).
	return Distance{
		Edge:   edge,
		Border: math32.Max(edge, -inner),
	}
}
