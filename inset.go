package uishade

import "github.com/chewxy/math32"

// BorderRadiusPolicy selects how the inner (border-inset) rounded box
// derives its corner radii. One policy is chosen per primitive instead of
// keeping separate, partially redundant distance functions.
type BorderRadiusPolicy uint8

const (
	// RadiusClamped reduces each inner radius by the larger adjacent inset
	// and clamps it into [0, min(inner half-size)]. Canonical policy.
	RadiusClamped BorderRadiusPolicy = iota

	// RadiusClampedSeamCorrected is RadiusClamped plus a near-boundary
	// correction that tightens the inner edge in quadrants with unequal
	// insets, avoiding a visible seam where one inset is much larger than
	// its neighbor.
	RadiusClampedSeamCorrected

	// RadiusUnclamped reduces each inner radius by the larger adjacent
	// inset and only floors it at zero, skipping the degenerate-inset rule
	// and the inner half-size clamp. Cheaper, and exact for symmetric
	// insets no larger than the radius; with asymmetric or oversized
	// insets the inner radius can exceed the inner half-size, distorting
	// the inner corner arc by up to the excess.
	RadiusUnclamped
)

// innerCornerRadius reduces one corner radius by the larger of its two
// adjacent insets. When one inset is non-positive and the other positive
// while their sum is non-positive, the interior is ill-defined at that
// corner and the radius is forced to exactly zero instead of going
// negative.
func innerCornerRadius(r, a, b float32) float32 {
	if math32.Min(a, b) <= 0 && math32.Max(a, b) > 0 && a+b <= 0 {
		return 0
	}
	return r - math32.Max(a, b)
}

// innerRadii derives the inner box corner radii from the outer radii and
// the per-edge insets under the given policy. innerHalf is the inset box
// half-size, already floored at zero.
func innerRadii(radii [4]float32, inset [4]float32, innerHalf Vec2, policy BorderRadiusPolicy) [4]float32 {
	if policy == RadiusUnclamped {
		return [4]float32{
			math32.Max(radii[CornerTopLeft]-math32.Max(inset[InsetLeft], inset[InsetTop]), 0),
			math32.Max(radii[CornerTopRight]-math32.Max(inset[InsetRight], inset[InsetTop]), 0),
			math32.Max(radii[CornerBottomRight]-math32.Max(inset[InsetRight], inset[InsetBottom]), 0),
			math32.Max(radii[CornerBottomLeft]-math32.Max(inset[InsetLeft], inset[InsetBottom]), 0),
		}
	}

	r := [4]float32{
		innerCornerRadius(radii[CornerTopLeft], inset[InsetLeft], inset[InsetTop]),
		innerCornerRadius(radii[CornerTopRight], inset[InsetRight], inset[InsetTop]),
		innerCornerRadius(radii[CornerBottomRight], inset[InsetRight], inset[InsetBottom]),
		innerCornerRadius(radii[CornerBottomLeft], inset[InsetLeft], inset[InsetBottom]),
	}
	return ClampRadii(r, innerHalf)
}

// InsetRoundedBoxDistance returns the signed distance from p (relative to
// the outer box center) to the inner rounded box obtained by shrinking the
// outer box by the per-edge insets. Insets that would produce a negative
// inner half-size collapse it to exactly zero, never negative.
func InsetRoundedBoxDistance(p Vec2, halfSize Vec2, radii, inset [4]float32, policy BorderRadiusPolicy) float32 {
	inner := InsetBox(Box{HalfSize: halfSize}, inset)
	innerHalf := inner.HalfSize.Max(Vec2{})
	r := innerRadii(radii, inset, innerHalf, policy)
	return RoundedBoxDistance(p.Sub(inner.Center), innerHalf, r)
}
