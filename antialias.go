package uishade

import "github.com/chewxy/math32"

// Antialias selects how a signed distance maps to edge coverage.
type Antialias uint8

const (
	// AntialiasFixed uses a fixed smoothstep transition width.
	AntialiasFixed Antialias = iota

	// AntialiasDerivative derives the transition width from the local
	// screen-space rate of change of the distance field.
	AntialiasDerivative

	// AntialiasOff produces a hard step at the boundary.
	AntialiasOff
)

// antialiasWidth is the fixed smoothstep transition half-width in pixels.
// 0.7 produces smooth edges at standard DPI.
const antialiasWidth = 0.7

// Coverage converts a signed distance to an opacity value using a Hermite
// smoothstep over [-width, +width]:
//
//	d <= -width => 1.0 (fully inside)
//	d >= +width => 0.0 (fully outside)
//	otherwise   => monotonic smooth transition
//
// A width <= 0 degenerates to a hard step at the boundary, with points
// exactly on the boundary counting as inside.
func Coverage(d, width float32) float32 {
	if width <= 0 {
		if d > 0 {
			return 0
		}
		return 1
	}
	if d >= width {
		return 0
	}
	if d <= -width {
		return 1
	}
	t := (d + width) / (2 * width)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - t*t*(3-2*t)
}

// DerivativeWidth estimates the local rate of change of a distance field at
// p by central differences, the CPU stand-in for screen-space derivatives.
// The result is floored so a locally flat field still gets a usable
// transition width.
func DerivativeWidth(field func(Vec2) float32, p Vec2) float32 {
	const h = 0.5
	dx := field(Vec2{X: p.X + h, Y: p.Y}) - field(Vec2{X: p.X - h, Y: p.Y})
	dy := field(Vec2{X: p.X, Y: p.Y + h}) - field(Vec2{X: p.X, Y: p.Y - h})
	rate := Vec2{X: dx, Y: dy}.Mul(1 / (2 * h)).Length()
	return math32.Max(rate, 1e-3) * antialiasWidth
}

// coverageWidth resolves the transition width for one distance channel at p
// under the given antialias mode. field is only evaluated in derivative
// mode.
func coverageWidth(mode Antialias, field func(Vec2) float32, p Vec2) float32 {
	switch mode {
	case AntialiasOff:
		return 0
	case AntialiasDerivative:
		return DerivativeWidth(field, p)
	default:
		return antialiasWidth
	}
}
