package uishade

import "github.com/chewxy/math32"

// minShadowSigma floors the blur sigma so a zero blur radius never divides
// by zero or produces non-finite results.
const minShadowSigma = 0.01

// shadowSamples is the number of quadrature strips along y. Four strips
// weighted by the Gaussian kernel are enough for visually smooth shadows.
const shadowSamples = 4

// gaussian is the normalized Gaussian probability density.
func gaussian(x, sigma float32) float32 {
	return math32.Exp(-(x*x)/(2*sigma*sigma)) / (math32.Sqrt(2*math32.Pi) * sigma)
}

// rowBlur returns the Gaussian-blurred coverage along x of one horizontal
// slice of the rounded box. At height y the slice spans [-c, c], where c
// shrinks inside the corner arcs; the blurred coverage of the span has the
// closed form 0.5*(erf((x+c)/(sigma*sqrt(2))) - erf((x-c)/(sigma*sqrt(2))))
// from integrating the kernel across it.
func rowBlur(x, y, sigma, corner float32, halfSize Vec2) float32 {
	d := math32.Min(halfSize.Y-corner-math32.Abs(y), 0)
	c := halfSize.X - corner + math32.Sqrt(math32.Max(0, corner*corner-d*d))
	k := math32.Sqrt(0.5) / sigma
	return 0.5 * (math32.Erf((x+c)*k) - math32.Erf((x-c)*k))
}

// ShadowAlpha approximates the coverage at point p (shadow-space, relative
// to the box center) of a rounded box blurred by a Gaussian of the given
// sigma. The x extent is integrated in closed form per horizontal strip;
// a small fixed number of strips, weighted by the Gaussian kernel, covers
// the y extent. Sigma values at or below zero are floored to a small
// positive minimum.
func ShadowAlpha(p Vec2, halfSize Vec2, radii [4]float32, sigma float32) float32 {
	sigma = math32.Max(sigma, minShadowSigma)

	// The kernel is negligible beyond 3 sigma, so only sample strips that
	// overlap both the kernel support and the box's vertical extent.
	low := p.Y - halfSize.Y
	high := p.Y + halfSize.Y
	start := clamp(-3*sigma, low, high)
	end := clamp(3*sigma, low, high)

	step := (end - start) / shadowSamples
	if step <= 0 {
		return 0
	}

	y := start + step*0.5
	var alpha float32
	for i := 0; i < shadowSamples; i++ {
		row := p.Y - y
		corner := quadrantRadius(Vec2{X: p.X, Y: row}, radii)
		alpha += rowBlur(p.X, row, sigma, corner, halfSize) * gaussian(y, sigma) * step
		y += step
	}
	return clamp(alpha, 0, 1)
}
