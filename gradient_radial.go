package uishade

// RadialGradient is a two-stop radial gradient paint. The gradient position
// of a sample point is its distance from Center with the Y axis scaled by
// Ratio (an ellipse when Ratio != 1), normalized into the
// [StartLen, EndLen] span. Boundary-fill policy matches LinearGradient.
type RadialGradient struct {
	Center    Vec2
	Ratio     float32 // Y axis scale; 1 for circular
	StartLen  float32
	EndLen    float32 // must differ from StartLen
	Start     RGBA
	End       RGBA
	FillStart bool
	FillEnd   bool
}

// Distance returns the gradient-space distance of p from the center,
// with the Y offset scaled by Ratio.
func (g RadialGradient) Distance(p Vec2) float32 {
	d := p.Sub(g.Center)
	return Vec2{X: d.X, Y: d.Y * g.Ratio}.Length()
}

// At implements the Paint interface.
func (g RadialGradient) At(p Vec2) RGBA {
	t := gradientT(g.Distance(p), g.StartLen, g.EndLen)
	return gradientColor(t, g.Start, g.End, g.FillStart, g.FillEnd)
}
