package uishade

// LinearGradient is a two-stop linear gradient paint. The gradient
// position of a sample point is its distance to the axis line through
// FocalPoint along Direction, normalized into the [StartLen, EndLen] span.
//
// FillStart and FillEnd control the boundary-fill policy outside the span:
// when unset, samples before the start (or past the end) are transparent
// rather than padded with the edge color.
type LinearGradient struct {
	FocalPoint Vec2
	Direction  Vec2 // unit length
	StartLen   float32
	EndLen     float32 // must differ from StartLen
	Start      RGBA
	End        RGBA
	FillStart  bool
	FillEnd    bool
}

// Distance returns the gradient-space distance of p: the distance from p to
// its projection onto the line through FocalPoint along Direction.
func (g LinearGradient) Distance(p Vec2) float32 {
	rel := p.Sub(g.FocalPoint)
	projection := g.FocalPoint.Add(g.Direction.Mul(rel.Dot(g.Direction)))
	return p.Distance(projection)
}

// At implements the Paint interface.
func (g LinearGradient) At(p Vec2) RGBA {
	t := gradientT(g.Distance(p), g.StartLen, g.EndLen)
	return gradientColor(t, g.Start, g.End, g.FillStart, g.FillEnd)
}

// ThreeStopLinearGradient adds a middle stop at MidLen whose color is the
// implicit midpoint (average) of the start and end colors. Each segment
// interpolates with the same clamped-t logic as the two-stop gradient.
type ThreeStopLinearGradient struct {
	LinearGradient
	MidLen float32 // must differ from both StartLen and EndLen
}

// At implements the Paint interface.
func (g ThreeStopLinearGradient) At(p Vec2) RGBA {
	d := g.Distance(p)
	mid := g.Start.Lerp(g.End, 0.5)
	if d <= g.MidLen {
		t := gradientT(d, g.StartLen, g.MidLen)
		return gradientColor(t, g.Start, mid, g.FillStart, true)
	}
	t := gradientT(d, g.MidLen, g.EndLen)
	return gradientColor(t, mid, g.End, true, g.FillEnd)
}
