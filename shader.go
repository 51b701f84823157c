package uishade

// Flags is the packed per-instance bit-flag word supplied by the host.
type Flags uint32

const (
	// FlagTextured modulates the fill (and border) color with a sampled
	// texture color.
	FlagTextured Flags = 1 << iota
	// FlagRightVertex and FlagBottomVertex mark which quad vertex an
	// attribute record belongs to. They matter only to the host's vertex
	// assembly and are decoded here for round-tripping.
	FlagRightVertex
	FlagBottomVertex
	// FlagBorder draws the border band with the border paint.
	FlagBorder
	// FlagBoxShadow evaluates the primitive as a blurred shadow mask.
	FlagBoxShadow
	// FlagDisableAA replaces smooth coverage with a hard step.
	FlagDisableAA
	// FlagFillStart and FlagFillEnd pad gradient samples outside the
	// length span with the edge color instead of transparency.
	FlagFillStart
	FlagFillEnd
)

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Config is the unpacked form of the flag word: one boolean per flag,
// passed explicitly into the evaluator instead of a magic mask checked ad
// hoc at each call site.
type Config struct {
	Textured     bool
	RightVertex  bool
	BottomVertex bool
	Border       bool
	BoxShadow    bool
	DisableAA    bool
	FillStart    bool
	FillEnd      bool
}

// Config unpacks the flag word.
func (f Flags) Config() Config {
	return Config{
		Textured:     f.Has(FlagTextured),
		RightVertex:  f.Has(FlagRightVertex),
		BottomVertex: f.Has(FlagBottomVertex),
		Border:       f.Has(FlagBorder),
		BoxShadow:    f.Has(FlagBoxShadow),
		DisableAA:    f.Has(FlagDisableAA),
		FillStart:    f.Has(FlagFillStart),
		FillEnd:      f.Has(FlagFillEnd),
	}
}

// Flags packs the configuration back into a flag word.
func (c Config) Flags() Flags {
	var f Flags
	set := func(on bool, mask Flags) {
		if on {
			f |= mask
		}
	}
	set(c.Textured, FlagTextured)
	set(c.RightVertex, FlagRightVertex)
	set(c.BottomVertex, FlagBottomVertex)
	set(c.Border, FlagBorder)
	set(c.BoxShadow, FlagBoxShadow)
	set(c.DisableAA, FlagDisableAA)
	set(c.FillStart, FlagFillStart)
	set(c.FillEnd, FlagFillEnd)
	return f
}

// Primitive bundles the per-instance attributes of one rounded-rectangle
// UI primitive. All fields are value-type inputs to a pure evaluation;
// nothing is mutated by Shade.
type Primitive struct {
	Geometry Node

	// Fill paints the interior (and the shadow color for shadow
	// primitives); Border paints the border band. A nil Fill defaults to
	// white, a nil Border to transparent.
	Fill   Paint
	Border Paint

	// Texture, when non-nil, is sampled for every shaded point. The
	// Textured config bit controls whether the sample modulates the
	// output.
	Texture Texture

	Config       Config
	RadiusPolicy BorderRadiusPolicy
	Antialias    Antialias

	// Clip, when non-nil, forces samples outside the rectangle (in the
	// same primitive-local space as the sample point) to transparent.
	Clip *Rect

	// Dash, when non-nil, draws the border as a dashed outline of
	// LineThickness along the perimeter.
	Dash          *DashPattern
	LineThickness float32

	// BlurRadius is the shadow Gaussian sigma for shadow primitives.
	BlurRadius float32
}

// Shade evaluates the primitive at sample point p, given relative to the
// primitive center, and returns a straight-alpha color: RGB holds the
// unmodified source color, A holds coverage times source alpha. The host
// performs the final blend.
//
// Shade is pure and safe to call concurrently from any number of
// goroutines; evaluations are data-independent with no ordering guarantee.
func (pr *Primitive) Shade(p Vec2) RGBA {
	// Sample before any conditional use. The texture lookup must not sit
	// inside divergent control flow: a memoizing host sampler has to see
	// the same access pattern whether or not the sample ends up used.
	texColor := White
	if pr.Texture != nil {
		texColor = pr.Texture.Sample(pr.uv(p))
	}

	aa := pr.Antialias
	if pr.Config.DisableAA {
		aa = AntialiasOff
	}

	var out RGBA
	switch {
	case pr.Config.BoxShadow:
		out = pr.shadeShadow(p)
	case pr.Dash != nil:
		out = pr.shadeDashedBorder(p, texColor, aa)
	default:
		out = pr.shadeNode(p, texColor, aa)
	}

	if pr.Clip != nil {
		out = ClipColor(out, p, *pr.Clip)
	}
	return out
}

// uv maps a primitive-local point to texture coordinates in [0, 1].
func (pr *Primitive) uv(p Vec2) Vec2 {
	size := pr.Geometry.Size
	if size.X <= 0 || size.Y <= 0 {
		return Vec2{}
	}
	half := pr.Geometry.HalfSize()
	return Vec2{X: (p.X + half.X) / size.X, Y: (p.Y + half.Y) / size.Y}
}

// fillColor resolves the interior color at p, modulated by the texture
// sample when the Textured bit is set.
func (pr *Primitive) fillColor(p Vec2, texColor RGBA) RGBA {
	c := White
	if pr.Fill != nil {
		c = pr.Fill.At(p)
	}
	if pr.Config.Textured {
		c = c.Modulate(texColor)
	}
	return c
}

// borderColor resolves the border-band color at p, modulated by the
// texture sample when the Textured bit is set.
func (pr *Primitive) borderColor(p Vec2, texColor RGBA) RGBA {
	c := Transparent
	if pr.Border != nil {
		c = pr.Border.At(p)
	}
	if pr.Config.Textured {
		c = c.Modulate(texColor)
	}
	return c
}

// edgeField returns the outer-boundary distance field of the geometry, for
// derivative-width antialiasing.
func (pr *Primitive) edgeField(n Node) func(Vec2) float32 {
	policy := pr.RadiusPolicy
	return func(q Vec2) float32 {
		return NodeDistance(q, n, policy).Edge
	}
}

// borderField returns the border-band distance field of the geometry.
func (pr *Primitive) borderField(n Node) func(Vec2) float32 {
	policy := pr.RadiusPolicy
	return func(q Vec2) float32 {
		return NodeDistance(q, n, policy).Border
	}
}

// shadeNode composites a plain node: border band first, then fill, then the
// antialiased silhouette fringe outside the boundary. Each branch derives
// coverage from the distance channel that selected it.
func (pr *Primitive) shadeNode(p Vec2, texColor RGBA, aa Antialias) RGBA {
	d := NodeDistance(p, pr.Geometry, pr.RadiusPolicy)

	if pr.Config.Border && d.Border <= 0 {
		width := coverageWidth(aa, pr.borderField(pr.Geometry), p)
		return pr.borderColor(p, texColor).WithCoverage(Coverage(d.Border, width))
	}
	if d.Edge <= 0 {
		width := coverageWidth(aa, pr.edgeField(pr.Geometry), p)
		return pr.fillColor(p, texColor).WithCoverage(Coverage(d.Edge, width))
	}

	// Outside the outer boundary the two channels coincide; the fringe
	// takes the outermost color so the edge fades instead of clipping.
	if pr.Config.Border {
		width := coverageWidth(aa, pr.borderField(pr.Geometry), p)
		return pr.borderColor(p, texColor).WithCoverage(Coverage(d.Border, width))
	}
	width := coverageWidth(aa, pr.edgeField(pr.Geometry), p)
	return pr.fillColor(p, texColor).WithCoverage(Coverage(d.Edge, width))
}

// shadeDashedBorder draws the border band as a dashed outline: the sample
// point is converted to an arc-length position along the perimeter, and
// only positions inside a dash segment are drawn.
func (pr *Primitive) shadeDashedBorder(p Vec2, texColor RGBA, aa Antialias) RGBA {
	g := pr.Geometry
	th := pr.LineThickness
	g.Inset = [4]float32{th, th, th, th}

	half := g.HalfSize()
	radii := ClampRadii(g.CornerRadii, half)
	if !pr.Dash.Dashed(ArcPosition(p, half, radii), Perimeter(half, radii)) {
		return Transparent
	}

	d := NodeDistance(p, g, pr.RadiusPolicy)
	width := coverageWidth(aa, pr.borderField(g), p)
	return pr.borderColor(p, texColor).WithCoverage(Coverage(d.Border, width))
}

// shadeShadow evaluates the blurred shadow mask, tinted by the fill paint.
func (pr *Primitive) shadeShadow(p Vec2) RGBA {
	half := pr.Geometry.HalfSize()
	radii := ClampRadii(pr.Geometry.CornerRadii, half)
	alpha := ShadowAlpha(p, half, radii, pr.BlurRadius)

	c := Black
	if pr.Fill != nil {
		c = pr.Fill.At(p)
	}
	return c.WithCoverage(alpha)
}
