package uishade

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestFlagsConfigRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
	}{
		{"none", 0},
		{"textured only", FlagTextured},
		{"bordered fill flags", FlagBorder | FlagFillStart | FlagFillEnd},
		{"shadow without aa", FlagBoxShadow | FlagDisableAA},
		{"vertex markers", FlagRightVertex | FlagBottomVertex},
		{"everything", FlagTextured | FlagRightVertex | FlagBottomVertex |
			FlagBorder | FlagBoxShadow | FlagDisableAA | FlagFillStart | FlagFillEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Config().Flags(); got != tt.flags {
				t.Errorf("round trip = %#x, want %#x", got, tt.flags)
			}
		})
	}
}

func TestShadeFillAndTransparent(t *testing.T) {
	prim := &Primitive{
		Geometry: Node{Size: V2(100, 60)},
		Fill:     Solid{Color: Red},
	}

	// Deep interior: full coverage of the fill color.
	if got := prim.Shade(V2(0, 0)); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("interior = %+v, want %+v", got, Red)
	}

	// Well outside: fully transparent.
	if got := prim.Shade(V2(80, 0)); got.A != 0 {
		t.Errorf("exterior alpha = %v, want 0", got.A)
	}

	// Just outside the edge the antialiased fringe carries the fill
	// color at partial alpha.
	got := prim.Shade(V2(50.2, 0))
	if got.A <= 0 || got.A >= 0.5 {
		t.Errorf("fringe alpha = %v, want in (0, 0.5)", got.A)
	}
	if got.R != 1 {
		t.Errorf("fringe keeps source RGB, got %+v", got)
	}
}

func TestShadeBorderPriority(t *testing.T) {
	prim := &Primitive{
		Geometry: Node{
			Size:  V2(100, 60),
			Inset: [4]float32{5, 5, 5, 5},
		},
		Fill:   Solid{Color: Red},
		Border: Solid{Color: Blue},
		Config: Config{Border: true},
	}

	// Inside the band: border color wins.
	if got := prim.Shade(V2(0, -28)); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("band sample = %+v, want border blue", got)
	}

	// Inside the inner box: fill.
	if got := prim.Shade(V2(0, 0)); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("inner sample = %+v, want fill red", got)
	}

	// Without the border bit the band shows the fill.
	prim.Config.Border = false
	if got := prim.Shade(V2(0, -28)); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("band without border bit = %+v, want fill red", got)
	}
}

func TestShadeDisableAA(t *testing.T) {
	prim := &Primitive{
		Geometry: Node{Size: V2(100, 60)},
		Fill:     Solid{Color: Red},
		Config:   Config{DisableAA: true},
	}

	// Hard step: no partial alpha on either side of the boundary.
	if got := prim.Shade(V2(49.9, 0)); got.A != 1 {
		t.Errorf("inside hard edge alpha = %v, want 1", got.A)
	}
	if got := prim.Shade(V2(50.1, 0)); got.A != 0 {
		t.Errorf("outside hard edge alpha = %v, want 0", got.A)
	}
}

// countingTexture records how often it is sampled.
type countingTexture struct {
	samples int
	color   RGBA
}

func (c *countingTexture) Sample(Vec2) RGBA {
	c.samples++
	return c.color
}

func TestShadeSamplesTextureUnconditionally(t *testing.T) {
	// The texture lookup must happen even when the textured bit is off
	// and even for samples that end up transparent, so a host-side
	// sampler always sees a uniform access pattern.
	tex := &countingTexture{color: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}}
	prim := &Primitive{
		Geometry: Node{Size: V2(100, 60)},
		Fill:     Solid{Color: White},
		Texture:  tex,
	}

	points := []Vec2{{0, 0}, {80, 0}, {-70, 40}}
	for _, p := range points {
		prim.Shade(p)
	}
	if tex.samples != len(points) {
		t.Fatalf("texture sampled %d times for %d shaded points", tex.samples, len(points))
	}

	// With the textured bit set, the sample modulates the fill.
	prim.Config.Textured = true
	got := prim.Shade(V2(0, 0))
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsEqual(got, want, colorEpsilon) {
		t.Errorf("textured fill = %+v, want %+v", got, want)
	}
}

func TestShadeClip(t *testing.T) {
	clip := Rect{Min: V2(-10, -10), Max: V2(10, 10)}
	prim := &Primitive{
		Geometry: Node{Size: V2(100, 60)},
		Fill:     Solid{Color: Red},
		Clip:     &clip,
	}

	if got := prim.Shade(V2(0, 0)); got.A != 1 {
		t.Errorf("inside clip alpha = %v, want 1", got.A)
	}
	// Inside the box but outside the clip rectangle: transparent, no
	// matter what the shading computed.
	if got := prim.Shade(V2(20, 0)); got != Transparent {
		t.Errorf("outside clip = %+v, want transparent", got)
	}
}

func TestShadeCoverageScalesSourceAlpha(t *testing.T) {
	// Straight-alpha output: RGB stays at the source color, alpha is
	// coverage times source alpha.
	prim := &Primitive{
		Geometry: Node{Size: V2(100, 60)},
		Fill:     Solid{Color: RGBA{R: 1, A: 0.5}},
	}

	got := prim.Shade(V2(0, 0))
	if got.R != 1 || math32.Abs(got.A-0.5) > colorEpsilon {
		t.Errorf("interior = %+v, want alpha 0.5 with unmodified RGB", got)
	}

	boundary := prim.Shade(V2(50, 0))
	if math32.Abs(boundary.A-0.25) > 1e-3 {
		t.Errorf("boundary alpha = %v, want 0.25 (half coverage of 0.5)", boundary.A)
	}
}

func TestShadeDashedBorder(t *testing.T) {
	// A 100x60 zero-radius outline has perimeter 320; dash=10, break=10
	// tiles it in 16 segments without rescaling.
	prim := &Primitive{
		Geometry:      Node{Size: V2(100, 60)},
		Border:        Solid{Color: Blue},
		Config:        Config{Border: true},
		Dash:          &DashPattern{DashLength: 10, BreakLength: 10},
		LineThickness: 4,
	}

	// The walk starts at the left edge midpoint: arc position 0 is in
	// the first dash.
	if got := prim.Shade(V2(-49, 0)); got.A == 0 {
		t.Error("dash start should be drawn")
	}
	// Arc position 15 (up the left edge) falls in the first break.
	if got := prim.Shade(V2(-49, -15)); got.A != 0 {
		t.Errorf("break region drawn: %+v", got)
	}
	// Inside the hole of the outline nothing is drawn.
	if got := prim.Shade(V2(0, 0)); got.A != 0 {
		t.Errorf("outline interior drawn: %+v", got)
	}
}

func TestShadeShadow(t *testing.T) {
	prim := &Primitive{
		Geometry:   Node{Size: V2(100, 60)},
		Fill:       Solid{Color: Black},
		Config:     Config{BoxShadow: true},
		BlurRadius: 2,
	}

	center := prim.Shade(V2(0, 0))
	if center.A < 0.95 {
		t.Errorf("shadow center alpha = %v, want near 1", center.A)
	}
	far := prim.Shade(V2(120, 0))
	if far.A > 0.01 {
		t.Errorf("shadow far alpha = %v, want near 0", far.A)
	}
}
