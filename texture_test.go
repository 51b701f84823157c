package uishade

import (
	"image"
	"image/color"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestImageTextureSample(t *testing.T) {
	tex := NewImageTexture(testImage())

	tests := []struct {
		name string
		uv   Vec2
		want RGBA
	}{
		{"first texel center", V2(0.25, 0.25), Red},
		{"second texel center", V2(0.75, 0.25), Green},
		{"image center averages all four", V2(0.5, 0.5), RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"midpoint of top row", V2(0.5, 0.25), RGBA{R: 0.5, G: 0.5, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Sample(tt.uv)
			if !colorsEqual(got, tt.want, 1.0/255) {
				t.Errorf("Sample(%v) = %+v, want %+v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestImageTextureClampToEdge(t *testing.T) {
	tex := NewImageTexture(testImage())

	// Corners and out-of-range coordinates resolve to the nearest texel.
	tests := []struct {
		name string
		uv   Vec2
		want RGBA
	}{
		{"top-left corner", V2(0, 0), Red},
		{"bottom-right corner", V2(1, 1), White},
		{"uv below range", V2(-0.5, -2), Red},
		{"uv above range", V2(3, 1.5), White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Sample(tt.uv)
			if !colorsEqual(got, tt.want, 1.0/255) {
				t.Errorf("Sample(%v) = %+v, want %+v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestImageTextureSubImage(t *testing.T) {
	// Sampling respects non-zero image origins.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 2, color.NRGBA{B: 255, A: 255})
	sub := img.SubImage(image.Rect(2, 2, 3, 3)).(*image.NRGBA)

	tex := NewImageTexture(sub)
	if got := tex.Sample(V2(0.5, 0.5)); !colorsEqual(got, Blue, 1.0/255) {
		t.Errorf("sub-image sample = %+v, want %+v", got, Blue)
	}
}
