package uishade

import (
	"image"

	"github.com/chewxy/math32"
)

// Texture supplies colors for textured fills and borders. Sample must be a
// pure function of uv (components in [0, 1]): the host may cache or
// memoize lookups, so repeated samples of the same coordinate must yield
// the same color.
type Texture interface {
	Sample(uv Vec2) RGBA
}

// ImageTexture samples an image.Image with bilinear filtering.
// UV coordinates are clamped to the image bounds.
type ImageTexture struct {
	img image.Image
}

// NewImageTexture wraps an image for sampling.
func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{img: img}
}

// Sample implements the Texture interface.
func (t *ImageTexture) Sample(uv Vec2) RGBA {
	bounds := t.img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return Transparent
	}

	// Map uv to continuous pixel coordinates, sampling at texel centers.
	fx := clamp(uv.X, 0, 1)*float32(w) - 0.5
	fy := clamp(uv.Y, 0, 1)*float32(h) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x0 += bounds.Min.X
	y0 += bounds.Min.Y
	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// texel reads one pixel with clamp-to-edge addressing.
func (t *ImageTexture) texel(x, y int) RGBA {
	bounds := t.img.Bounds()
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if x > bounds.Max.X-1 {
		x = bounds.Max.X - 1
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	if y > bounds.Max.Y-1 {
		y = bounds.Max.Y - 1
	}
	return FromColor(t.img.At(x, y))
}
