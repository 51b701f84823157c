package uishade

import "testing"

func TestPixmapSetGet(t *testing.T) {
	pix := NewPixmap(4, 3)
	if pix.Width() != 4 || pix.Height() != 3 {
		t.Fatalf("dimensions = %dx%d", pix.Width(), pix.Height())
	}

	pix.SetPixel(1, 2, Red)
	if got := pix.GetPixel(1, 2); !colorsEqual(got, Red, 1.0/255) {
		t.Errorf("GetPixel = %+v, want red", got)
	}

	// Out-of-bounds access is a no-op read and write.
	pix.SetPixel(-1, 0, Red)
	pix.SetPixel(4, 0, Red)
	if got := pix.GetPixel(10, 10); got != Transparent {
		t.Errorf("out-of-bounds read = %+v, want transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pix := NewPixmap(3, 3)
	pix.Clear(Green)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pix.GetPixel(x, y); !colorsEqual(got, Green, 1.0/255) {
				t.Fatalf("pixel (%d,%d) = %+v after clear", x, y, got)
			}
		}
	}
}

func TestBlendPixelSourceOver(t *testing.T) {
	pix := NewPixmap(1, 1)

	// Half-transparent red over opaque white.
	pix.SetPixel(0, 0, White)
	pix.BlendPixel(0, 0, RGBA{R: 1, A: 0.5})
	want := RGBA{R: 1, G: 0.5, B: 0.5, A: 1}
	if got := pix.GetPixel(0, 0); !colorsEqual(got, want, 2.0/255) {
		t.Errorf("blend over white = %+v, want %+v", got, want)
	}

	// Over a transparent destination the source passes through.
	pix.SetPixel(0, 0, Transparent)
	pix.BlendPixel(0, 0, RGBA{R: 1, A: 0.5})
	want = RGBA{R: 1, A: 0.5}
	if got := pix.GetPixel(0, 0); !colorsEqual(got, want, 2.0/255) {
		t.Errorf("blend over transparent = %+v, want %+v", got, want)
	}

	// Opaque source replaces the destination.
	pix.BlendPixel(0, 0, Blue)
	if got := pix.GetPixel(0, 0); !colorsEqual(got, Blue, 1.0/255) {
		t.Errorf("opaque blend = %+v, want blue", got)
	}

	// Zero-alpha source leaves the destination untouched.
	pix.BlendPixel(0, 0, RGBA{R: 1})
	if got := pix.GetPixel(0, 0); !colorsEqual(got, Blue, 1.0/255) {
		t.Errorf("zero-alpha blend changed pixel: %+v", got)
	}
}

func TestPixmapImage(t *testing.T) {
	pix := NewPixmap(2, 1)
	pix.SetPixel(0, 0, Red)
	pix.SetPixel(1, 0, RGBA{G: 1, A: 0.5})

	img := pix.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if got := FromColor(img.At(0, 0)); !colorsEqual(got, Red, 1.0/255) {
		t.Errorf("image pixel (0,0) = %+v", got)
	}
	if got := FromColor(img.At(1, 0)); !colorsEqual(got, RGBA{G: 1, A: 0.5}, 1.0/255) {
		t.Errorf("image pixel (1,0) = %+v", got)
	}
}
