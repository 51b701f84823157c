package uishade

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/chewxy/math32"
)

// Renderer is host-side plumbing that evaluates primitives over a pixmap.
// The shading math itself never decides which pixels are visited; the
// renderer simply walks every pixel of a primitive's bounding rectangle
// and composites the shaded color.
//
// Rows are split into bands evaluated by worker goroutines. Evaluations
// are pure and data-independent, so the only synchronization is the final
// wait.
type Renderer struct {
	pix     *Pixmap
	workers int
}

// NewRenderer creates a renderer targeting the given pixmap, using one
// worker per CPU.
func NewRenderer(pix *Pixmap) *Renderer {
	return &Renderer{pix: pix, workers: runtime.NumCPU()}
}

// SetWorkers overrides the worker count. Values below 1 reset to one
// worker.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

// bounds returns the pixel bounding rectangle of a primitive centered at
// (cx, cy), padded for antialiasing and shadow blur.
func (r *Renderer) bounds(prim *Primitive, cx, cy float32) (x0, y0, x1, y1 int) {
	half := prim.Geometry.HalfSize()
	pad := float32(2 * antialiasWidth)
	if prim.Config.BoxShadow {
		pad += 3 * math32.Max(prim.BlurRadius, minShadowSigma)
	}

	x0 = int(math32.Floor(cx - half.X - pad))
	y0 = int(math32.Floor(cy - half.Y - pad))
	x1 = int(math32.Ceil(cx + half.X + pad))
	y1 = int(math32.Ceil(cy + half.Y + pad))

	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, r.pix.Width())
	y1 = min(y1, r.pix.Height())
	return x0, y0, x1, y1
}

// Draw shades prim, whose center is placed at (cx, cy) in pixmap
// coordinates, and composites it source-over into the pixmap.
func (r *Renderer) Draw(prim *Primitive, cx, cy float32) {
	start := time.Now()
	x0, y0, x1, y1 := r.bounds(prim, cx, cy)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	workers := min(r.workers, y1-y0)
	rows := y1 - y0
	band := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		bandY0 := y0 + w*band
		bandY1 := min(bandY0+band, y1)
		if bandY0 >= bandY1 {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.drawBand(prim, cx, cy, x0, x1, bandY0, bandY1)
		}()
	}
	wg.Wait()

	Logger().Debug("draw primitive",
		slog.Int("x0", x0), slog.Int("y0", y0),
		slog.Int("x1", x1), slog.Int("y1", y1),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(start)))
}

// drawBand shades one horizontal band of rows. Sample points are pixel
// centers, translated into primitive-local space.
func (r *Renderer) drawBand(prim *Primitive, cx, cy float32, x0, x1, y0, y1 int) {
	for y := y0; y < y1; y++ {
		py := float32(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			px := float32(x) + 0.5 - cx
			c := prim.Shade(Vec2{X: px, Y: py})
			if c.A > 0 {
				r.pix.BlendPixel(x, y, c)
			}
		}
	}
}
