// Command uishade-render renders a YAML scene of rounded-rectangle UI
// primitives to a PNG image. It is a host around the uishade evaluator:
// the scene file supplies per-primitive attributes, the renderer walks the
// pixels.
//
// Usage:
//
//	uishade-render -scene scene.yaml -out out.png [-workers 4] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/uishade"
	"gopkg.in/yaml.v3"

	// Texture decoders beyond PNG: bmp and webp via x/image, jpeg from
	// the standard library.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func main() {
	scenePath := flag.String("scene", "", "scene YAML file (required)")
	outPath := flag.String("out", "out.png", "output PNG file")
	workers := flag.Int("workers", 0, "render workers (0 = one per CPU)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	uishade.SetLogger(logger)

	if err := run(*scenePath, *outPath, *workers); err != nil {
		logger.Error("render failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(scenePath, outPath string, workers int) error {
	if scenePath == "" {
		return errors.New("missing required -scene flag")
	}

	scene, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	pix := uishade.NewPixmap(scene.Width, scene.Height)
	if scene.Background != "" {
		pix.Clear(uishade.Hex(scene.Background))
	}

	renderer := uishade.NewRenderer(pix)
	if workers > 0 {
		renderer.SetWorkers(workers)
	}

	dir := filepath.Dir(scenePath)
	for i := range scene.Primitives {
		spec := &scene.Primitives[i]
		prim, err := spec.build(dir)
		if err != nil {
			return fmt.Errorf("primitive %d: %w", i, err)
		}
		renderer.Draw(prim, spec.Position.X, spec.Position.Y)
	}

	if err := pix.SavePNG(outPath); err != nil {
		return err
	}
	slog.Info("scene rendered",
		slog.String("out", outPath),
		slog.Int("primitives", len(scene.Primitives)))
	return nil
}

// Scene is the top-level YAML scene description.
type Scene struct {
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Background string          `yaml:"background,omitempty"`
	Primitives []PrimitiveSpec `yaml:"primitives"`
}

// Point is a 2D coordinate in scene space.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// GradientSpec describes a linear or radial gradient fill.
type GradientSpec struct {
	Kind       string  `yaml:"kind"` // "linear" or "radial"
	Focal      Point   `yaml:"focal"`
	Angle      float32 `yaml:"angle,omitempty"` // degrees, linear only
	Ratio      float32 `yaml:"ratio,omitempty"` // radial only, default 1
	StartLen   float32 `yaml:"start_len"`
	EndLen     float32 `yaml:"end_len"`
	MidLen     float32 `yaml:"mid_len,omitempty"` // optional third stop
	StartColor string  `yaml:"start_color"`
	EndColor   string  `yaml:"end_color"`
	FillStart  bool    `yaml:"fill_start,omitempty"`
	FillEnd    bool    `yaml:"fill_end,omitempty"`
}

// DashSpec describes a dashed border pattern.
type DashSpec struct {
	DashLength  float32 `yaml:"dash_length"`
	BreakLength float32 `yaml:"break_length"`
	Offset      float32 `yaml:"offset,omitempty"`
}

// RectSpec describes a clip rectangle in primitive-local coordinates.
type RectSpec struct {
	MinX float32 `yaml:"min_x"`
	MinY float32 `yaml:"min_y"`
	MaxX float32 `yaml:"max_x"`
	MaxY float32 `yaml:"max_y"`
}

// PrimitiveSpec is one primitive entry in the scene file.
type PrimitiveSpec struct {
	Kind        string        `yaml:"kind"` // "node", "dashed", "shadow"
	Position    Point         `yaml:"position"`
	Width       float32       `yaml:"width"`
	Height      float32       `yaml:"height"`
	CornerRadii [4]float32    `yaml:"corner_radii,omitempty"`
	Inset       [4]float32    `yaml:"inset,omitempty"`
	Color       string        `yaml:"color,omitempty"`
	BorderColor string        `yaml:"border_color,omitempty"`
	Gradient    *GradientSpec `yaml:"gradient,omitempty"`
	Dash        *DashSpec     `yaml:"dash,omitempty"`
	Thickness   float32       `yaml:"thickness,omitempty"`
	BlurRadius  float32       `yaml:"blur_radius,omitempty"`
	Texture     string        `yaml:"texture,omitempty"`
	DisableAA   bool          `yaml:"disable_aa,omitempty"`
	Clip        *RectSpec     `yaml:"clip,omitempty"`
}

// loadScene reads and validates a scene file.
func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, fmt.Errorf("scene size %dx%d is not positive", scene.Width, scene.Height)
	}
	return &scene, nil
}

// build converts a scene entry into an evaluator primitive. Texture paths
// are resolved relative to dir.
func (s *PrimitiveSpec) build(dir string) (*uishade.Primitive, error) {
	prim := &uishade.Primitive{
		Geometry: uishade.Node{
			Size:        uishade.V2(s.Width, s.Height),
			CornerRadii: s.CornerRadii,
			Inset:       s.Inset,
		},
		RadiusPolicy: uishade.RadiusClampedSeamCorrected,
	}

	fill, err := s.fillPaint()
	if err != nil {
		return nil, err
	}
	prim.Fill = fill

	if s.BorderColor != "" {
		prim.Border = uishade.Solid{Color: uishade.Hex(s.BorderColor)}
		prim.Config.Border = true
	}
	prim.Config.DisableAA = s.DisableAA

	switch s.Kind {
	case "", "node":
	case "dashed":
		if s.Dash == nil {
			return nil, errors.New("dashed primitive needs a dash pattern")
		}
		if s.Dash.DashLength+s.Dash.BreakLength <= 0 {
			return nil, errors.New("dash and break lengths sum to zero")
		}
		prim.Dash = &uishade.DashPattern{
			DashLength:  s.Dash.DashLength,
			BreakLength: s.Dash.BreakLength,
			Offset:      s.Dash.Offset,
		}
		prim.LineThickness = s.Thickness
		if prim.Border == nil {
			prim.Border = uishade.Solid{Color: uishade.Hex(s.Color)}
		}
		prim.Config.Border = true
	case "shadow":
		prim.Config.BoxShadow = true
		prim.BlurRadius = s.BlurRadius
	default:
		return nil, fmt.Errorf("unknown primitive kind %q", s.Kind)
	}

	if s.Texture != "" {
		tex, err := loadTexture(filepath.Join(dir, s.Texture))
		if err != nil {
			return nil, err
		}
		prim.Texture = tex
		prim.Config.Textured = true
	}

	if s.Clip != nil {
		prim.Clip = &uishade.Rect{
			Min: uishade.V2(s.Clip.MinX, s.Clip.MinY),
			Max: uishade.V2(s.Clip.MaxX, s.Clip.MaxY),
		}
	}
	return prim, nil
}

// fillPaint resolves the primitive's fill: a gradient when specified,
// otherwise a solid color.
func (s *PrimitiveSpec) fillPaint() (uishade.Paint, error) {
	if s.Gradient == nil {
		if s.Color == "" {
			return nil, nil
		}
		return uishade.Solid{Color: uishade.Hex(s.Color)}, nil
	}

	g := s.Gradient
	if g.EndLen == g.StartLen {
		return nil, errors.New("gradient start and end lengths are equal")
	}

	switch g.Kind {
	case "", "linear":
		linear := uishade.LinearGradient{
			FocalPoint: uishade.V2(g.Focal.X, g.Focal.Y),
			Direction:  directionFromAngle(g.Angle),
			StartLen:   g.StartLen,
			EndLen:     g.EndLen,
			Start:      uishade.Hex(g.StartColor),
			End:        uishade.Hex(g.EndColor),
			FillStart:  g.FillStart,
			FillEnd:    g.FillEnd,
		}
		if g.MidLen != 0 {
			return uishade.ThreeStopLinearGradient{LinearGradient: linear, MidLen: g.MidLen}, nil
		}
		return linear, nil
	case "radial":
		ratio := g.Ratio
		if ratio == 0 {
			ratio = 1
		}
		return uishade.RadialGradient{
			Center:    uishade.V2(g.Focal.X, g.Focal.Y),
			Ratio:     ratio,
			StartLen:  g.StartLen,
			EndLen:    g.EndLen,
			Start:     uishade.Hex(g.StartColor),
			End:       uishade.Hex(g.EndColor),
			FillStart: g.FillStart,
			FillEnd:   g.FillEnd,
		}, nil
	default:
		return nil, fmt.Errorf("unknown gradient kind %q", g.Kind)
	}
}

// directionFromAngle converts degrees to a unit direction vector.
func directionFromAngle(degrees float32) uishade.Vec2 {
	rad := float64(degrees) * (math.Pi / 180)
	return uishade.V2(float32(math.Cos(rad)), float32(math.Sin(rad)))
}

// loadTexture opens and decodes an image file into a sampler.
func loadTexture(path string) (uishade.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return uishade.NewImageTexture(img), nil
}
