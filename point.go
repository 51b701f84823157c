package uishade

import "github.com/chewxy/math32"

// Vec2 represents a 2D point or vector with float32 components,
// the precision the per-pixel shading math is defined in.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (p Vec2) Add(q Vec2) Vec2 {
	return Vec2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two vectors.
func (p Vec2) Sub(q Vec2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vector scaled by a scalar.
func (p Vec2) Mul(s float32) Vec2 {
	return Vec2{X: p.X * s, Y: p.Y * s}
}

// MulV returns the component-wise product of two vectors.
func (p Vec2) MulV(q Vec2) Vec2 {
	return Vec2{X: p.X * q.X, Y: p.Y * q.Y}
}

// AddScalar adds s to both components.
func (p Vec2) AddScalar(s float32) Vec2 {
	return Vec2{X: p.X + s, Y: p.Y + s}
}

// Dot returns the dot product of two vectors.
func (p Vec2) Dot(q Vec2) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Abs returns the component-wise absolute value.
func (p Vec2) Abs() Vec2 {
	return Vec2{X: math32.Abs(p.X), Y: math32.Abs(p.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (p Vec2) Max(q Vec2) Vec2 {
	return Vec2{X: math32.Max(p.X, q.X), Y: math32.Max(p.Y, q.Y)}
}

// Min returns the component-wise minimum of two vectors.
func (p Vec2) Min(q Vec2) Vec2 {
	return Vec2{X: math32.Min(p.X, q.X), Y: math32.Min(p.Y, q.Y)}
}

// Length returns the length of the vector.
func (p Vec2) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Vec2) Distance(q Vec2) float32 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Vec2) Normalize() Vec2 {
	length := p.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: p.X / length, Y: p.Y / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Vec2) Lerp(q Vec2, t float32) Vec2 {
	return Vec2{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// mix performs linear interpolation between two scalars.
func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// clamp limits x to the range [lo, hi].
func clamp(x, lo, hi float32) float32 {
	return math32.Min(math32.Max(x, lo), hi)
}

// stepGT returns 1 when x is strictly positive, 0 otherwise.
// It is the blend factor for branchless quadrant selection.
func stepGT(x float32) float32 {
	if x > 0 {
		return 1
	}
	return 0
}
