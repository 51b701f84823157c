// Package uishade implements the per-pixel shading math for axis-aligned
// rounded-rectangle UI primitives: signed-distance-field geometry for the
// outer box and its border-inset inner box, antialiased coverage, linear
// and radial gradients, dashed outlines measured along the perimeter, and
// closed-form Gaussian box shadows.
//
// The package is the computational core of a retained-mode UI renderer.
// Given a primitive's attributes and a sample point relative to its
// center, [Primitive.Shade] returns one straight-alpha RGBA color; the
// host decides which pixels are visited and performs the final blend.
// All evaluation functions are pure, allocate nothing, and are safe for
// unbounded concurrent use.
//
// Degenerate numeric inputs (negative or oversized corner radii, insets
// larger than the box, zero blur radius) are absorbed by clamping rather
// than reported as errors.
package uishade
