package trace

import "github.com/go-vbsp/vbsp-los/bsp"

// IsVisible runs RayCast from -> to and reports whether the entire
// segment is unobstructed. The segment is unordered: IsVisible(a, b)
// always agrees with IsVisible(b, a).
func IsVisible(model *bsp.Model, from, to [3]float32, opts Options) bool {
	t := RayCast(model, from, to, opts)
	return t.Fraction >= 1
}
