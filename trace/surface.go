package trace

import (
	"math"

	"github.com/go-vbsp/vbsp-los/bsp"
	"github.com/go-vbsp/vbsp-los/vmath"
)

// sweepSurface tests the from->to segment against faceIdx's polygon:
// first the face plane, then each edge plane as a half-space clip. See
// spec.md §4.4.3.
func sweepSurface(model *bsp.Model, from, to [3]float32, faceIdx int, t *Trace, opts Options) {
	poly, ok := model.PolygonForFace(faceIdx)
	if !ok {
		return
	}

	d1 := vmath.Dot(poly.Plane.Normal, from) - poly.Plane.Distance
	d2 := vmath.Dot(poly.Plane.Normal, to) - poly.Plane.Distance

	if (d1 > 0) == (d2 > 0) {
		return
	}
	if float32(math.Abs(float64(d1-d2))) < distEpsilon {
		return
	}

	hitFraction := d1 / (d1 - d2)
	if hitFraction <= 0 {
		return
	}

	var p [3]float32
	for i := 0; i < 3; i++ {
		p[i] = from[i] + hitFraction*(to[i]-from[i])
	}

	for _, edgePlane := range poly.EdgePlanes {
		if vmath.Dot(edgePlane.Normal, p) < 0 {
			return
		}
	}

	if opts.LegacySurfaceHitFraction {
		t.Fraction = 0.2 // matches the TODO left in the original source; see Options.
	} else {
		t.Fraction = hitFraction
	}
	t.EndPos = p
}
