// Package trace implements the recursive BSP-tree ray traversal: node
// descent, brush sweep, and polygon sweep, producing a Trace describing
// the nearest blocking hit (if any) along a segment.
package trace

import (
	"github.com/go-vbsp/vbsp-los/bsp"
	"github.com/go-vbsp/vbsp-los/vbspfile"
)

// distEpsilon is the Source-engine canonical numeric slack for brush
// plane-distance comparisons: 1/32 world unit.
const distEpsilon = 1.0 / 32.0

// splitEpsilon is the machine single-precision epsilon used to keep the
// two sub-segments of a node-plane split strictly on their side of the
// plane. It is distinct from distEpsilon.
const splitEpsilon = 1.1920929e-7

// Trace is a per-query result: mutated only by RayCast, consumed by the
// caller. A brush hit sets Brush (a copy of the hit brush) and Contents;
// starting inside a solid brush sets Contents too. A polygon hit sets
// only Fraction and EndPos. Plane and BrushSide are not populated by the
// traversal: Plane stays nil and BrushSide stays 0. Brush is nil when no
// brush hit was recorded.
type Trace struct {
	AllSolid          bool
	StartSolid        bool
	Fraction          float32
	FractionLeftSolid float32
	EndPos            [3]float32

	Plane     *bsp.Plane
	Brush     *vbspfile.Brush
	BrushSide int
	Contents  int32
}

// Options gates the two open questions left by the original
// implementation (see spec §9 / SPEC_FULL.md §4.4). The two flags default
// oppositely, per spec: the back-first split bug defaults to preserved
// (bug-for-bug), the surface hit fraction defaults to corrected.
type Options struct {
	// LegacySurfaceHitFraction reproduces the original's placeholder
	// constant 0.2 on a polygon hit instead of the true parametric hit
	// position t. The zero value (false) uses the mathematically correct
	// t; set true only for regression parity against the original.
	LegacySurfaceHitFraction bool
	// FixBackFirstSplit mirrors the front-first split fractions in the
	// back-first branch of the node-plane split instead of duplicating
	// fraction_first. The zero value (false) preserves the original's
	// duplicated-fraction behavior for bug-for-bug compatibility.
	FixBackFirstSplit bool
}

// RayCast walks model's BSP tree from the root and returns the trace of
// the segment from -> to. If the model has no planes, it returns the
// zero-obstruction trace immediately.
func RayCast(model *bsp.Model, from, to [3]float32, opts Options) Trace {
	t := Trace{Fraction: 1, FractionLeftSolid: 0}

	if len(model.Planes) == 0 {
		t.EndPos = to
		return t
	}

	descend(model, from, to, 0, 0, 1, &t, opts)

	if t.Fraction < 1 {
		for i := 0; i < 3; i++ {
			t.EndPos[i] = from[i] + t.Fraction*(to[i]-from[i])
		}
	} else {
		t.EndPos = to
	}
	return t
}
