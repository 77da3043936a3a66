package trace

import (
	"github.com/go-vbsp/vbsp-los/bsp"
	"github.com/go-vbsp/vbsp-los/vbspfile"
	"github.com/go-vbsp/vbsp-los/vmath"
)

// sweepBrush intersects the from->to segment against one brush's
// half-spaces and folds the result into t. See spec.md §4.4.2.
func sweepBrush(model *bsp.Model, from, to [3]float32, brush *vbspfile.Brush, t *Trace) {
	if brush.NumSides == 0 {
		return
	}

	enter := float32(-99)
	leave := float32(1)
	startsOut := false
	endsOut := false

	for i := int32(0); i < brush.NumSides; i++ {
		sideIdx := int(brush.FirstSide + i)
		if sideIdx < 0 || sideIdx >= len(model.BrushSides) {
			continue
		}
		side := model.BrushSides[sideIdx]
		if side.Bevel != 0 {
			continue
		}
		if int(side.PlaneNum) >= len(model.Planes) {
			continue
		}
		plane := model.Planes[side.PlaneNum]

		sd := vmath.Dot(from, plane.Normal) - plane.Distance
		ed := vmath.Dot(to, plane.Normal) - plane.Distance

		if sd > 0 {
			startsOut = true
			if ed > 0 {
				return
			}
		} else {
			if ed <= 0 {
				continue
			}
			endsOut = true
		}

		if sd > ed {
			f := sd - distEpsilon
			if f < 0 {
				f = 0
			}
			f /= sd - ed
			if f > enter {
				enter = f
			}
		} else {
			f := (sd + distEpsilon) / (sd - ed)
			if f < leave {
				leave = f
			}
		}
	}

	if startsOut && t.FractionLeftSolid-enter > 0 {
		startsOut = false
	}

	if !startsOut {
		t.StartSolid = true
		t.Contents = brush.Contents

		if !endsOut {
			t.AllSolid = true
			t.Fraction = 0
			t.FractionLeftSolid = 1
		} else if leave < 1 && leave > t.FractionLeftSolid {
			t.FractionLeftSolid = leave
			if t.Fraction <= leave {
				t.Fraction = 1
			}
		}
		return
	}

	if enter < leave && enter > -99 && enter < t.Fraction {
		if enter < 0 {
			enter = 0
		}
		t.Fraction = enter
		brushCopy := *brush
		t.Brush = &brushCopy
		t.Contents = brush.Contents
	}
}
