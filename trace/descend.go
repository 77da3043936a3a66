package trace

import (
	"github.com/go-vbsp/vbsp-los/bsp"
	"github.com/go-vbsp/vbsp-los/vmath"
)

// descend walks node_idx >= 0 as an interior node or node_idx < 0 as a
// leaf (leaf index -1-node_idx), restricting the walk to the parametric
// window [startFract, endFract] along the from->to segment.
func descend(model *bsp.Model, from, to [3]float32, nodeIdx int32, startFract, endFract float32, t *Trace, opts Options) {
	if t.Fraction <= startFract {
		return
	}

	if nodeIdx < 0 {
		descendLeaf(model, from, to, int(-1-nodeIdx), t, opts)
		return
	}

	if int(nodeIdx) >= len(model.Nodes) {
		return
	}
	node := model.Nodes[nodeIdx]

	if int(node.PlaneIdx) >= len(model.Planes) {
		return
	}
	plane := model.Planes[node.PlaneIdx]

	var startDist, endDist float32
	if plane.Type < 3 {
		startDist = from[plane.Type] - plane.Distance
		endDist = to[plane.Type] - plane.Distance
	} else {
		startDist = vmath.Dot(from, plane.Normal) - plane.Distance
		endDist = vmath.Dot(to, plane.Normal) - plane.Distance
	}

	switch {
	case startDist >= 0 && endDist >= 0:
		descend(model, from, to, node.Children[0], startFract, endFract, t, opts)
	case startDist < 0 && endDist < 0:
		descend(model, from, to, node.Children[1], startFract, endFract, t, opts)
	default:
		descendSplit(model, from, to, node, startDist, endDist, startFract, endFract, t, opts)
	}
}

// descendSplit handles the case where the segment straddles the node's
// plane: it splits the segment at the plane (with a symmetric epsilon
// keeping each half strictly on its side) and recurses into both
// children with narrowed parametric windows. In the back-first branch
// the symmetric epsilon applies only with Options.FixBackFirstSplit; by
// default both halves split at the same (+epsilon) fraction.
func descendSplit(model *bsp.Model, from, to [3]float32, node bsp.Node, startDist, endDist, startFract, endFract float32, t *Trace, opts Options) {
	var sideID int
	var fractionFirst, fractionSecond float32

	switch {
	case startDist < endDist:
		sideID = 1
		inv := 1 / (startDist - endDist)
		fractionFirst = (startDist + splitEpsilon) * inv
		if opts.FixBackFirstSplit {
			fractionSecond = (startDist - splitEpsilon) * inv
		} else {
			fractionSecond = (startDist + splitEpsilon) * inv
		}
	case endDist < startDist:
		sideID = 0
		inv := 1 / (startDist - endDist)
		fractionFirst = (startDist + splitEpsilon) * inv
		fractionSecond = (startDist - splitEpsilon) * inv
	default:
		sideID = 0
		fractionFirst = 1
		fractionSecond = 0
	}

	fractionFirst = clamp01(fractionFirst)
	fractionSecond = clamp01(fractionSecond)

	midFractA := startFract + (endFract-startFract)*fractionFirst
	var midA [3]float32
	for i := 0; i < 3; i++ {
		midA[i] = from[i] + fractionFirst*(to[i]-from[i])
	}
	descend(model, from, midA, node.Children[sideID], startFract, midFractA, t, opts)

	midFractB := startFract + (endFract-startFract)*fractionSecond
	var midB [3]float32
	for i := 0; i < 3; i++ {
		midB[i] = from[i] + fractionSecond*(to[i]-from[i])
	}
	otherSide := 1 - sideID
	descend(model, midB, to, node.Children[otherSide], midFractB, endFract, t, opts)
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// descendLeaf sweeps every shot-hull brush in leafIdx, then (if the ray
// wasn't already stopped or started in solid) sweeps every face.
func descendLeaf(model *bsp.Model, from, to [3]float32, leafIdx int, t *Trace, opts Options) {
	if leafIdx < 0 || leafIdx >= len(model.Leafs) {
		return
	}
	leaf := model.Leafs[leafIdx]

	for i := 0; i < int(leaf.NumLeafBrushes); i++ {
		tableIdx := int(leaf.FirstLeafBrush) + i
		if tableIdx < 0 || tableIdx >= len(model.LeafBrushes) {
			continue
		}
		brushIdx := int(model.LeafBrushes[tableIdx])
		if brushIdx >= len(model.Brushes) {
			continue
		}
		brush := model.Brushes[brushIdx]
		if brush.Contents&bsp.MaskShotHull == 0 {
			continue
		}

		sweepBrush(model, from, to, &brush, t)
		if t.Fraction == 0 {
			return
		}
	}

	if t.StartSolid || t.Fraction < 1 {
		return
	}

	for i := 0; i < int(leaf.NumLeafFaces); i++ {
		tableIdx := int(leaf.FirstLeafFace) + i
		if tableIdx < 0 || tableIdx >= len(model.LeafFaces) {
			continue
		}
		faceIdx := int(model.LeafFaces[tableIdx])
		sweepSurface(model, from, to, faceIdx, t, opts)
	}
}
