package bsp

import "github.com/go-vbsp/vbsp-los/vbspfile"

// Plane is a canonicalized splitting plane: the raw (normal, distance,
// type) plus a precomputed SignBits byte, so the traversal never has to
// re-derive it per query.
type Plane struct {
	Normal   [3]float32
	Distance float32
	Type     uint8
	// SignBits has bit i set iff Normal[i] < 0.
	SignBits uint8
}

func canonicalizePlanes(raw []vbspfile.Plane) []Plane {
	planes := make([]Plane, len(raw))
	for i, p := range raw {
		var signBits uint8
		for axis := 0; axis < 3; axis++ {
			if p.Normal[axis] < 0 {
				signBits |= 1 << uint(axis)
			}
		}
		planes[i] = Plane{
			Normal:   p.Normal,
			Distance: p.Distance,
			Type:     uint8(p.Type),
			SignBits: signBits,
		}
	}
	return planes
}
