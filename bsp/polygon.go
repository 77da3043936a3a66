package bsp

import "github.com/go-vbsp/vbsp-los/vmath"

// MaxPolygonVerts is the largest vertex/edge count a face may have and
// still contribute a Polygon.
const MaxPolygonVerts = 32

// EdgePlane is a half-space boundary of a polygon, used only to test
// whether a point (already known to lie on the face plane) falls inside
// the polygon's outline.
type EdgePlane struct {
	Normal   [3]float32
	Distance float32
}

// Polygon is the derived, ray-testable shape of one qualifying face: its
// vertex loop, its face plane, and one EdgePlane per edge.
type Polygon struct {
	Verts     [][3]float32
	Plane     Plane
	EdgePlanes []EdgePlane
}

// buildPolygons derives one Polygon per face with 3..32 edges and a
// positive TexInfo index (spec.md §3, "Polygon derivation"); all other
// faces are skipped and have no corresponding entry. polygonIndexByFace
// maps a face index to its slot in the returned slice, or -1 if the face
// was skipped.
func buildPolygons(
	faces []Face,
	surfEdges []int32,
	edges [][2]uint16,
	vertexes [][3]float32,
	planes []Plane,
) (polys []Polygon, polygonIndexByFace []int) {
	polygonIndexByFace = make([]int, len(faces))

	for i, f := range faces {
		polygonIndexByFace[i] = -1

		if f.NumEdges < 3 || f.NumEdges > MaxPolygonVerts {
			continue
		}
		if f.TexInfo <= 0 {
			continue
		}
		if int(f.PlaneIdx) >= len(planes) {
			continue
		}

		verts := make([][3]float32, f.NumEdges)
		ok := true
		for j := int32(0); j < int32(f.NumEdges); j++ {
			surfEdgeSlot := f.FirstEdge + j
			if surfEdgeSlot < 0 || int(surfEdgeSlot) >= len(surfEdges) {
				ok = false
				break
			}
			edgeIdx := surfEdges[surfEdgeSlot]
			var absEdgeIdx int32
			var vertFromEnd int // which endpoint of the edge to take
			if edgeIdx >= 0 {
				absEdgeIdx = edgeIdx
				vertFromEnd = 0
			} else {
				absEdgeIdx = -edgeIdx
				vertFromEnd = 1
			}
			if int(absEdgeIdx) >= len(edges) {
				ok = false
				break
			}
			vertIdx := edges[absEdgeIdx][vertFromEnd]
			if int(vertIdx) >= len(vertexes) {
				ok = false
				break
			}
			verts[j] = vertexes[vertIdx]
		}
		if !ok {
			continue
		}

		facePlane := planes[f.PlaneIdx]
		polys = append(polys, Polygon{
			Verts:      verts,
			Plane:      facePlane,
			EdgePlanes: buildEdgePlanes(verts, facePlane),
		})
		polygonIndexByFace[i] = len(polys) - 1
	}

	return polys, polygonIndexByFace
}

// buildEdgePlanes computes one outward edge plane per polygon edge. Per
// spec.md §3: the edge plane's normal is the face normal crossed with
// the edge delta... in the source this is approximated as (face normal
// - edge delta), then passed through the non-standard Normalize (see
// package vmath); distance is set so that verts[i] lies on the plane.
// Only the sign of a later dot product against this plane is ever
// tested, so the scale vmath.Normalize leaves behind does not matter.
func buildEdgePlanes(verts [][3]float32, facePlane Plane) []EdgePlane {
	n := len(verts)
	edgePlanes := make([]EdgePlane, n)
	for i := 0; i < n; i++ {
		v0 := verts[i]
		v1 := verts[(i+1)%n]

		delta := [3]float32{v0[0] - v1[0], v0[1] - v1[1], v0[2] - v1[2]}
		raw := [3]float32{
			facePlane.Normal[0] - delta[0],
			facePlane.Normal[1] - delta[1],
			facePlane.Normal[2] - delta[2],
		}
		normal := vmath.Normalize(raw)
		edgePlanes[i] = EdgePlane{
			Normal:   normal,
			Distance: vmath.Dot(normal, v0),
		}
	}
	return edgePlanes
}
