package bsp

import "github.com/go-vbsp/vbsp-los/vbspfile"

// Face is the model's view of a face record: the fields the polygon
// filter and derivation need. Lightmap/primitive fields carried on disk
// are not part of this model's scope (lighting is a non-goal).
type Face struct {
	PlaneIdx  int32
	Side      uint8
	FirstEdge int32
	NumEdges  int16
	TexInfo   int16
	DispInfo  int16
	Area      float32
}

func canonicalizeFaces(raw []vbspfile.Face) []Face {
	faces := make([]Face, len(raw))
	for i, f := range raw {
		faces[i] = Face{
			PlaneIdx:  int32(f.PlaneNum),
			Side:      f.Side,
			FirstEdge: f.FirstEdge,
			NumEdges:  f.NumEdges,
			TexInfo:   f.TexInfo,
			DispInfo:  f.DispInfo,
			Area:      f.Area,
		}
	}
	return faces
}
