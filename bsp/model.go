// Package bsp builds the immutable, queryable in-memory BSP model from
// the raw lump data vbspfile decodes, and owns it for the life of a
// query session.
package bsp

import (
	"os"

	"github.com/go-vbsp/vbsp-los/vbspfile"
)

// Model is the immutable aggregate owned for the lifetime of a query
// session. Nothing mutates it after Build/Open returns, so any number of
// goroutines may run traversal queries against the same Model
// concurrently.
type Model struct {
	Vertexes    [][3]float32
	Planes      []Plane
	Edges       [][2]uint16
	SurfEdges   []int32
	Nodes       []Node
	Leafs       []vbspfile.Leaf
	Faces       []Face
	TexInfos    []vbspfile.TexInfo
	Brushes     []vbspfile.Brush
	BrushSides  []vbspfile.BrushSide
	LeafFaces   []uint16
	LeafBrushes []uint16
	Polygons    []Polygon

	// polygonIndexByFace maps a face index to its slot in Polygons, or
	// -1 if that face didn't qualify (see buildPolygons).
	polygonIndexByFace []int
}

// PolygonForFace returns the polygon derived from face faceIdx, and
// whether one exists. A face with fewer than 3 or more than
// MaxPolygonVerts edges, or a non-positive TexInfo, has none.
func (m *Model) PolygonForFace(faceIdx int) (Polygon, bool) {
	if faceIdx < 0 || faceIdx >= len(m.polygonIndexByFace) {
		return Polygon{}, false
	}
	slot := m.polygonIndexByFace[faceIdx]
	if slot < 0 {
		return Polygon{}, false
	}
	return m.Polygons[slot], true
}

// Build assembles the runtime Model from decoded raw lump data. Same
// input bytes always produce the same Model: canonicalization is pure
// field-by-field transformation with no randomness or environment
// dependence.
func Build(raw *vbspfile.RawData) (*Model, error) {
	vertexes := make([][3]float32, len(raw.Vertexes))
	for i, v := range raw.Vertexes {
		vertexes[i] = v.Position
	}

	edges := make([][2]uint16, len(raw.Edges))
	for i, e := range raw.Edges {
		edges[i] = e.V
	}

	surfEdges := make([]int32, len(raw.SurfEdges))
	for i, s := range raw.SurfEdges {
		surfEdges[i] = s.EdgeIndex
	}

	leafFaces := make([]uint16, len(raw.LeafFaces))
	for i, f := range raw.LeafFaces {
		leafFaces[i] = uint16(f)
	}

	leafBrushes := make([]uint16, len(raw.LeafBrushes))
	for i, b := range raw.LeafBrushes {
		leafBrushes[i] = uint16(b)
	}

	planes := canonicalizePlanes(raw.Planes)
	nodes := canonicalizeNodes(raw.Nodes)
	faces := canonicalizeFaces(raw.Faces)

	polys, polygonIndexByFace := buildPolygons(faces, surfEdges, edges, vertexes, planes)

	return &Model{
		Vertexes:           vertexes,
		Planes:             planes,
		Edges:              edges,
		SurfEdges:          surfEdges,
		Nodes:              nodes,
		Leafs:              raw.Leafs,
		Faces:              faces,
		TexInfos:           raw.TexInfos,
		Brushes:            raw.Brushes,
		BrushSides:         raw.BrushSides,
		LeafFaces:          leafFaces,
		LeafBrushes:        leafBrushes,
		Polygons:           polys,
		polygonIndexByFace: polygonIndexByFace,
	}, nil
}

// Open loads and builds a Model from a file on disk. The file handle is
// released before Open returns on every exit path, including errors
// (spec.md §5's "scoped acquisition with release on every exit path").
func Open(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &vbspfile.LoadError{Kind: vbspfile.IoError, Err: err}
	}
	defer file.Close()

	raw, err := vbspfile.Load(file)
	if err != nil {
		return nil, err
	}

	return Build(raw)
}
