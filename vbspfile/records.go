package vbspfile

// Vertex is a single 3-vector position, 12 bytes on disk.
type Vertex struct {
	Position [3]float32
}

// Plane mirrors dplane_t: a raw, uncanonicalized splitting plane.
type Plane struct {
	Normal   [3]float32
	Distance float32
	Type     int32
}

// Edge is an undirected pair of vertex indices.
type Edge struct {
	V [2]uint16
}

// SurfEdge is a signed index into the Edge table: positive selects
// Edge.V[0] as the first vertex, negative selects Edge.V[1] (after
// negating the index back to a positive edge index).
type SurfEdge struct {
	EdgeIndex int32
}

// Node mirrors dnode_t. Children[i] >= 0 is a node index; Children[i] < 0
// encodes a leaf index as -1-Children[i].
type Node struct {
	PlaneNum  int32
	Children  [2]int32
	Mins      [3]int16
	Maxs      [3]int16
	FirstFace uint16
	NumFaces  uint16
	Area      int16
	_         [2]byte
}

// Leaf mirrors dleaf_t. The trailing 16 bytes are the legacy compressed
// ambient-lighting cube kept only for byte-layout compatibility with
// version-19 maps; this model never reads it.
type Leaf struct {
	Contents       int32
	Cluster        int16
	Area           int16
	Flags          int16
	Mins           [3]int16
	Maxs           [3]int16
	FirstLeafFace  uint16
	NumLeafFaces   uint16
	FirstLeafBrush uint16
	NumLeafBrushes uint16
	LeafWaterData  int16
	_              [16]byte
}

// Face mirrors dface_t field for field, plus a trailing 2-byte pad that
// brings the record to 58 bytes. The lightmap/primitive/smoothing fields
// are decoded but never referenced downstream.
type Face struct {
	PlaneNum                     uint16
	Side                         uint8
	OnNode                       uint8
	FirstEdge                    int32
	NumEdges                     int16
	TexInfo                      int16
	DispInfo                     int16
	SurfaceFogVolumeID           int16
	Styles                       [4]uint8
	LightOfs                     int32
	Area                         float32
	LightmapTextureMinsInLuxels  [2]int32
	LightmapTextureSizeInLuxels  [2]int32
	OrigFace                     int32
	NumPrims                     uint16
	FirstPrimID                  uint16
	SmoothingGroups              uint32
	_                            [2]byte
}

// TexInfo mirrors texinfo_t.
type TexInfo struct {
	TextureVecs  [2][4]float32
	LightmapVecs [2][4]float32
	Flags        int32
	TexData      int32
}

// Brush mirrors dbrush_t.
type Brush struct {
	FirstSide int32
	NumSides  int32
	Contents  int32
}

// BrushSide mirrors dbrushside_t.
type BrushSide struct {
	PlaneNum uint16
	TexInfo  int16
	DispInfo int16
	Bevel    uint8
	Thin     uint8
}

// LeafFace is an unsigned 16-bit index into the face table.
type LeafFace uint16

// LeafBrush is an unsigned 16-bit index into the brush table.
type LeafBrush uint16

// RawData is the direct, uninterpreted contents of the required lumps —
// the output of the byte-layout decoder, before the model builder
// canonicalizes planes and nodes and derives polygons.
type RawData struct {
	Vertexes   []Vertex
	Planes     []Plane
	Edges      []Edge
	SurfEdges  []SurfEdge
	Nodes      []Node
	Leafs      []Leaf
	Faces      []Face
	TexInfos   []TexInfo
	Brushes    []Brush
	BrushSides []BrushSide
	LeafFaces  []LeafFace
	LeafBrushes []LeafBrush
}
