// Package vbspfile decodes the on-disk lump table of a compiled Source
// engine VBSP map into typed, fixed-size record slices. It does not
// interpret the records; see package bsp for that.
package vbspfile

const (
	// HeaderMagic is the literal 'VBSP' read as a little-endian int32.
	HeaderMagic = 0x50534256

	// MinVersion is the lowest VBSP version this decoder accepts.
	MinVersion = 19

	// LumpCount is the number of lump descriptors in the header.
	LumpCount = 64

	// MaxLeafTableEntries bounds the leaf-face and leaf-brush tables.
	MaxLeafTableEntries = 65536
)

// Lump indices, in header.Lumps order. The lumps this model reads are
// named, plus Entities, TexData and Visibility, which Load never reads;
// the other 64 slots are unnamed and skipped.
const (
	LumpEntities   = 0
	LumpPlanes     = 1
	LumpTexData    = 2
	LumpVertexes   = 3
	LumpVisibility = 4
	LumpNodes      = 5
	LumpTexInfo    = 6
	LumpFaces      = 7
	LumpLeafs      = 10
	LumpEdges      = 12
	LumpSurfEdges  = 13
	LumpLeafFaces  = 16
	LumpLeafBrushes = 17
	LumpBrushes    = 18
	LumpBrushSides = 19
)

// Record sizes in bytes, per spec.
const (
	sizeofPlane     = 20
	sizeofVertex    = 12
	sizeofEdge      = 4
	sizeofSurfEdge  = 4
	sizeofLeaf      = 48
	sizeofNode      = 32
	sizeofFace      = 58
	sizeofTexInfo   = 72
	sizeofBrush     = 12
	sizeofBrushSide = 8
	sizeofLeafFace  = 2
	sizeofLeafBrush = 2
)

// Header mirrors dheader_t: magic, version, 64 lump descriptors, map
// revision.
type Header struct {
	Magic       int32
	Version     int32
	Lumps       [LumpCount]Lump
	MapRevision int32
}

// Lump mirrors lump_t: a byte range plus a version and four-cc tag that
// this decoder never inspects.
type Lump struct {
	Offset  int32
	Length  int32
	Version int32
	FourCC  [4]byte
}
