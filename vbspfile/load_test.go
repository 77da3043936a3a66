package vbspfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// lumpSpec is one entry of a synthetic map under construction: the lump
// index it belongs to and the already-encoded record bytes.
type lumpSpec struct {
	index int
	data  []byte
}

// buildMap serializes a VBSP byte buffer whose listed lumps hold the
// given record bytes, laid out back to back after the header. Every required lump not listed is left as a
// zero-length lump_t, which load_test cases use to provoke
// InvalidLumpSize.
func buildMap(t *testing.T, magic int32, version int32, lumps []lumpSpec) []byte {
	t.Helper()

	header := Header{Magic: magic, Version: version}
	offset := int32(headerSize)
	var body bytes.Buffer

	for _, l := range lumps {
		header.Lumps[l.index] = Lump{Offset: offset, Length: int32(len(l.data))}
		body.Write(l.data)
		offset += int32(len(l.data))
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		t.Fatalf("encode header: %v", err)
	}
	buf.Write(body.Bytes())
	return buf.Bytes()
}

func encode(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		t.Fatalf("encode %T: %v", v, err)
	}
	return buf.Bytes()
}

// minimalLumps returns one record per required lump: enough for Load to
// succeed.
func minimalLumps(t *testing.T) []lumpSpec {
	t.Helper()
	return []lumpSpec{
		{LumpVertexes, encode(t, Vertex{Position: [3]float32{1, 2, 3}})},
		{LumpPlanes, encode(t, Plane{Normal: [3]float32{0, 0, 1}, Distance: 4, Type: 2})},
		{LumpEdges, encode(t, Edge{V: [2]uint16{0, 0}})},
		{LumpSurfEdges, encode(t, SurfEdge{EdgeIndex: 0})},
		{LumpNodes, encode(t, Node{PlaneNum: 0, Children: [2]int32{-1, -1}})},
		{LumpLeafs, encode(t, Leaf{Contents: 0})},
		{LumpFaces, encode(t, Face{PlaneNum: 0, FirstEdge: 0, NumEdges: 0, TexInfo: 0})},
		{LumpTexInfo, encode(t, TexInfo{})},
		{LumpBrushes, encode(t, Brush{FirstSide: 0, NumSides: 0, Contents: 0})},
		{LumpBrushSides, encode(t, BrushSide{PlaneNum: 0})},
		{LumpLeafFaces, encode(t, LeafFace(0))},
		{LumpLeafBrushes, encode(t, LeafBrush(0))},
	}
}

func TestLoad_Succeeds(t *testing.T) {
	buf := buildMap(t, HeaderMagic, MinVersion, minimalLumps(t))
	raw, err := Load(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(raw.Vertexes) != 1 || raw.Vertexes[0].Position != [3]float32{1, 2, 3} {
		t.Fatalf("unexpected vertexes: %+v", raw.Vertexes)
	}
	if len(raw.Planes) != 1 || raw.Planes[0].Distance != 4 {
		t.Fatalf("unexpected planes: %+v", raw.Planes)
	}
}

func TestLoad_InvalidMagic(t *testing.T) {
	buf := buildMap(t, 0x0badbeef, MinVersion, minimalLumps(t))
	_, err := Load(bytes.NewReader(buf))
	assertKind(t, err, InvalidMagic)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	buf := buildMap(t, HeaderMagic, 18, minimalLumps(t))
	_, err := Load(bytes.NewReader(buf))
	assertKind(t, err, UnsupportedVersion)
}

func TestLoad_InvalidLumpSize(t *testing.T) {
	lumps := minimalLumps(t)
	// Corrupt the Planes lump (sizeofPlane == 20) to an indivisible length.
	for i := range lumps {
		if lumps[i].index == LumpPlanes {
			lumps[i].data = lumps[i].data[:len(lumps[i].data)-1]
		}
	}
	buf := buildMap(t, HeaderMagic, MinVersion, lumps)
	_, err := Load(bytes.NewReader(buf))
	assertKind(t, err, InvalidLumpSize)
}

func TestLoad_LeafTableEmpty(t *testing.T) {
	lumps := minimalLumps(t)
	filtered := lumps[:0]
	for _, l := range lumps {
		if l.index == LumpLeafFaces {
			continue
		}
		filtered = append(filtered, l)
	}
	buf := buildMap(t, HeaderMagic, MinVersion, filtered)
	_, err := Load(bytes.NewReader(buf))
	assertKind(t, err, InvalidLumpSize) // zero-length lump is caught as InvalidLumpSize first
}

func TestLoad_LeafTableOverflow(t *testing.T) {
	lumps := minimalLumps(t)
	var many []LeafFace
	for i := 0; i < MaxLeafTableEntries+1; i++ {
		many = append(many, LeafFace(0))
	}
	for i := range lumps {
		if lumps[i].index == LumpLeafFaces {
			lumps[i].data = encode(t, many)
		}
	}
	buf := buildMap(t, HeaderMagic, MinVersion, lumps)
	_, err := Load(bytes.NewReader(buf))
	assertKind(t, err, LeafTableOverflow)
}

func assertKind(t *testing.T, err error, want LoadErrorKind) {
	t.Helper()
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v (%T)", err, err)
	}
	if loadErr.Kind != want {
		t.Fatalf("expected kind %v, got %v", want, loadErr.Kind)
	}
}
