package vbspfile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Load reads the header and every lump this model needs from r, and
// returns the typed raw record slices. It never retries and returns on
// the first failure.
func Load(r io.ReaderAt) (*RawData, error) {
	header := Header{}
	headerReader := io.NewSectionReader(r, 0, headerSize)
	if err := binary.Read(headerReader, binary.LittleEndian, &header); err != nil {
		return nil, newLoadError(IoError, err)
	}

	if header.Magic != HeaderMagic {
		return nil, newLoadError(InvalidMagic, fmt.Errorf("got 0x%x, want 0x%x", uint32(header.Magic), uint32(HeaderMagic)))
	}
	if header.Version < MinVersion {
		return nil, newLoadError(UnsupportedVersion, fmt.Errorf("got %d, want >= %d", header.Version, MinVersion))
	}

	raw := &RawData{}
	var err error

	if raw.Vertexes, err = readLump[Vertex](r, header, LumpVertexes, sizeofVertex); err != nil {
		return nil, err
	}
	if raw.Planes, err = readLump[Plane](r, header, LumpPlanes, sizeofPlane); err != nil {
		return nil, err
	}
	if raw.Edges, err = readLump[Edge](r, header, LumpEdges, sizeofEdge); err != nil {
		return nil, err
	}
	if raw.SurfEdges, err = readLump[SurfEdge](r, header, LumpSurfEdges, sizeofSurfEdge); err != nil {
		return nil, err
	}
	if raw.Nodes, err = readLump[Node](r, header, LumpNodes, sizeofNode); err != nil {
		return nil, err
	}
	if raw.Leafs, err = readLump[Leaf](r, header, LumpLeafs, sizeofLeaf); err != nil {
		return nil, err
	}
	if raw.Faces, err = readLump[Face](r, header, LumpFaces, sizeofFace); err != nil {
		return nil, err
	}
	if raw.TexInfos, err = readLump[TexInfo](r, header, LumpTexInfo, sizeofTexInfo); err != nil {
		return nil, err
	}
	if raw.Brushes, err = readLump[Brush](r, header, LumpBrushes, sizeofBrush); err != nil {
		return nil, err
	}
	if raw.BrushSides, err = readLump[BrushSide](r, header, LumpBrushSides, sizeofBrushSide); err != nil {
		return nil, err
	}
	if raw.LeafFaces, err = readLump[LeafFace](r, header, LumpLeafFaces, sizeofLeafFace); err != nil {
		return nil, err
	}
	if raw.LeafBrushes, err = readLump[LeafBrush](r, header, LumpLeafBrushes, sizeofLeafBrush); err != nil {
		return nil, err
	}

	if len(raw.LeafFaces) == 0 || len(raw.LeafBrushes) == 0 {
		return nil, newLoadError(LeafTableEmpty, nil)
	}
	if len(raw.LeafFaces) > MaxLeafTableEntries || len(raw.LeafBrushes) > MaxLeafTableEntries {
		return nil, newLoadError(LeafTableOverflow, nil)
	}

	return raw, nil
}

const headerSize = 4 + 4 + LumpCount*16 + 4

// readLump seeks to the lump's byte range and decodes it as a packed
// array of T, whose on-disk size must be recordSize bytes. A lump whose
// length is zero or not a multiple of recordSize is InvalidLumpSize.
func readLump[T any](r io.ReaderAt, header Header, lumpIndex int, recordSize int32) ([]T, error) {
	lump := header.Lumps[lumpIndex]
	if lump.Length <= 0 || lump.Length%recordSize != 0 {
		return nil, newLoadError(InvalidLumpSize, fmt.Errorf("lump %d: length %d not a positive multiple of %d", lumpIndex, lump.Length, recordSize))
	}

	count := int(lump.Length / recordSize)
	records := make([]T, count)
	reader := io.NewSectionReader(r, int64(lump.Offset), int64(lump.Length))
	if err := binary.Read(reader, binary.LittleEndian, records); err != nil {
		return nil, newLoadError(IoError, err)
	}
	return records, nil
}
