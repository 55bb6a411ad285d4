package qbsp

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// LumpID identifies one entry of the lump directory.
type LumpID int

// Lump directory order of Quake (v29) and GoldSrc (v30) maps.
const (
	LumpEntities LumpID = iota
	LumpPlanes
	LumpTextures
	LumpVertices
	LumpVisibility
	LumpNodes
	LumpTexInfo
	LumpFaces
	LumpLighting
	LumpClipNodes
	LumpLeaves
	LumpMarkSurfaces
	LumpEdges
	LumpSurfEdges
	LumpModels

	// HeaderLumps is the number of directory entries.
	HeaderLumps
)

const (
	lumpEntrySize = 8

	// HeaderSize is the minimum buffer length DecodeHeader accepts:
	// the id followed by HeaderLumps directory entries.
	HeaderSize = 4 + 15*lumpEntrySize
)

var lumpNames = [...]string{
	LumpEntities:     "ENTITIES",
	LumpPlanes:       "PLANES",
	LumpTextures:     "TEXTURES",
	LumpVertices:     "VERTICES",
	LumpVisibility:   "VISIBILITY",
	LumpNodes:        "NODES",
	LumpTexInfo:      "TEXINFO",
	LumpFaces:        "FACES",
	LumpLighting:     "LIGHTING",
	LumpClipNodes:    "CLIPNODES",
	LumpLeaves:       "LEAVES",
	LumpMarkSurfaces: "MARKSURFACES",
	LumpEdges:        "EDGES",
	LumpSurfEdges:    "SURFEDGES",
	LumpModels:       "MODELS",
	HeaderLumps:      "HEADER_LUMPS",
}

func (id LumpID) String() string {
	if id < 0 || int(id) >= len(lumpNames) {
		return "UNKNOWN"
	}
	return lumpNames[id]
}

// Lump is the byte range of one named section within the file.
type Lump struct {
	ID     LumpID
	Offset uint32
	Size   uint32
}

// Name returns the canonical upper-case lump name, e.g. "VERTICES".
func (l Lump) Name() string {
	return l.ID.String()
}

// window returns the bytes of l within data.
func (l Lump) window(data []byte) ([]byte, error) {
	end := uint64(l.Offset) + uint64(l.Size)
	if end > uint64(len(data)) {
		return nil, errors.Wrapf(ErrOutOfBounds, "lump %s [%d, %d) exceeds buffer of %d bytes",
			l.Name(), l.Offset, end, len(data))
	}
	return data[l.Offset:end], nil
}

// Header is the file id followed by the lump directory.
type Header struct {
	// ID is the format version, 29 for Quake and 30 for GoldSrc. It is not validated.
	ID    uint32
	Lumps [HeaderLumps]Lump
}

// Lump returns the directory entry for id.
func (h *Header) Lump(id LumpID) Lump {
	return h.Lumps[id]
}

// LumpByName looks up a directory entry by its canonical name.
func (h *Header) LumpByName(name string) (Lump, bool) {
	for _, l := range h.Lumps {
		if l.Name() == name {
			return l, true
		}
	}
	return Lump{}, false
}

// Directory returns the lumps in directory order.
func (h *Header) Directory() []Lump {
	out := make([]Lump, len(h.Lumps))
	copy(out, h.Lumps[:])
	return out
}

// DecodeHeader reads the file id and the lump directory from the start of data.
func DecodeHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, errors.Wrapf(ErrOutOfBounds, "header needs %d bytes, buffer has %d", HeaderSize, len(data))
	}

	h := &Header{
		ID: binary.LittleEndian.Uint32(data[0:4]),
	}

	for i := range h.Lumps {
		pos := 4 + i*lumpEntrySize
		h.Lumps[i] = Lump{
			ID:     LumpID(i),
			Offset: binary.LittleEndian.Uint32(data[pos : pos+4]),
			Size:   binary.LittleEndian.Uint32(data[pos+4 : pos+8]),
		}
	}

	return h, nil
}
