package qbsp

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// mapBuilder assembles a synthetic map file; lumps are laid out after the header in directory order.
type mapBuilder struct {
	id    uint32
	lumps [HeaderLumps][]byte
}

func (m *mapBuilder) set(t *testing.T, id LumpID, records any) *mapBuilder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, records))
	m.lumps[id] = buf.Bytes()

	return m
}

func (m *mapBuilder) raw(id LumpID, data []byte) *mapBuilder {
	m.lumps[id] = data
	return m
}

func (m *mapBuilder) bytes() []byte {
	header := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], m.id)

	body := make([]byte, 0)
	for i, l := range m.lumps {
		pos := 4 + i*lumpEntrySize
		offset := 0
		if len(l) > 0 {
			offset = HeaderSize + len(body)
		}
		binary.LittleEndian.PutUint32(header[pos:pos+4], uint32(offset))
		binary.LittleEndian.PutUint32(header[pos+4:pos+8], uint32(len(l)))
		body = append(body, l...)
	}

	return append(header, body...)
}

const wellFormedEntities = "{\n" +
	"\"classname\" \"worldspawn\"\n" +
	"\"message\" \"The Slipgate Complex\"\n" +
	"\"wad\" \"gfx/base.wad\"\n" +
	"}\n" +
	"{\n" +
	"\"classname\" \"info_player_start\"\n" +
	"\"origin\" \"480 -352 88\"\n" +
	"\"angle\" \"90\"\n" +
	"}\n" +
	"\x00"
