package qbsp_test

import (
	"encoding/binary"
	"fmt"

	"github.com/saiko-tech/qbsp/pkg/qbsp"
)

func ExampleDecode() {
	entities := []byte("{\n\"classname\" \"info_player_start\"\n\"origin\" \"0 64 0\"\n}\n\x00")

	// version 29 map whose only lump is ENTITIES
	data := make([]byte, qbsp.HeaderSize)
	binary.LittleEndian.PutUint32(data[0:], 29)
	binary.LittleEndian.PutUint32(data[4:], qbsp.HeaderSize)
	binary.LittleEndian.PutUint32(data[8:], uint32(len(entities)))
	data = append(data, entities...)

	m, err := qbsp.Decode(data)
	if err != nil {
		panic(err)
	}

	for _, e := range m.Entities {
		name, _ := e.ClassName()
		origin, _ := e.Vec3("origin")
		fmt.Println(name, origin.X(), origin.Y(), origin.Z())
	}

	// Output: info_player_start 0 64 0
}
