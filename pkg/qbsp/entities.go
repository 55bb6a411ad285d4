package qbsp

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Entity is one placed game object, as key/value pairs.
type Entity map[string]string

// Get returns the value for key.
func (e Entity) Get(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// ClassName returns the "classname" property.
func (e Entity) ClassName() (string, bool) {
	return e.Get("classname")
}

// Vec3 parses a space separated coordinate triple, such as "origin".
func (e Entity) Vec3(key string) (mgl32.Vec3, bool) {
	var out mgl32.Vec3

	v, ok := e[key]
	if !ok {
		return out, false
	}

	fields := strings.Fields(v)
	if len(fields) != 3 {
		return out, false
	}

	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return mgl32.Vec3{}, false
		}
		out[i] = float32(n)
	}

	return out, true
}

// DecodeEntities parses the text of the ENTITIES lump.
//
// Lines outside a block are ignored, so the trailing NUL of most maps and any
// unmatched "}" are skipped. A "{" inside an open block, or a block left open
// at the end of the text, is ErrMalformedEntityBlock.
func DecodeEntities(raw []byte) ([]Entity, error) {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode entity text")
	}

	var (
		entities []Entity
		current  Entity // nil while outside a block
	)

	for n, line := range strings.Split(string(text), "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case line == "{":
			if current != nil {
				return nil, errors.Wrapf(ErrMalformedEntityBlock, "line %d: block opened inside block", n+1)
			}
			current = make(Entity)

		case line == "}":
			if current == nil {
				continue
			}
			entities = append(entities, current)
			current = nil

		case current == nil, line == "":
			continue

		default:
			tokens := strings.Split(strings.ReplaceAll(line, `"`, ""), " ")
			current[tokens[0]] = strings.Join(tokens[1:], " ")
		}
	}

	if current != nil {
		return nil, errors.Wrap(ErrMalformedEntityBlock, "unterminated block at end of text")
	}

	return entities, nil
}
