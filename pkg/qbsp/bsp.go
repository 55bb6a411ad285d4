// Package qbsp decodes Quake-family (v29 / v30) BSP map files into geometry
// and entities a renderer can consume.
// The package performs no I/O; it works on a buffer holding the whole file.
package qbsp

import (
	"context"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// BSP is a decoded map.
type BSP struct {
	Header    *Header
	Vertices  []mgl32.Vec3
	Edges     []Edge
	Planes    []Plane
	Faces     []Face
	SurfEdges []SurfEdge
	Entities  []Entity
}

// Decode decodes the map held in data. On error no partial result is returned.
func Decode(data []byte, opts ...Option) (*BSP, error) {
	o := newOptions(opts)

	header, err := DecodeHeader(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode header")
	}

	logLumps(o.logger, header)

	b := &BSP{Header: header}

	steps := []func() error{
		func() (err error) {
			b.Entities, err = decodeEntityLump(data, header.Lump(LumpEntities))
			return err
		},
		func() (err error) {
			b.Vertices, err = decodeLump[mgl32.Vec3](data, header.Lump(LumpVertices))
			return err
		},
		func() (err error) {
			b.Edges, err = decodeLump[Edge](data, header.Lump(LumpEdges))
			return err
		},
		func() (err error) {
			b.Planes, err = decodeLump[Plane](data, header.Lump(LumpPlanes))
			return err
		},
		func() (err error) {
			b.SurfEdges, err = decodeLump[SurfEdge](data, header.Lump(LumpSurfEdges))
			return err
		},
		func() (err error) {
			b.Faces, err = decodeLump[Face](data, header.Lump(LumpFaces))
			return err
		},
	}

	if o.parallel {
		var eg errgroup.Group
		for _, step := range steps {
			eg.Go(step)
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, step := range steps {
			if err := step(); err != nil {
				return nil, err
			}
		}
	}

	o.logger.Debug("decoded bsp",
		slog.Int("entities", len(b.Entities)),
		slog.Int("vertices", len(b.Vertices)),
		slog.Int("edges", len(b.Edges)),
		slog.Int("planes", len(b.Planes)),
		slog.Int("surfedges", len(b.SurfEdges)),
		slog.Int("faces", len(b.Faces)),
	)

	return b, nil
}

func decodeEntityLump(data []byte, l Lump) ([]Entity, error) {
	raw, err := l.window(data)
	if err != nil {
		return nil, err
	}

	entities, err := DecodeEntities(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "lump %s", l.Name())
	}

	return entities, nil
}

func logLumps(l *slog.Logger, h *Header) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	for _, lump := range h.Directory() {
		l.Debug("lump",
			slog.String("name", lump.Name()),
			slog.Uint64("offset", uint64(lump.Offset)),
			slog.Uint64("size", uint64(lump.Size)),
		)
	}
}
