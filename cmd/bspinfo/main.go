// Command bspinfo prints the lump directory, record counts and entities of a
// Quake-family BSP map.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/saiko-tech/qbsp/pkg/qbsp"
)

type config struct {
	path     string
	entities bool
	parallel bool
	verbose  bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("bspinfo failed", slog.String("path", cfg.path), slog.Any("error", err))
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("bspinfo", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: bspinfo [flags] <map.bsp | map.bsp.zst | ->")
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.entities, "entities", false, "print entities as JSON")
	fs.BoolVar(&cfg.parallel, "parallel", false, "decode lumps concurrently")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, errors.New("expected exactly one map path")
	}
	cfg.path = fs.Arg(0)

	return cfg, nil
}

func run(cfg config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	data, err := readMap(cfg.path, stdin)
	if err != nil {
		return err
	}

	opts := []qbsp.Option{qbsp.WithLogger(logger)}
	if cfg.parallel {
		opts = append(opts, qbsp.WithParallel())
	}

	m, err := qbsp.Decode(data, opts...)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", cfg.path)
	}

	if cfg.entities {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(m.Entities), "failed to write entities")
	}

	return printSummary(stdout, m)
}

func printSummary(w io.Writer, m *qbsp.BSP) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "version\t%d\n\n", m.Header.ID)
	fmt.Fprintln(tw, "LUMP\tOFFSET\tSIZE")
	for _, l := range m.Header.Directory() {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", l.Name(), l.Offset, l.Size)
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "entities\t%d\n", len(m.Entities))
	fmt.Fprintf(tw, "vertices\t%d\n", len(m.Vertices))
	fmt.Fprintf(tw, "edges\t%d\n", len(m.Edges))
	fmt.Fprintf(tw, "planes\t%d\n", len(m.Planes))
	fmt.Fprintf(tw, "faces\t%d\n", len(m.Faces))
	fmt.Fprintf(tw, "surfedges\t%d\n", len(m.SurfEdges))

	return errors.Wrap(tw.Flush(), "failed to write summary")
}
