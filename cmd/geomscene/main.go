// Command geomscene reports the colliding shapes of scene files.
//
// Usage:
//
//	geomscene [-png] scene.yaml...
//
// Every collision is printed to standard output as one JSON object per line.
// With -png, a mask of every scene is written to GEOMSCENE_OUTPUT_DIR.
// The remaining configuration is read from GEOMSCENE_* environment
// variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"honnef.co/go/geom2d/internal/config"
	"honnef.co/go/geom2d/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit status once every deferred cleanup, including
// flushing the logger, has happened.
func run(args []string) int {
	fs := flag.NewFlagSet("geomscene", flag.ContinueOnError)
	writePNG := fs.Bool("png", false, "write a PNG mask of every scene")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: geomscene [-png] scene.yaml...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "geomscene: load config: %s\n", err)
		return 1
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "geomscene: %s\n", err)
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner{
		cfg:      cfg,
		log:      log,
		out:      os.Stdout,
		writePNG: *writePNG,
	}
	if err := r.run(ctx, fs.Args()); err != nil {
		log.Error("evaluation failed", zap.Error(err))
		return 1
	}
	return 0
}
