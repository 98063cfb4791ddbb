package main

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/geom2d"
	"honnef.co/go/geom2d/internal/config"
	"honnef.co/go/geom2d/raster"
	"honnef.co/go/geom2d/scene"
)

// collision is the JSON record printed for every intersecting pair.
type collision struct {
	File  string   `json:"file"`
	A     scene.ID `json:"a"`
	B     scene.ID `json:"b"`
	NameA string   `json:"name_a"`
	NameB string   `json:"name_b"`
}

type runner struct {
	cfg      *config.Config
	log      *zap.Logger
	out      io.Writer
	writePNG bool
}

// run evaluates the scene files concurrently. Collisions are printed in the
// order of the files, then of the pairs.
func (r *runner) run(ctx context.Context, files []string) error {
	results := make([][]collision, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if r.cfg.Concurrency > 0 {
		g.SetLimit(r.cfg.Concurrency)
	}
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.evaluate(name)
			if err != nil {
				r.log.Error("scene failed", zap.String("file", name), zap.Error(err))
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(r.out)
	for _, res := range results {
		for _, c := range res {
			if err := enc.Encode(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *runner) evaluate(name string) ([]collision, error) {
	log := r.log.With(zap.String("file", name))
	d, err := scene.LoadFile(name)
	if err != nil {
		return nil, err
	}
	sc, err := d.Build(log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer sc.Close()

	var out []collision
	for _, p := range sc.Collisions() {
		out = append(out, collision{
			File:  name,
			A:     p.A,
			B:     p.B,
			NameA: sc.Name(p.A),
			NameB: sc.Name(p.B),
		})
	}
	log.Info("scene evaluated", zap.Int("shapes", sc.Len()), zap.Int("collisions", len(out)))

	if r.writePNG {
		dst := filepath.Join(r.cfg.OutputDir, maskName(name))
		if err := writeMask(dst, sc, r.cfg.RasterScale); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		log.Debug("mask written", zap.String("path", dst))
	}
	return out, nil
}

// maskName returns the file name of the mask of the named scene file.
func maskName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// sceneMask fills all shapes of sc into one mask covering the scaled scene
// bounds.
func sceneMask(sc *scene.Scene, scale float64) *image.Alpha {
	tr := geom2d.Scale(scale, scale)
	m := image.NewAlpha(raster.Bounds(sc.Bounds(), scale))
	for _, id := range sc.IDs() {
		s, _ := sc.Get(id)
		raster.Fill(m, s, tr)
	}
	return m
}

func writeMask(name string, sc *scene.Scene, scale float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, sceneMask(sc, scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
