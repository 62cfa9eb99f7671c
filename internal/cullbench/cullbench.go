// Package cullbench measures how many instances survive frustum culling as
// the camera sweeps over many viewing directions.
package cullbench

import (
	"context"
	"errors"
	"fmt"
	gomath "math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/manycubes/internal/engine/camera"
	"github.com/Faultbox/manycubes/internal/engine/culling"
	"github.com/Faultbox/manycubes/internal/logger"
	"github.com/Faultbox/manycubes/internal/scene"
	"github.com/Faultbox/manycubes/pkg/fibsphere"
)

// ErrNoInstances is returned when the world has nothing to cull.
var ErrNoInstances = errors.New("cullbench: world has no instances")

// Config controls a sweep.
type Config struct {
	Directions int // number of camera directions, at least 2
	Workers    int // parallel workers, 0 means GOMAXPROCS
	Projection camera.Projection
	Aspect     float32
}

// Result summarizes a sweep. Counts[k] is the visible count for direction k.
type Result struct {
	Instances int
	Counts    []int
	Min       int
	Max       int
	Mean      float64
	Expected  float64 // instances * frustum solid angle fraction
	Elapsed   time.Duration
}

// Spread returns (max-min)/mean, zero when nothing was visible.
func (r Result) Spread() float64 {
	if r.Mean == 0 {
		return 0
	}
	return float64(r.Max-r.Min) / r.Mean
}

// Run culls the world's instances once per direction. Directions are the
// points of a Fibonacci sphere, so the sweep covers every way the camera can
// face. Counts do not depend on Workers.
func Run(ctx context.Context, w *scene.World, cfg Config) (Result, error) {
	if cfg.Directions < fibsphere.MinPoints {
		return Result{}, fmt.Errorf("directions %d: %w", cfg.Directions, fibsphere.ErrTooFewPoints)
	}
	positions := w.Positions()
	if len(positions) == 0 {
		return Result{}, ErrNoInstances
	}
	radius := w.BoundingRadius()

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Directions {
		workers = cfg.Directions
	}

	start := time.Now()
	counts := make([]int, cfg.Directions)

	g, ctx := errgroup.WithContext(ctx)
	for wk := 0; wk < workers; wk++ {
		g.Go(func() error {
			cam := camera.NewFreeCamera()
			visible := make([]uint32, 0, len(positions))
			for k := wk; k < cfg.Directions; k += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				cam.LookAlong(scene.ToVec3(fibsphere.Point(k, cfg.Directions)))
				f := culling.FromMatrix(camera.ViewProjection(cfg.Projection, cam, cfg.Aspect))
				visible = culling.Cull(&f, positions, radius, visible[:0])
				counts[k] = len(visible)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("sweep: %w", err)
	}

	res := summarize(counts)
	res.Instances = len(positions)
	res.Elapsed = time.Since(start)
	aspect := cfg.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	res.Expected = float64(len(positions)) * culling.SolidAngleFraction(cfg.Projection.FovY, aspect)

	logger.Info("cull sweep finished",
		zap.Int("directions", cfg.Directions),
		zap.Int("workers", workers),
		zap.Int("instances", res.Instances),
		zap.Int("min", res.Min),
		zap.Int("max", res.Max),
		zap.Float64("mean", res.Mean),
		zap.Float64("expected", res.Expected),
		zap.Float64("spread", res.Spread()),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

func summarize(counts []int) Result {
	r := Result{Counts: counts, Min: gomath.MaxInt}
	var sum int
	for _, c := range counts {
		sum += c
		r.Min = min(r.Min, c)
		r.Max = max(r.Max, c)
	}
	if len(counts) == 0 {
		r.Min = 0
		return r
	}
	r.Mean = float64(sum) / float64(len(counts))
	return r
}
