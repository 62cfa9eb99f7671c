// Command cullbench builds the cube sphere without a window and reports how
// many cubes survive frustum culling across a sweep of camera directions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/manycubes/internal/config"
	"github.com/Faultbox/manycubes/internal/cullbench"
	"github.com/Faultbox/manycubes/internal/logger"
	"github.com/Faultbox/manycubes/internal/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	w := scene.NewWorld()
	sc := scene.ConfigFrom(cfg)
	if _, err := scene.Populate(w, sc); err != nil {
		return fmt.Errorf("populate: %w", err)
	}

	res, err := cullbench.Run(ctx, w, cullbench.Config{
		Directions: cfg.Bench.Directions,
		Workers:    cfg.Bench.Workers,
		Projection: sc.Camera.Projection,
		Aspect:     float32(cfg.Window.Width) / float32(cfg.Window.Height),
	})
	if err != nil {
		return err
	}

	fmt.Printf("instances  %d\n", res.Instances)
	fmt.Printf("directions %d\n", len(res.Counts))
	fmt.Printf("visible    min %d  max %d  mean %.1f  expected %.1f\n", res.Min, res.Max, res.Mean, res.Expected)
	fmt.Printf("spread     %.4f\n", res.Spread())
	fmt.Printf("elapsed    %v\n", res.Elapsed)
	return nil
}
