package main

import (
	"image"
	"os"

	"github.com/rs/zerolog"

	"github.com/LdDl/mask-refiner/config"
	"github.com/LdDl/mask-refiner/refiner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		errLogger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Logger()

	r, err := refiner.NewRefiner(cfg.Width, cfg.Height, cfg.MaxHistory, refiner.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create refiner")
	}

	grid := refiner.NewGrid(cfg.Width, cfg.Height)
	blobSide := minSide(cfg.Width, cfg.Height) / 3

	// Start with a click on the moving blob
	click := refiner.NewPoint(0.25, 0.5)
	for frame := 0; frame < cfg.Frames; frame++ {
		mask := syntheticFrame(grid, frame, blobSide)
		refined := r.Refine(mask, float32(click.X), float32(click.Y))
		region := r.Region()
		logger.Info().
			Int("frame", frame).
			Int("area", region.Area).
			Float64("cx", region.Centroid.X).
			Float64("cy", region.Centroid.Y).
			Int("pixels", len(refined)).
			Msg("refined")
		if predicted, ok := r.PredictedCenter(); ok {
			click = predicted
		}
	}
}

// syntheticFrame draws a static blob on the right and a blob drifting to the right on the left half.
func syntheticFrame(grid refiner.Grid, frame, side int) []float32 {
	mask := make([]float32, grid.Size())
	moving := refiner.NewPointFrom(image.Pt(grid.Width/8+frame%(grid.Width/4+1), grid.Height/2-side/2))
	static := refiner.NewPointFrom(image.Pt(grid.Width*5/8, grid.Height/2-side/2))
	for _, origin := range []refiner.Point{moving, static} {
		for y := int(origin.Y); y < int(origin.Y)+side; y++ {
			for x := int(origin.X); x < int(origin.X)+side; x++ {
				if grid.Contains(x, y) {
					mask[grid.Index(x, y)] = 0.9
				}
			}
		}
	}
	return mask
}

func minSide(width, height int) int {
	if width < height {
		return width
	}
	return height
}
