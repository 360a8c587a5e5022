package refiner

import (
	"github.com/rs/zerolog"
)

const (
	// DefaultKernelRadius is radius of disk used for erosion and dilation
	DefaultKernelRadius = 5
	// DefaultBinarizeThreshold is confidence an averaged pixel must exceed to become foreground
	DefaultBinarizeThreshold = float32(0.5)
	// DefaultMaxHistory is used by NewRefinerDefault
	DefaultMaxHistory = 5
	// DefaultMaxTrackLen is max number of centroids kept in region track
	DefaultMaxTrackLen = 150
	// DefaultMaxNoMatch is number of frames without region after which track is dropped
	DefaultMaxNoMatch = 75
)

// Option configures Refiner
type Option func(*Refiner)

// WithLogger sets logger. Default is no-op logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Refiner) {
		r.logger = logger
	}
}

// WithKernelRadius sets radius of disk kernel for erosion and dilation
func WithKernelRadius(radius int) Option {
	return func(r *Refiner) {
		r.kernelRadius = maxInt(radius, 0)
	}
}

// WithBinarizeThreshold sets threshold applied to averaged mask
func WithBinarizeThreshold(threshold float32) Option {
	return func(r *Refiner) {
		r.binarizeThreshold = threshold
	}
}

// WithMinConfidence sets confidence a pixel must exceed to be copied into output
func WithMinConfidence(minConfidence float32) Option {
	return func(r *Refiner) {
		r.minConfidence = minConfidence
	}
}

// WithSeedSearchRadius sets how far (Chebyshev distance) to look for foreground around background click
func WithSeedSearchRadius(radius int) Option {
	return func(r *Refiner) {
		r.seedSearchRadius = maxInt(radius, 0)
	}
}

// WithMaxNoMatch sets number of frames without region after which track is dropped
func WithMaxNoMatch(maxNoMatch int) Option {
	return func(r *Refiner) {
		r.maxNoMatch = maxInt(maxNoMatch, 0)
	}
}

// WithMaxTrackLen sets max length of region centroid track
func WithMaxTrackLen(maxTrackLen int) Option {
	return func(r *Refiner) {
		r.maxTrackLen = maxInt(maxTrackLen, 1)
	}
}
