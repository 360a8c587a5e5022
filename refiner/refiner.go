package refiner

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrInvalidGrid is returned when mask dimensions are not positive
var ErrInvalidGrid = errors.New("width and height must be positive")

// Refiner turns raw per-frame confidence masks into a temporally stable mask of a single selected object.
// Refiner is not safe for concurrent use.
type Refiner struct {
	id   uuid.UUID
	grid Grid
	// Last submitted masks for temporal smoothing
	history *history
	// Pipeline parameters
	kernelRadius      int
	binarizeThreshold float32
	minConfidence     float32
	seedSearchRadius  int
	// Region tracking
	region      RegionStats
	track       *regionTrack
	maxTrackLen int
	maxNoMatch  int
	logger      zerolog.Logger
}

// NewRefinerDefault creates Refiner with DefaultMaxHistory frames of history
func NewRefinerDefault(width, height int, options ...Option) (*Refiner, error) {
	return NewRefiner(width, height, DefaultMaxHistory, options...)
}

// NewRefiner creates new instance of Refiner.
// maxHistory below 1 is clamped to 1.
func NewRefiner(width, height, maxHistory int, options ...Option) (*Refiner, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidGrid, "Can't create refiner for %dx%d grid", width, height)
	}
	r := &Refiner{
		id:                uuid.New(),
		grid:              NewGrid(width, height),
		kernelRadius:      DefaultKernelRadius,
		binarizeThreshold: DefaultBinarizeThreshold,
		minConfidence:     DefaultMinConfidence,
		seedSearchRadius:  DefaultSeedSearchRadius,
		region:            RegionStats{Empty: true},
		maxTrackLen:       DefaultMaxTrackLen,
		maxNoMatch:        DefaultMaxNoMatch,
		logger:            zerolog.Nop(),
	}
	for _, option := range options {
		option(r)
	}
	r.logger = r.logger.With().Str("component", "refiner").Str("session", r.id.String()).Logger()
	if maxHistory < 1 {
		r.logger.Warn().Int("max_history", maxHistory).Msg("max history clamped to 1")
		maxHistory = 1
	}
	r.history = newHistory(maxHistory, r.grid.Size())
	return r, nil
}

// ID returns session identifier
func (r *Refiner) ID() uuid.UUID {
	return r.id
}

// Width returns grid width
func (r *Refiner) Width() int {
	return r.grid.Width
}

// Height returns grid height
func (r *Refiner) Height() int {
	return r.grid.Height
}

// MaxHistory returns max number of frames used for temporal smoothing
func (r *Refiner) MaxHistory() int {
	return r.history.capacity()
}

// HistoryLen returns number of frames currently kept
func (r *Refiner) HistoryLen() int {
	return r.history.len()
}

// Reset drops history and region track, e.g. when user selects another object
func (r *Refiner) Reset() {
	r.history.reset()
	r.track = nil
	r.region = RegionStats{Empty: true}
}

// Refine processes a new mask frame for click given in normalized [0,1] screen space:
//  1. Temporal smoothing over history
//  2. Thresholding and erosion to break bridges between touching objects
//  3. Isolation of the component under click (whole eroded mask if click is outside of grid)
//  4. Dilation to restore edges
//  5. Original confidences re-applied inside of isolated region
//
// If len(mask) does not match grid, mask is returned as is and nothing is recorded.
func (r *Refiner) Refine(mask []float32, clickX, clickY float32) []float32 {
	size := r.grid.Size()
	if len(mask) != size {
		r.logger.Debug().Int("got", len(mask)).Int("expected", size).Msg("mask size mismatch, returning input")
		return mask
	}

	averaged := r.history.submit(mask)

	eroded := Erode(Binarize(averaged, r.binarizeThreshold), r.grid, r.kernelRadius)

	var isolated []uint8
	if x, y, ok := r.clickToPixel(clickX, clickY); ok {
		isolated = Isolate(eroded, r.grid, x, y, r.seedSearchRadius)
	} else {
		r.logger.Debug().Float32("click_x", clickX).Float32("click_y", clickY).Msg("click outside of grid, isolation skipped")
		isolated = eroded
	}

	dilated := Dilate(isolated, r.grid, r.kernelRadius)
	refined := Composite(mask, dilated, r.minConfidence)

	r.updateRegion(refined)
	return refined
}

// clickToPixel converts normalized click into pixel coordinates by truncation toward zero,
// so values in (-1, 0) land on the first row/column.
func (r *Refiner) clickToPixel(clickX, clickY float32) (int, int, bool) {
	fx := clickX * float32(r.grid.Width)
	fy := clickY * float32(r.grid.Height)
	// Range check keeps int conversion defined; NaN fails it
	if !(fx > -1 && fx < float32(r.grid.Width)) || !(fy > -1 && fy < float32(r.grid.Height)) {
		return 0, 0, false
	}
	x, y := int(fx), int(fy)
	if !r.grid.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
