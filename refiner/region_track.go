package refiner

import (
	"image"

	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// RegionStats describes isolated region of a refined mask.
type RegionStats struct {
	// Number of pixels with non-zero confidence
	Area int
	// Bounding box in pixels
	BBox Rectangle
	// Mean pixel position
	Centroid Point
	Empty    bool
}

// MeasureRegion computes RegionStats for every pixel of mask with non-zero value
func MeasureRegion(mask []float32, grid Grid) RegionStats {
	minX, minY := grid.Width, grid.Height
	maxX, maxY := -1, -1
	sumX, sumY := 0.0, 0.0
	area := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if mask[grid.Index(x, y)] <= 0 {
				continue
			}
			area++
			sumX += float64(x)
			sumY += float64(y)
			minX = minInt(minX, x)
			minY = minInt(minY, y)
			maxX = maxInt(maxX, x)
			maxY = maxInt(maxY, y)
		}
	}
	if area == 0 {
		return RegionStats{Empty: true}
	}
	return RegionStats{
		Area:     area,
		BBox:     NewRectFrom(image.Rect(minX, minY, maxX+1, maxY+1)),
		Centroid: NewPoint(sumX/float64(area), sumY/float64(area)),
	}
}

// regionTrack follows centroid of isolated region over frames with 2D Kalman filter.
type regionTrack struct {
	currentCenter         Point
	predictedNextPosition Point
	track                 []Point
	maxTrackLen           int
	noMatchTimes          int
	// Distance between two last smoothed centers
	lastJump float64
	tracker  *kalman_filter.Kalman2D
}

func newRegionTrack(center Point, maxTrackLen int, dt float64) *regionTrack {
	/* Kalman filter props */
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(center.X, center.Y))
	rt := regionTrack{
		currentCenter: center,
		track:         make([]Point, 0, maxTrackLen),
		maxTrackLen:   maxTrackLen,
		tracker:       kf,
	}
	rt.track = append(rt.track, center)
	rt.predictNextPosition()
	return &rt
}

// predictNextPosition executes Kalman filter's first step
func (rt *regionTrack) predictNextPosition() {
	rt.tracker.Predict()
	stateX, stateY := rt.tracker.GetState()
	rt.predictedNextPosition.X = stateX
	rt.predictedNextPosition.Y = stateY
}

// observe corrects filter with measured centroid, extends track and predicts next position
func (rt *regionTrack) observe(center Point) error {
	err := rt.tracker.Update(center.X, center.Y)
	if err != nil {
		return errors.Wrap(err, "Can't update region tracker")
	}
	stateX, stateY := rt.tracker.GetState()
	smoothed := Point{X: stateX, Y: stateY}
	rt.lastJump = euclideanDistance(rt.currentCenter, smoothed)
	rt.currentCenter = smoothed
	rt.noMatchTimes = 0
	rt.track = append(rt.track, smoothed)
	if len(rt.track) > rt.maxTrackLen {
		rt.track = rt.track[1:]
	}
	rt.predictNextPosition()
	return nil
}

// miss is called when region has not been found on the frame: filter keeps coasting
func (rt *regionTrack) miss() {
	rt.noMatchTimes++
	rt.predictNextPosition()
}

// updateRegion measures refined mask and feeds its centroid into region track
func (r *Refiner) updateRegion(refined []float32) {
	r.region = MeasureRegion(refined, r.grid)
	if r.region.Empty {
		if r.track == nil {
			return
		}
		r.track.miss()
		if r.track.noMatchTimes > r.maxNoMatch {
			r.logger.Debug().Int("no_match", r.track.noMatchTimes).Msg("region lost, track dropped")
			r.track = nil
		}
		return
	}
	if r.track == nil {
		r.track = newRegionTrack(r.region.Centroid, r.maxTrackLen, 1.0)
		return
	}
	err := r.track.observe(r.region.Centroid)
	if err != nil {
		r.logger.Error().Err(err).Msg("region track update failed")
		return
	}
	r.logger.Debug().Int("area", r.region.Area).Float64("jump", r.track.lastJump).Msg("region tracked")
}

// Region returns stats of the last refined mask
func (r *Refiner) Region() RegionStats {
	return r.region
}

// Track returns copy of smoothed region centers in pixels, oldest first
func (r *Refiner) Track() []Point {
	if r.track == nil {
		return nil
	}
	track := make([]Point, len(r.track.track))
	copy(track, r.track.track)
	return track
}

// PredictedCenter returns expected region center on the next frame in normalized [0,1) space.
// Prediction is snapped to the center of the nearest pixel inside of grid,
// so it can be passed back to Refine as click to follow a moving object.
func (r *Refiner) PredictedCenter() (Point, bool) {
	if r.track == nil {
		return Point{}, false
	}
	predicted := r.track.predictedNextPosition
	px := clampPixel(predicted.X, r.grid.Width)
	py := clampPixel(predicted.Y, r.grid.Height)
	return NewPoint(float64(px)+0.5, float64(py)+0.5).Normalize(r.grid), true
}
