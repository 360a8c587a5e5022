package refiner

const (
	// DefaultMinConfidence is confidence a pixel must exceed to be kept in output
	DefaultMinConfidence = float32(0.1)
)

// Composite copies original confidences of input where region is set and confidence exceeds minConfidence.
// Everything else is zero. Values are never rescaled.
func Composite(input []float32, region []uint8, minConfidence float32) []float32 {
	out := make([]float32, len(input))
	for i, v := range input {
		if region[i] > 0 && v > minConfidence {
			out[i] = v
		}
	}
	return out
}
