package refiner

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clampPixel truncates coordinate and limits it to [0, size-1]. NaN maps to 0
func clampPixel(value float64, size int) int {
	if !(value >= 0) {
		return 0
	}
	if value >= float64(size) {
		return size - 1
	}
	return int(value)
}
