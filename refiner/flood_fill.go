package refiner

const (
	// DefaultSeedSearchRadius is max Chebyshev distance scanned around background seed
	DefaultSeedSearchRadius = 20
)

// Binarize marks every pixel with confidence strictly above threshold
func Binarize(mask []float32, threshold float32) []uint8 {
	out := make([]uint8, len(mask))
	for i, v := range mask {
		if v > threshold {
			out[i] = 1
		}
	}
	return out
}

// FindSeed returns the pixel flood fill should start from.
// If (x, y) is foreground it is returned as is. Otherwise squares of growing radius
// (1..searchRadius) around it are scanned row by row and the first foreground pixel wins.
// Returns false when seed is outside of grid or nothing has been found.
func FindSeed(img []uint8, grid Grid, x, y, searchRadius int) (int, int, bool) {
	if !grid.Contains(x, y) {
		return 0, 0, false
	}
	if img[grid.Index(x, y)] == 1 {
		return x, y, true
	}
	for r := 1; r <= searchRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				nx := x + dx
				ny := y + dy
				if grid.Contains(nx, ny) && img[grid.Index(nx, ny)] == 1 {
					return nx, ny, true
				}
			}
		}
	}
	return 0, 0, false
}

// Isolate extracts 4-connected foreground component reachable from seed (see FindSeed).
// Result is all-background when no seed could be found.
func Isolate(img []uint8, grid Grid, seedX, seedY, searchRadius int) []uint8 {
	out := make([]uint8, len(img))
	x, y, ok := FindSeed(img, grid, seedX, seedY, searchRadius)
	if !ok {
		return out
	}
	floodFill(img, out, grid, x, y)
	return out
}

// floodFill does breadth-first fill starting at foreground pixel (x, y).
// Pixels are marked when queued so none is queued twice.
func floodFill(img, out []uint8, grid Grid, x, y int) {
	start := grid.Index(x, y)
	queue := make([]int, 0, 64)
	queue = append(queue, start)
	out[start] = 1
	visit := func(nx, ny int) {
		if !grid.Contains(nx, ny) {
			return
		}
		idx := grid.Index(nx, ny)
		if out[idx] == 0 && img[idx] == 1 {
			out[idx] = 1
			queue = append(queue, idx)
		}
	}
	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		cx := idx % grid.Width
		cy := idx / grid.Width
		visit(cx-1, cy)
		visit(cx+1, cy)
		visit(cx, cy-1)
		visit(cx, cy+1)
	}
}
