package refiner

// DiskKernel returns every offset (dx, dy) with dx*dx+dy*dy <= radius*radius in raster order.
// Negative radius is treated as zero.
func DiskKernel(radius int) []Offset {
	radius = maxInt(radius, 0)
	kernel := make([]Offset, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				kernel = append(kernel, Offset{DX: dx, DY: dy})
			}
		}
	}
	return kernel
}

// Erode returns binary erosion of img with disk kernel.
// A pixel survives only when every kernel neighbour is inside of grid and equal to 1,
// so anything closer than radius to the border is always cleared.
func Erode(img []uint8, grid Grid, radius int) []uint8 {
	out := make([]uint8, len(img))
	kernel := DiskKernel(radius)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			out[grid.Index(x, y)] = erodeAt(img, grid, kernel, x, y)
		}
	}
	return out
}

func erodeAt(img []uint8, grid Grid, kernel []Offset, x, y int) uint8 {
	for _, offset := range kernel {
		nx := x + offset.DX
		ny := y + offset.DY
		if !grid.Contains(nx, ny) {
			return 0
		}
		if img[grid.Index(nx, ny)] == 0 {
			return 0
		}
	}
	return 1
}

// Dilate returns binary dilation of img with disk kernel.
// Kernel cells falling outside of grid are skipped.
func Dilate(img []uint8, grid Grid, radius int) []uint8 {
	out := make([]uint8, len(img))
	kernel := DiskKernel(radius)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if img[grid.Index(x, y)] != 1 {
				continue
			}
			for _, offset := range kernel {
				nx := x + offset.DX
				ny := y + offset.DY
				if grid.Contains(nx, ny) {
					out[grid.Index(nx, ny)] = 1
				}
			}
		}
	}
	return out
}
