package refiner

import (
	"testing"
)

// countForeground returns number of pixels equal to 1
func countForeground(img []uint8) int {
	count := 0
	for _, v := range img {
		if v == 1 {
			count++
		}
	}
	return count
}

func filled(grid Grid, value uint8) []uint8 {
	img := make([]uint8, grid.Size())
	for i := range img {
		img[i] = value
	}
	return img
}

func TestDiskKernel(t *testing.T) {
	// Number of integer points inside of circle of radius r
	correctSizes := map[int]int{0: 1, 1: 5, 2: 13, 5: 81}
	for radius, correctSize := range correctSizes {
		kernel := DiskKernel(radius)
		if len(kernel) != correctSize {
			t.Errorf("radius %d: kernel size %d, expected %d", radius, len(kernel), correctSize)
		}
		for _, offset := range kernel {
			if offset.DX*offset.DX+offset.DY*offset.DY > radius*radius {
				t.Errorf("radius %d: offset %v is outside of disk", radius, offset)
			}
		}
	}
	if len(DiskKernel(-3)) != 1 {
		t.Error("Negative radius should be treated as zero")
	}
}

func TestErodeBorderPolicy(t *testing.T) {
	grid := NewGrid(20, 16)
	radius := 3
	out := Erode(filled(grid, 1), grid, radius)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			inner := x >= radius && x < grid.Width-radius && y >= radius && y < grid.Height-radius
			want := uint8(0)
			if inner {
				want = 1
			}
			if got := out[grid.Index(x, y)]; got != want {
				t.Errorf("pixel (%d, %d): got %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestErodeRemovesThinBridge(t *testing.T) {
	grid := NewGrid(30, 12)
	img := make([]uint8, grid.Size())
	// Two 10x10 squares joined by 2px wide bridge
	for y := 1; y < 11; y++ {
		for x := 1; x < 11; x++ {
			img[grid.Index(x, y)] = 1
			img[grid.Index(x+18, y)] = 1
		}
	}
	for y := 5; y < 7; y++ {
		for x := 11; x < 19; x++ {
			img[grid.Index(x, y)] = 1
		}
	}
	out := Erode(img, grid, 2)
	for y := 0; y < grid.Height; y++ {
		for x := 11; x < 19; x++ {
			if out[grid.Index(x, y)] != 0 {
				t.Errorf("bridge pixel (%d, %d) survived erosion", x, y)
			}
		}
	}
	if out[grid.Index(5, 5)] != 1 || out[grid.Index(23, 5)] != 1 {
		t.Error("square centers should survive erosion")
	}
}

func TestErodeDilateZeroRadius(t *testing.T) {
	grid := NewGrid(5, 5)
	img := make([]uint8, grid.Size())
	img[grid.Index(0, 0)] = 1
	img[grid.Index(2, 3)] = 1
	eroded := Erode(img, grid, 0)
	dilated := Dilate(img, grid, 0)
	for i := range img {
		if eroded[i] != img[i] || dilated[i] != img[i] {
			t.Errorf("pixel %d: zero radius should be identity", i)
		}
	}
}

func TestDilateEmpty(t *testing.T) {
	grid := NewGrid(12, 9)
	out := Dilate(filled(grid, 0), grid, 5)
	if n := countForeground(out); n != 0 {
		t.Errorf("Dilating empty mask produced %d foreground pixels", n)
	}
}

func TestDilateSinglePixel(t *testing.T) {
	grid := NewGrid(21, 21)
	img := make([]uint8, grid.Size())
	img[grid.Index(10, 10)] = 1
	if n := countForeground(Dilate(img, grid, 2)); n != 13 {
		t.Errorf("Expected 13 foreground pixels, got %d", n)
	}

	// Kernel cells outside of grid are skipped
	corner := make([]uint8, grid.Size())
	corner[grid.Index(0, 0)] = 1
	if n := countForeground(Dilate(corner, grid, 2)); n != 6 {
		t.Errorf("Expected 6 foreground pixels, got %d", n)
	}
}

func TestDilateMonotonic(t *testing.T) {
	grid := NewGrid(17, 13)
	img := make([]uint8, grid.Size())
	for i := range img {
		if (i*7)%11 < 3 {
			img[i] = 1
		}
	}
	for radius := 0; radius <= 4; radius++ {
		out := Dilate(img, grid, radius)
		for i := range img {
			if img[i] == 1 && out[i] != 1 {
				t.Errorf("radius %d: pixel %d lost after dilation", radius, i)
			}
		}
		if countForeground(out) < countForeground(img) {
			t.Errorf("radius %d: foreground decreased", radius)
		}
	}
}
