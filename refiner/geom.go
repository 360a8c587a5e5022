package refiner

import (
	"image"
	"math"
)

// Grid describes the shape of a mask in row-major order.
type Grid struct {
	Width  int
	Height int
}

func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
	}
}

// Size returns number of pixels in grid
func (grid Grid) Size() int {
	return grid.Width * grid.Height
}

// Index returns row-major index of pixel (x, y)
func (grid Grid) Index(x, y int) int {
	return y*grid.Width + x
}

// Contains checks if pixel (x, y) lies inside of grid
func (grid Grid) Contains(x, y int) bool {
	return x >= 0 && x < grid.Width && y >= 0 && y < grid.Height
}

// Offset is a relative pixel shift used by structuring elements
type Offset struct {
	DX int
	DY int
}

type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

// Normalize maps pixel coordinates into [0,1] screen space of the grid
func (point Point) Normalize(grid Grid) Point {
	return Point{
		X: point.X / float64(grid.Width),
		Y: point.Y / float64(grid.Height),
	}
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}
