package refiner

import (
	"image"
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correnctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
}

func TestGridIndexContains(t *testing.T) {
	grid := NewGrid(4, 3)
	if grid.Size() != 12 {
		t.Errorf("Expected size 12, got %d", grid.Size())
	}
	if idx := grid.Index(3, 2); idx != 11 {
		t.Errorf("Expected index 11, got %d", idx)
	}
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 1, false},
	}
	for _, c := range cases {
		if got := grid.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewRectFrom(t *testing.T) {
	rect := NewRectFrom(image.Rect(2, 3, 7, 11))
	expected := NewRect(2, 3, 5, 8)
	if rect != expected {
		t.Errorf("Expected rect %v, got %v", expected, rect)
	}
}

func TestPointNormalize(t *testing.T) {
	p := NewPointFrom(image.Pt(5, 30)).Normalize(NewGrid(10, 40))
	if math.Abs(p.X-0.5) > eps || math.Abs(p.Y-0.75) > eps {
		t.Errorf("Wrong normalized point: %v", p)
	}
}
