package geometry

import "math"

// Shape is anything with a measurable surface. Every variant computes its
// area from its own dimensions only.
type Shape interface {
	Area() float64
}

type Rectangle struct {
	Width  float64
	Height float64
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Square is modeled as its own variant rather than a constrained Rectangle,
// so callers never special-case it.
type Square struct {
	Side float64
}

func (s Square) Area() float64 {
	return s.Side * s.Side
}

type Circle struct {
	Radius float64
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// TotalArea sums areas through the capability, not the concrete types.
func TotalArea(shapes []Shape) float64 {
	var total float64
	for _, shape := range shapes {
		total += shape.Area()
	}
	return total
}
