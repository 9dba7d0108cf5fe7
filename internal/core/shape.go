package core

import "math"

// Shape is a closed set of plane figures: Circle, Square, and Triangle.
type Shape interface {
	isShape()
}

// Circle is a circle of the given radius.
type Circle struct {
	Radius float64
}

// Square is a square of the given side length.
type Square struct {
	Side float64
}

// Triangle is a triangle of the given base and height.
type Triangle struct {
	Base   float64
	Height float64
}

// Area returns the area of shape.
func Area(shape Shape) float64 {
	switch s := shape.(type) {
	case Circle:
		return math.Pi * s.Radius * s.Radius
	case Square:
		return s.Side * s.Side
	case Triangle:
		return s.Base * s.Height / 2 //nolint:mnd // half base times height
	default:
		Unreachable(shape)
		return 0
	}
}

func (Circle) isShape() {}

func (Square) isShape() {}

func (Triangle) isShape() {}
