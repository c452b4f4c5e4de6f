package geometry

// Point is a 2D position in canvas pixel space.
type Point struct {
	X float64
	Y float64
}

// Circle is a circle primitive centered at (CenterX, CenterY).
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// Polyline is an ordered run of points drawn as connected segments.
// A drawable polyline has at least two points.
type Polyline struct {
	Points []Point
}

// Segment builds a two-point polyline between a and b.
func Segment(a, b Point) Polyline {
	return Polyline{Points: []Point{a, b}}
}
