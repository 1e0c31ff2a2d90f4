package mcpi

// Point is a sample coordinate pair in [-1,1]x[-1,1].
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Classify reports whether p lies within the unit circle.
// The boundary counts as inside.
func Classify(p Point) bool {
	return p.X*p.X+p.Y*p.Y <= 1.0
}

// Inside is the method form of Classify.
func (p Point) Inside() bool {
	return Classify(p)
}

// PixelFor maps a sample to pixel coordinates on a width x height grid.
//
// The map is affine: px = floor((x+1)/2 * width), and likewise for y.
// Results are clamped to [0, width-1] and [0, height-1], so x or y exactly
// 1.0 lands on the last column or row instead of one past it. Coordinates
// outside [-1,1] clamp the same way.
func PixelFor(p Point, width, height int) (px, py int) {
	return axisPixel(p.X, width), axisPixel(p.Y, height)
}

func axisPixel(v float64, n int) int {
	if n <= 0 {
		return 0
	}
	f := (v + 1) / 2 * float64(n)
	// NaN fails both comparisons below; map it to 0 explicitly.
	if !(f > 0) {
		return 0
	}
	if f >= float64(n) {
		return n - 1
	}
	return int(f)
}
