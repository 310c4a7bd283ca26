package drawing

import (
	"fmt"
	"math"
)

// SignedArea returns the shoelace area of the closed polygon through
// points. It is positive for counter-clockwise winding. Fewer than 3
// points have zero area.
func SignedArea(points []Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range points {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}

// Area returns the absolute shoelace area of the closed polygon through
// points, in square drawing units.
func Area(points []Point) float64 {
	return math.Abs(SignedArea(points))
}

// Perimeter returns the length of the closed loop through points,
// including the segment from the last point back to the first. Fewer than
// 2 points have zero perimeter.
func Perimeter(points []Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := range points {
		sum += points[i].Distance(points[(i+1)%n])
	}
	return sum
}

// ScaledArea returns Area(points) converted to square meters, where scale
// is meters per drawing unit.
func ScaledArea(points []Point, scale float64) float64 {
	return Area(points) * scale * scale
}

// ScaledPerimeter returns Perimeter(points) converted to meters.
func ScaledPerimeter(points []Point, scale float64) float64 {
	return Perimeter(points) * scale
}

// FormatLength formats a length in meters for an on-canvas label. Lengths
// of at least a meter are shown in meters with two decimals; shorter ones
// in whole centimeters.
func FormatLength(meters float64) string {
	if meters >= 1 {
		return fmt.Sprintf("%.2fm", meters)
	}
	return fmt.Sprintf("%.0fcm", meters*100)
}

// FormatArea formats an area in square meters for an on-canvas label.
func FormatArea(squareMeters float64) string {
	return fmt.Sprintf("Area: %.2fm²", squareMeters)
}

// HasSelfIntersections reports whether any two non-adjacent edges of the
// closed polygon through points properly cross. Edges that only touch or
// are collinear do not count.
//
// This compares every pair of edges, which is fine for hand-drawn
// footprints of tens of points but does not scale to large polygons.
func HasSelfIntersections(points []Point) bool {
	n := len(points)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// The closing edge is adjacent to the first edge.
				continue
			}
			if segmentsCross(points[i], points[(i+1)%n], points[j], points[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// orient returns the sign of the turn a→b→c: positive for
// counter-clockwise, negative for clockwise, and 0 for collinear.
func orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// segmentsCross reports whether segments p1p2 and p3p4 properly cross.
func segmentsCross(p1, p2, p3, p4 Point) bool {
	d1 := orient(p3, p4, p1)
	d2 := orient(p3, p4, p2)
	d3 := orient(p1, p2, p3)
	d4 := orient(p1, p2, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
