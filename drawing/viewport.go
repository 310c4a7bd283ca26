package drawing

import "math"

// Zoom limits and the per-step zoom factor of a Viewport.
const (
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 1.15
)

// A Viewport maps drawing space to screen space:
//
//	screen = drawing*Zoom + Pan
type Viewport struct {
	Pan  Point
	Zoom float64
}

// NewViewport returns the identity viewport.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

func (v Viewport) ScreenToDrawing(screen Point) Point {
	return screen.Sub(v.Pan).Scale(1 / v.Zoom)
}

func (v Viewport) DrawingToScreen(p Point) Point {
	return p.Scale(v.Zoom).Add(v.Pan)
}

// PanBy shifts the view by a screen-space delta.
func (v *Viewport) PanBy(delta Point) {
	v.Pan = v.Pan.Add(delta)
}

// ZoomAt zooms in or out by one ZoomStep, keeping the drawing point under
// the screen position cursor fixed. The zoom is clamped to
// [MinZoom, MaxZoom].
func (v *Viewport) ZoomAt(cursor Point, zoomIn bool) {
	factor := ZoomStep
	if !zoomIn {
		factor = 1 / ZoomStep
	}
	old := v.Zoom
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, old*factor))
	ratio := v.Zoom / old
	v.Pan = cursor.Sub(cursor.Sub(v.Pan).Scale(ratio))
}

// PointAt returns the index of the first point whose screen position is
// within radius pixels of screen, or -1.
func (v Viewport) PointAt(screen Point, points []Point, radius float64) int {
	for i, p := range points {
		if v.DrawingToScreen(p).Distance(screen) <= radius {
			return i
		}
	}
	return -1
}
