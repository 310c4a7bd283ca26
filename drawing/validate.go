package drawing

import "fmt"

// Area limits, in square meters, for a footprint to be extruded.
const (
	MinExtrudeArea = 0.01
	MaxExtrudeArea = 10000
)

// ValidationCode identifies why a footprint cannot be extruded.
type ValidationCode string

const (
	TooFewPoints     ValidationCode = "TOO_FEW_POINTS"
	AreaTooSmall     ValidationCode = "AREA_TOO_SMALL"
	AreaTooLarge     ValidationCode = "AREA_TOO_LARGE"
	SelfIntersecting ValidationCode = "SELF_INTERSECTING"
)

// A ValidationError describes a footprint that cannot be turned into a
// 3D model.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate checks that points, at scale meters per drawing unit, describe a
// footprint that can be extruded. It returns a *ValidationError or nil.
func Validate(points []Point, scale float64) error {
	if len(points) < 3 {
		return &ValidationError{TooFewPoints, fmt.Sprintf("need at least 3 points, have %d", len(points))}
	}
	area := ScaledArea(points, scale)
	if area < MinExtrudeArea {
		return &ValidationError{AreaTooSmall, fmt.Sprintf("polygon area %.4fm² is below %.2fm²", area, MinExtrudeArea)}
	}
	if area > MaxExtrudeArea {
		return &ValidationError{AreaTooLarge, fmt.Sprintf("polygon area %.1fm² is above %.0fm²; check the scale", area, float64(MaxExtrudeArea))}
	}
	if HasSelfIntersections(points) {
		return &ValidationError{SelfIntersecting, "polygon edges cross"}
	}
	return nil
}
