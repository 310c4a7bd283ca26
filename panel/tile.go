package panel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Spec describes a panel model and how panels are spaced on a face.
type Spec struct {
	WidthM      float64 `yaml:"width_m"`
	HeightM     float64 `yaml:"height_m"`
	GapM        float64 `yaml:"gap_m"`
	EdgeOffsetM float64 `yaml:"edge_offset_m"`
	PowerW      float64 `yaml:"power_w"`
	Efficiency  float64 `yaml:"efficiency"`

	// RackTiltDeg is the tilt of the racks panels are mounted on when the
	// face is flat. Tilted rows are spread apart by RowSpacingFactor so
	// they do not shade each other. It is ignored on sloped faces.
	RackTiltDeg float64 `yaml:"rack_tilt_deg"`
}

// FlatTiltDeg is the largest face tilt that counts as a flat roof.
const FlatTiltDeg = 5

// Tilt returns the tilt of panels laid on face: the rack tilt on a flat
// face, otherwise the face's own tilt.
func (s Spec) Tilt(face Face) float64 {
	if s.racked(face) {
		return s.RackTiltDeg
	}
	return face.TiltDeg()
}

func (s Spec) racked(face Face) bool {
	return s.RackTiltDeg > 0 && face.TiltDeg() <= FlatTiltDeg
}

// DefaultSpec returns a typical 400 W residential panel with 5 cm gaps and
// a 30 cm clearance from the roof edge.
func DefaultSpec() Spec {
	return Spec{
		WidthM:      1.0,
		HeightM:     1.6,
		GapM:        0.05,
		EdgeOffsetM: 0.3,
		PowerW:      400,
		Efficiency:  0.20,
	}
}

// Area returns the area of one panel in m².
func (s Spec) Area() float64 {
	return s.WidthM * s.HeightM
}

// A Placement is one panel positioned on a face.
type Placement struct {
	Center       r3.Vec
	Normal       r3.Vec
	WidthM       float64
	HeightM      float64
	PowerRatingW float64
}

// Area returns the area of the panel in m².
func (p Placement) Area() float64 {
	return p.WidthM * p.HeightM
}

// Tile fills face with a grid of panels. Panels are laid out with their
// width along face.U and their height along face.V, spaced by s.GapM, and
// kept s.EdgeOffsetM from every edge. On a flat face with tilted racks,
// rows are s.HeightM × RowSpacingFactor apart plus the gap. The grid is
// centered in the usable area. Placements keep the face normal. It returns
// nil if no panel fits.
func Tile(face Face, s Spec) []Placement {
	usableU := face.Width - 2*s.EdgeOffsetM
	usableV := face.Height - 2*s.EdgeOffsetM
	if usableU <= 0 || usableV <= 0 {
		return nil
	}
	pitchU := s.WidthM + s.GapM
	pitchV := s.HeightM + s.GapM
	if s.racked(face) {
		pitchV = s.HeightM*RowSpacingFactor(s.RackTiltDeg) + s.GapM
	}
	if pitchU <= 0 || pitchV <= 0 {
		return nil
	}
	nU := int(math.Floor(usableU / pitchU))
	nV := int(math.Floor(usableV / pitchV))
	if nU == 0 || nV == 0 {
		return nil
	}

	// Split the leftover space evenly on both sides.
	startU := s.EdgeOffsetM + (usableU-float64(nU)*pitchU)/2
	startV := s.EdgeOffsetM + (usableV-float64(nV)*pitchV)/2

	normal := face.Normal()
	out := make([]Placement, 0, nU*nV)
	for j := 0; j < nV; j++ {
		for i := 0; i < nU; i++ {
			u := startU + (float64(i)+0.5)*pitchU
			v := startV + (float64(j)+0.5)*pitchV
			out = append(out, Placement{
				Center:       face.at(u, v),
				Normal:       normal,
				WidthM:       s.WidthM,
				HeightM:      s.HeightM,
				PowerRatingW: s.PowerW,
			})
		}
	}
	return out
}
