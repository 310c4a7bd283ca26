package shade

import (
	"fmt"
	"os"

	"github.com/Kubis4/PVmizer-GEO-sub002/panel"
	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"gonum.org/v1/gonum/spatial/r3"
)

// A Scene is the set of meshes that can block sunlight from reaching the
// roof.
type Scene struct {
	layers []*layer
}

type layer struct {
	name   string
	mesh   *Mesh
	kind   Kind
	bounds solar.Bounds
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add adds a mesh to s.
func (s *Scene) Add(name string, m *Mesh, kind Kind) {
	s.layers = append(s.layers, &layer{name, m, kind, m.Bounds()})
}

// AddBuilding adds an opaque mesh to s.
func (s *Scene) AddBuilding(name string, m *Mesh) {
	s.Add(name, m, Opaque)
}

// AddFoliage adds a deciduous foliage mesh to s.
func (s *Scene) AddFoliage(name string, m *Mesh) {
	s.Add(name, m, Foliage)
}

// AddObstacle adds every part of o to s.
func (s *Scene) AddObstacle(o Obstacle) {
	for _, p := range o.Parts() {
		s.Add(p.Name, p.Mesh, p.Kind)
	}
}

// AddSTL reads a binary STL file and adds it to s.
func (s *Scene) AddSTL(path string, kind Kind) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	mesh, err := ReadSTL(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.Add(path, mesh, kind)
	return nil
}

// Meshes returns the meshes of s in the order they were added.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, l := range s.layers {
		out = append(out, l.mesh)
	}
	return out
}

// Kinds returns the kind of each mesh of s, parallel to Meshes.
func (s *Scene) Kinds() []Kind {
	var out []Kind
	for _, l := range s.layers {
		out = append(out, l.kind)
	}
	return out
}

// Len returns the number of meshes in s.
func (s *Scene) Len() int {
	return len(s.layers)
}

// Transmissivity returns the fraction of direct light that passes through
// a mesh of kind k on the given day of the year, from 0 for fully opaque
// to 1.
func Transmissivity(k Kind, dayOfYear int) float64 {
	switch k {
	case Evergreen:
		return 0.05
	case Foliage:
		// Based on Transmissivity of solar radiation through crowns of
		// single urban trees—application for outdoor thermal comfort
		// modelling. Konarska, et al.
		//
		// Foliated and defoliated trees have ~5% and ~50%
		// transmissivity, respectively. Use the meteorological seasons
		// to interpolate between these.
		//
		// TODO: This assumes northern hemisphere, and mid-latitudes at
		// that.
		const (
			// Assume a normal year. This is all approximate anyway.
			Feb28 = 59
			May31 = 151
			Aug31 = 243
			Nov30 = 334
		)
		day := dayOfYear
		switch {
		default: // Winter
			fallthrough
		case day <= Feb28: // Winter
			return 0.5
		case day <= May31: // Spring
			return 0.5 + float64(day-Feb28)/(May31-Feb28)*(0.05-0.5)
		case day <= Aug31: // Summer
			return 0.05
		case day <= Nov30: // Fall
			return 0.05 + float64(day-Aug31)/(Nov30-Aug31)*(0.5-0.05)
		}
	}
	return 0
}

// Light is the direct sunlight reaching a point.
type Light struct {
	Light   float64 // Multiplier of direct illumination, between 0 and 1
	Foliage bool    // This is blocked solely by foliage
}

// Light traces a ray from origin toward the sun and returns how much
// direct light arrives. sunDir must point toward the sun; if it is at or
// below the horizon no light arrives.
func (s *Scene) Light(origin, sunDir r3.Vec, dayOfYear int) Light {
	if sunDir.Z <= 0 {
		return Light{}
	}
	ray := Ray{Origin: origin, Dir: r3.Unit(sunDir)}
	light := 1.0
	building, foliage := false, false
	for _, l := range s.layers {
		if !ray.HitsBounds(l.bounds) || !ray.HitsMesh(l.mesh) {
			continue
		}
		light *= Transmissivity(l.kind, dayOfYear)
		if l.kind == Opaque {
			building = true
			break
		}
		foliage = true
	}
	return Light{Light: light, Foliage: foliage && !building}
}

// PanelLift is how far above a panel's surface its shading ray starts, so
// the roof under the panel does not shade it.
const PanelLift = 0.01

// PanelLight returns the fraction of direct light reaching the center of
// each placement.
func (s *Scene) PanelLight(placements []panel.Placement, sun solar.Position, dayOfYear int) []float64 {
	out := make([]float64, len(placements))
	for i, p := range placements {
		origin := r3.Add(p.Center, r3.Scale(PanelLift, r3.Unit(p.Normal)))
		out[i] = s.Light(origin, sun.Direction, dayOfYear).Light
	}
	return out
}
