// Package site loads the description of a roof and its surroundings from
// YAML and turns it into the inputs of the solar, panel and shade
// packages.
package site

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Kubis4/PVmizer-GEO-sub002/panel"
	"github.com/Kubis4/PVmizer-GEO-sub002/shade"
	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// A Site is a building, the panels to lay out on its roof, and the things
// around it that can shade them.
type Site struct {
	Name          string       `yaml:"name"`
	Location      Location     `yaml:"location"`
	WeatherFactor float64      `yaml:"weather_factor"`
	Day           int          `yaml:"day"`
	Hour          float64      `yaml:"hour"`
	Building      Building     `yaml:"building"`
	Panel         panel.Spec   `yaml:"panel"`
	Losses        panel.Losses `yaml:"losses"`
	Faces         []Face       `yaml:"faces"`
	Obstacles     []Obstacle   `yaml:"obstacles"`

	// dir is the directory relative paths in the file resolve against.
	dir string
}

// Location is where the site is on Earth.
type Location struct {
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	ElevationM float64 `yaml:"elevation_m"`

	// UTCOffset is the offset of local clock time from UTC in hours. If
	// omitted, it is estimated from the longitude.
	UTCOffset *float64 `yaml:"utc_offset"`
}

// UTCOffsetHours returns the local clock offset from UTC.
func (l Location) UTCOffsetHours() float64 {
	if l.UTCOffset != nil {
		return *l.UTCOffset
	}
	return solar.ApproxUTCOffset(l.Longitude)
}

// A Building is a box centered on the origin, standing on the ground.
type Building struct {
	WidthM  float64 `yaml:"width_m"`  // Along X (east)
	LengthM float64 `yaml:"length_m"` // Along Y (north)
	HeightM float64 `yaml:"height_m"`
}

// Bounds returns the box the building occupies.
func (b Building) Bounds() solar.Bounds {
	return solar.Bounds{
		Min: r3.Vec{X: -b.WidthM / 2, Y: -b.LengthM / 2},
		Max: r3.Vec{X: b.WidthM / 2, Y: b.LengthM / 2, Z: b.HeightM},
	}
}

// XYZ is a point or direction in site coordinates (X east, Y north, Z up,
// in meters).
type XYZ struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (p XYZ) vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// A Face is a rectangular roof face. U and V are the perpendicular
// directions of its width and height edges from Origin and need not be
// unit length. U × V should point out of the roof.
type Face struct {
	Origin  XYZ     `yaml:"origin"`
	U       XYZ     `yaml:"u"`
	V       XYZ     `yaml:"v"`
	WidthM  float64 `yaml:"width_m"`
	HeightM float64 `yaml:"height_m"`
}

// Obstacle types.
const (
	TypeTree    = "tree"
	TypePole    = "pole"
	TypeChimney = "chimney"
	TypeSTL     = "stl"
)

// An Obstacle is something that can shade the roof. Which fields apply
// depends on Type. Trees and poles stand on the ground at X, Y. Chimneys
// stand on the roof at X, Y. STL files are read from Path and cast shade
// according to Kind.
type Obstacle struct {
	Type    string  `yaml:"type"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Species string  `yaml:"species"`
	Scale   float64 `yaml:"scale"`
	WidthM  float64 `yaml:"width_m"`
	LengthM float64 `yaml:"length_m"`
	HeightM float64 `yaml:"height_m"`
	Path    string  `yaml:"path"`
	Kind    string  `yaml:"kind"`
}

// Defaults returns a site in Nitra, Slovakia at noon on the summer
// solstice, with a 10 × 8 m building 6 m tall and the default panel and
// losses.
func Defaults() *Site {
	return &Site{
		Location: Location{
			Latitude:   48.3061,
			Longitude:  18.0764,
			ElevationM: 190,
		},
		WeatherFactor: 1,
		Day:           172,
		Hour:          12,
		Building:      Building{WidthM: 10, LengthM: 8, HeightM: 6},
		Panel:         panel.DefaultSpec(),
		Losses:        panel.DefaultLosses(),
	}
}

// Load reads a site from a YAML file. Settings missing from the file keep
// their Defaults.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site file: %w", err)
	}

	s := Defaults()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing site YAML: %w", err)
	}
	s.dir = filepath.Dir(path)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site %s: %w", path, err)
	}
	return s, nil
}

// Validate reports every setting of s that is out of range.
func (s *Site) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	l := s.Location
	check(l.Latitude >= -90 && l.Latitude <= 90, "latitude %g out of range [-90, 90]", l.Latitude)
	check(l.Longitude >= -180 && l.Longitude <= 180, "longitude %g out of range [-180, 180]", l.Longitude)
	if l.UTCOffset != nil {
		check(*l.UTCOffset >= -12 && *l.UTCOffset <= 14, "utc_offset %g out of range [-12, 14]", *l.UTCOffset)
	}
	check(s.WeatherFactor >= 0 && s.WeatherFactor <= 1, "weather_factor %g out of range [0, 1]", s.WeatherFactor)
	check(s.Day >= 1 && s.Day <= 366, "day %d out of range [1, 366]", s.Day)
	check(s.Hour >= 0 && s.Hour <= 24, "hour %g out of range [0, 24]", s.Hour)

	b := s.Building
	check(b.WidthM > 0 && b.LengthM > 0 && b.HeightM > 0, "building dimensions must be positive")

	p := s.Panel
	check(p.WidthM > 0 && p.HeightM > 0, "panel dimensions must be positive")
	check(p.GapM >= 0 && p.EdgeOffsetM >= 0, "panel gap and edge offset must not be negative")
	check(p.PowerW > 0, "panel power_w must be positive")
	check(p.Efficiency > 0 && p.Efficiency <= 1, "panel efficiency %g out of range (0, 1]", p.Efficiency)
	check(p.RackTiltDeg >= 0 && p.RackTiltDeg < 90, "panel rack_tilt_deg %g out of range [0, 90)", p.RackTiltDeg)

	for _, f := range []float64{s.Losses.Inverter, s.Losses.DCAC, s.Losses.Soiling, s.Losses.Aging} {
		if f < 0 || f > 1 {
			check(false, "loss factor %g out of range [0, 1]", f)
			break
		}
	}

	for i, f := range s.Faces {
		check(f.WidthM > 0 && f.HeightM > 0, "face %d: dimensions must be positive", i)
		u, v := f.U.vec(), f.V.vec()
		if r3.Norm(u) == 0 || r3.Norm(v) == 0 {
			check(false, "face %d: edge directions must not be zero", i)
			continue
		}
		check(math.Abs(r3.Dot(r3.Unit(u), r3.Unit(v))) < 1e-6, "face %d: edge directions must be perpendicular", i)
	}

	for i, o := range s.Obstacles {
		switch o.Type {
		case TypeTree:
			switch shade.Species(o.Species) {
			case shade.Pine, shade.Oak, shade.Deciduous, "":
			default:
				check(false, "obstacle %d: unknown tree species %q", i, o.Species)
			}
		case TypePole, TypeChimney:
		case TypeSTL:
			check(o.Path != "", "obstacle %d: stl needs a path", i)
			if o.Kind != "" {
				_, err := shade.ParseKind(o.Kind)
				check(err == nil, "obstacle %d: %v", i, err)
			}
		default:
			check(false, "obstacle %d: unknown type %q", i, o.Type)
		}
		check(o.Scale >= 0, "obstacle %d: scale must not be negative", i)
	}

	return errors.Join(errs...)
}

// Bounds returns the bounds of the building.
func (s *Site) Bounds() solar.Bounds {
	return s.Building.Bounds()
}

// Sun returns the position of the sun at the site's day and hour.
func (s *Site) Sun() solar.Position {
	return solar.Compute(s.Location.Latitude, s.Location.Longitude, s.Day, s.Hour)
}

// RoofFaces returns the faces panels can be laid on. If the site lists
// none, this is the flat top of the building.
func (s *Site) RoofFaces() []panel.Face {
	if len(s.Faces) == 0 {
		return []panel.Face{panel.FlatFace(s.Bounds())}
	}
	faces := make([]panel.Face, len(s.Faces))
	for i, f := range s.Faces {
		faces[i] = panel.Face{
			Origin: f.Origin.vec(),
			U:      r3.Unit(f.U.vec()),
			V:      r3.Unit(f.V.vec()),
			Width:  f.WidthM,
			Height: f.HeightM,
		}
	}
	return faces
}

// Placements tiles every roof face with panels.
func (s *Site) Placements() []panel.Placement {
	var all []panel.Placement
	for _, f := range s.RoofFaces() {
		all = append(all, panel.Tile(f, s.Panel)...)
	}
	return all
}

// RoofArea returns the total area of the roof faces.
func (s *Site) RoofArea() float64 {
	var a float64
	for _, f := range s.RoofFaces() {
		a += f.Area()
	}
	return a
}

// Chimneys returns the chimneys on the roof.
func (s *Site) Chimneys() []panel.Chimney {
	var cs []panel.Chimney
	for _, o := range s.Obstacles {
		if o.Type != TypeChimney {
			continue
		}
		w, l, h := s.chimney(o).Dims()
		cs = append(cs, panel.Chimney{WidthM: w, LengthM: l, HeightM: h})
	}
	return cs
}

func (s *Site) chimney(o Obstacle) shade.Chimney {
	return shade.Chimney{
		Base:    r3.Vec{X: o.X, Y: o.Y, Z: s.Building.HeightM},
		WidthM:  o.WidthM,
		LengthM: o.LengthM,
		HeightM: o.HeightM,
	}
}

// Scene builds the shading scene of the site: the building itself and
// every obstacle.
func (s *Site) Scene() (*shade.Scene, error) {
	b := s.Bounds()
	scene := shade.NewScene()
	scene.AddBuilding("building", shade.Box(b.Min, b.Max))

	for i, o := range s.Obstacles {
		switch o.Type {
		case TypeTree:
			species := shade.Species(o.Species)
			if species == "" {
				species = shade.Deciduous
			}
			scene.AddObstacle(shade.Tree{X: o.X, Y: o.Y, Species: species, Scale: o.Scale})
		case TypePole:
			scene.AddObstacle(shade.Pole{X: o.X, Y: o.Y, Scale: o.Scale})
		case TypeChimney:
			scene.AddObstacle(s.chimney(o))
		case TypeSTL:
			kind := shade.Opaque
			if o.Kind != "" {
				k, err := shade.ParseKind(o.Kind)
				if err != nil {
					return nil, fmt.Errorf("obstacle %d: %w", i, err)
				}
				kind = k
			}
			if err := scene.AddSTL(s.resolve(o.Path), kind); err != nil {
				return nil, fmt.Errorf("obstacle %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("obstacle %d: unknown type %q", i, o.Type)
		}
	}
	return scene, nil
}

func (s *Site) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}

// RoofCenter returns the point just above the middle of the building's
// roof.
func (s *Site) RoofCenter() r3.Vec {
	b := s.Bounds()
	return r3.Vec{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: b.Max.Z + shade.PanelLift,
	}
}
