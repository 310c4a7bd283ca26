package shade

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind determines how much light passes through a mesh.
type Kind int

const (
	// Opaque blocks all direct light.
	Opaque Kind = iota
	// Foliage is deciduous foliage whose transmissivity varies with the
	// season.
	Foliage
	// Evergreen is foliage that keeps its needles all year.
	Evergreen
)

func (k Kind) String() string {
	switch k {
	case Opaque:
		return "opaque"
	case Foliage:
		return "foliage"
	case Evergreen:
		return "evergreen"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses the name of a Kind. "building" is accepted as a
// synonym for "opaque".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "opaque", "building":
		return Opaque, nil
	case "foliage":
		return Foliage, nil
	case "evergreen":
		return Evergreen, nil
	}
	return 0, fmt.Errorf("unknown mesh kind %q", s)
}

// A Part is one mesh of an obstacle.
type Part struct {
	Name string
	Mesh *Mesh
	Kind Kind
}

// An Obstacle is something that can cast a shadow on the roof.
type Obstacle interface {
	Parts() []Part
}

// Species is a kind of tree.
type Species string

const (
	Pine      Species = "pine"
	Oak       Species = "oak"
	Deciduous Species = "deciduous"
)

// meshSegments is the resolution of round meshes.
const meshSegments = 12

// A Tree is a trunk with a crown of foliage, standing on the ground at X,
// Y. Scale multiplies every dimension; 0 means 1.
type Tree struct {
	X, Y    float64
	Species Species
	Scale   float64
}

type treeShape struct {
	trunkHeight, trunkRadius float64
	crownRadius              float64
	crownOffset              float64 // Sphere center above the trunk top
}

var treeShapes = map[Species]treeShape{
	Pine:      {trunkHeight: 2.5, trunkRadius: 0.3, crownRadius: 1.5},
	Oak:       {trunkHeight: 3.0, trunkRadius: 0.4, crownRadius: 3.5, crownOffset: 2},
	Deciduous: {trunkHeight: 3.5, trunkRadius: 0.35, crownRadius: 2.5, crownOffset: 1.5},
}

// pineLayers are the stacked discs of a pine crown: offset above the trunk
// top, radius and thickness.
var pineLayers = [][3]float64{
	{0.5, 2.2, 0.8},
	{1.2, 1.9, 0.8},
	{1.9, 1.6, 0.8},
	{2.6, 1.3, 0.7},
	{3.2, 1.0, 0.7},
}

func (t Tree) Parts() []Part {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	shape, ok := treeShapes[t.Species]
	if !ok {
		shape = treeShapes[Deciduous]
	}
	base := r3.Vec{X: t.X, Y: t.Y}
	trunkTop := shape.trunkHeight * s
	trunk := Part{
		Name: string(t.Species) + " trunk",
		Mesh: Cylinder(base, shape.trunkRadius*s, trunkTop, meshSegments),
		Kind: Opaque,
	}

	crown := new(Mesh)
	kind := Foliage
	if t.Species == Pine {
		kind = Evergreen
		for _, l := range pineLayers {
			// Layers are centered on their offset.
			z := trunkTop + (l[0]-l[2]/2)*s
			crown.Merge(Cylinder(r3.Vec{X: t.X, Y: t.Y, Z: z}, l[1]*s, l[2]*s, 2*meshSegments))
		}
	} else {
		center := r3.Vec{X: t.X, Y: t.Y, Z: trunkTop + shape.crownOffset*s}
		crown = Sphere(center, shape.crownRadius*s, 2*meshSegments, meshSegments)
	}
	return []Part{trunk, {Name: string(t.Species) + " crown", Mesh: crown, Kind: kind}}
}

// A Pole is a utility pole standing on the ground at X, Y. Its height is
// 7 m times Scale; 0 means 1.
type Pole struct {
	X, Y  float64
	Scale float64
}

const (
	poleHeight = 7.0
	poleRadius = 0.15
)

func (p Pole) Parts() []Part {
	s := p.Scale
	if s == 0 {
		s = 1
	}
	return []Part{{
		Name: "pole",
		Mesh: Cylinder(r3.Vec{X: p.X, Y: p.Y}, poleRadius, poleHeight*s, meshSegments),
		Kind: Opaque,
	}}
}

// A Chimney is a box standing on the roof, centered at Base. Zero
// dimensions take the defaults of a 0.6 × 0.6 m chimney 1.2 m tall.
type Chimney struct {
	Base                     r3.Vec
	WidthM, LengthM, HeightM float64
}

const (
	DefaultChimneyWidth  = 0.6
	DefaultChimneyLength = 0.6
	DefaultChimneyHeight = 1.2
)

// Dims returns the chimney's dimensions with defaults applied.
func (c Chimney) Dims() (w, l, h float64) {
	w, l, h = c.WidthM, c.LengthM, c.HeightM
	if w == 0 {
		w = DefaultChimneyWidth
	}
	if l == 0 {
		l = DefaultChimneyLength
	}
	if h == 0 {
		h = DefaultChimneyHeight
	}
	return
}

func (c Chimney) Parts() []Part {
	w, l, h := c.Dims()
	lo := r3.Vec{X: c.Base.X - w/2, Y: c.Base.Y - l/2, Z: c.Base.Z}
	hi := r3.Vec{X: c.Base.X + w/2, Y: c.Base.Y + l/2, Z: c.Base.Z + h}
	return []Part{{Name: "chimney", Mesh: Box(lo, hi), Kind: Opaque}}
}
