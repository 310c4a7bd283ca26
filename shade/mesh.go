// Package shade models the obstacles around a building as triangle meshes
// and traces rays toward the sun to find how much direct light reaches a
// point.
//
// The coordinate system is as follows:
//
//	Z/up
//	|  Y/north
//	| /
//	|/____ X/east
package shade

import (
	"math"

	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"gonum.org/v1/gonum/spatial/r3"
)

// A Mesh is a set of triangles over shared vertices.
type Mesh struct {
	Header string

	Verts []r3.Vec
	Tris  [][3]int
}

// Triangle returns the i'th triangle of m.
func (m *Mesh) Triangle(i int) r3.Triangle {
	idx := m.Tris[i]
	return r3.Triangle{m.Verts[idx[0]], m.Verts[idx[1]], m.Verts[idx[2]]}
}

// Merge appends the triangles of o to m.
func (m *Mesh) Merge(o *Mesh) {
	base := len(m.Verts)
	m.Verts = append(m.Verts, o.Verts...)
	for _, t := range o.Tris {
		m.Tris = append(m.Tris, [3]int{t[0] + base, t[1] + base, t[2] + base})
	}
}

// Bounds returns the axis-aligned bounding box of m.
func (m *Mesh) Bounds() solar.Bounds {
	if len(m.Verts) == 0 {
		return solar.Bounds{}
	}
	b := solar.Bounds{Min: m.Verts[0], Max: m.Verts[0]}
	for _, v := range m.Verts[1:] {
		b.Min = r3.Vec{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)}
	}
	return b
}

// Box returns a closed mesh of the axis-aligned box from min to max.
func Box(min, max r3.Vec) *Mesh {
	m := &Mesh{Verts: make([]r3.Vec, 8)}
	for i := range m.Verts {
		v := min
		if i&1 != 0 {
			v.X = max.X
		}
		if i&2 != 0 {
			v.Y = max.Y
		}
		if i&4 != 0 {
			v.Z = max.Z
		}
		m.Verts[i] = v
	}
	// Two triangles per face, wound counter-clockwise seen from outside.
	m.Tris = [][3]int{
		{0, 2, 1}, {1, 2, 3}, // bottom
		{4, 5, 6}, {5, 7, 6}, // top
		{0, 1, 4}, {1, 5, 4}, // south
		{2, 6, 3}, {3, 6, 7}, // north
		{0, 4, 2}, {2, 4, 6}, // west
		{1, 3, 5}, {3, 7, 5}, // east
	}
	return m
}

// Cylinder returns a closed vertical prism approximating a cylinder with
// the given base center, radius and height.
func Cylinder(base r3.Vec, radius, height float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := new(Mesh)
	// Vertex 2i is on the bottom ring and 2i+1 on the top ring. The
	// centers of the caps follow the rings.
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		p := r3.Vec{X: base.X + radius*math.Cos(a), Y: base.Y + radius*math.Sin(a), Z: base.Z}
		m.Verts = append(m.Verts, p, r3.Vec{X: p.X, Y: p.Y, Z: base.Z + height})
	}
	bottom, top := len(m.Verts), len(m.Verts)+1
	m.Verts = append(m.Verts, base, r3.Vec{X: base.X, Y: base.Y, Z: base.Z + height})

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		b0, t0, b1, t1 := 2*i, 2*i+1, 2*j, 2*j+1
		m.Tris = append(m.Tris,
			[3]int{b0, b1, t0}, [3]int{b1, t1, t0},
			[3]int{bottom, b1, b0},
			[3]int{top, t0, t1},
		)
	}
	return m
}

// Sphere returns a closed UV sphere. slices is the number of segments
// around the Z axis and stacks the number from pole to pole.
func Sphere(center r3.Vec, radius float64, slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	m := new(Mesh)
	// Poles first, then the interior rings from south to north.
	m.Verts = append(m.Verts,
		r3.Vec{X: center.X, Y: center.Y, Z: center.Z - radius},
		r3.Vec{X: center.X, Y: center.Y, Z: center.Z + radius},
	)
	for s := 1; s < stacks; s++ {
		phi := math.Pi*float64(s)/float64(stacks) - math.Pi/2
		for i := 0; i < slices; i++ {
			theta := 2 * math.Pi * float64(i) / float64(slices)
			m.Verts = append(m.Verts, r3.Vec{
				X: center.X + radius*math.Cos(phi)*math.Cos(theta),
				Y: center.Y + radius*math.Cos(phi)*math.Sin(theta),
				Z: center.Z + radius*math.Sin(phi),
			})
		}
	}
	ring := func(s, i int) int { return 2 + (s-1)*slices + i%slices }

	for i := 0; i < slices; i++ {
		m.Tris = append(m.Tris, [3]int{0, ring(1, i+1), ring(1, i)})
		m.Tris = append(m.Tris, [3]int{1, ring(stacks-1, i), ring(stacks-1, i+1)})
	}
	for s := 1; s < stacks-1; s++ {
		for i := 0; i < slices; i++ {
			a, b := ring(s, i), ring(s, i+1)
			c, d := ring(s+1, i), ring(s+1, i+1)
			m.Tris = append(m.Tris, [3]int{a, b, c}, [3]int{b, d, c})
		}
	}
	return m
}
