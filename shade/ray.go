package shade

import (
	"math"

	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"gonum.org/v1/gonum/spatial/r3"
)

type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec // Must be normalized
}

// HitsMesh reports whether r intersects any triangle of m. It stops at the
// first hit.
func (r *Ray) HitsMesh(m *Mesh) bool {
	for i := range m.Tris {
		tri := m.Triangle(i)
		if _, ok := r.IntersectTriangle(&tri); ok {
			return true
		}
	}
	return false
}

func (r *Ray) IntersectTriangle(tri *r3.Triangle) (t float64, ok bool) {
	// Möller–Trumbore intersection, based on Wikipedia implementation
	// and the Scratchapixel implementation.
	const epsilon = 0.0000001
	edge1 := r3.Sub(tri[1], tri[0])
	edge2 := r3.Sub(tri[2], tri[0])
	h := r3.Cross(r.Dir, edge2)
	det := r3.Dot(edge1, h)
	// If the determinant is close to 0, the ray is parallel to the plane
	// of the triangle. Both faces count as hits.
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	invDet := 1 / det
	s := r3.Sub(r.Origin, tri[0])
	u := invDet * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := r3.Cross(s, edge1)
	v := invDet * r3.Dot(r.Dir, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}
	// t is the distance on the ray to the intersection point.
	t = invDet * r3.Dot(edge2, q)
	if t < epsilon {
		// There is a line intersection but not a ray intersection.
		return 0, false
	}
	return t, true
}

// HitsBounds reports whether r passes through the box b, using the slab
// method.
func (r *Ray) HitsBounds(b solar.Bounds) bool {
	tMin, tMax := 0.0, math.Inf(1)
	o := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	for i := range o {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return false
			}
			continue
		}
		t1, t2 := (lo[i]-o[i])/d[i], (hi[i]-o[i])/d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin, tMax = math.Max(tMin, t1), math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}
