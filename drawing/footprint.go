package drawing

// A Footprint is the outline of a building as it is drawn.
//
// A closed footprint has at least 3 points, and no two consecutive points
// are coincident. Footprints are owned by a single drawing session; the
// functions in this package take points by value and never retain them.
type Footprint struct {
	Points []Point `yaml:"points"`
	Closed bool    `yaml:"closed"`
}

// Len returns the number of points in f.
func (f *Footprint) Len() int {
	return len(f.Points)
}

// Append adds p to the end of f unless it coincides with the current last
// point. It reports whether p was added.
func (f *Footprint) Append(p Point) bool {
	if n := len(f.Points); n > 0 && f.Points[n-1].Distance(p) <= Epsilon {
		return false
	}
	f.Points = append(f.Points, p)
	return true
}

// Replace sets point i to p. It reports false if i is out of range or p
// would coincide with one of its neighbors.
func (f *Footprint) Replace(i int, p Point) bool {
	n := len(f.Points)
	if i < 0 || i >= n {
		return false
	}
	if n > 1 {
		prev, next := i-1, i+1
		if f.Closed {
			prev, next = (i-1+n)%n, (i+1)%n
		}
		if prev >= 0 && f.Points[prev].Distance(p) <= Epsilon {
			return false
		}
		if next < n && f.Points[next].Distance(p) <= Epsilon {
			return false
		}
	}
	f.Points[i] = p
	return true
}

// Close marks f as closed. It reports false if f has fewer than 3 points
// or its last point coincides with its first.
func (f *Footprint) Close() bool {
	n := len(f.Points)
	if n < 3 || f.Points[0].Distance(f.Points[n-1]) <= Epsilon {
		return false
	}
	f.Closed = true
	return true
}

// Reset removes all points and reopens f.
func (f *Footprint) Reset() {
	f.Points = f.Points[:0]
	f.Closed = false
}

// Bounds returns the axis-aligned bounding box of f's points. It returns
// zero points for an empty footprint.
func (f *Footprint) Bounds() (min, max Point) {
	if len(f.Points) == 0 {
		return
	}
	min, max = f.Points[0], f.Points[0]
	for _, p := range f.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}
