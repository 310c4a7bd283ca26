package shade

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadSTL reads a binary STL file. Vertices shared between triangles are
// merged.
func ReadSTL(r io.Reader) (*Mesh, error) {
	m := new(Mesh)

	var header struct {
		H    [80]byte
		NTri uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	m.Header = strings.TrimRight(string(header.H[:]), " \x00")

	vertMap := make(map[[3]float32]int)

	var vert [3]float32
	var tri [3]int
	triBuf := make([]byte, 4*3*4+2)
	for i := 0; i < int(header.NTri); i++ {
		// Read a triangle
		if _, err := io.ReadFull(r, triBuf); err != nil {
			return nil, fmt.Errorf("reading STL triangle %d of %d: %w", i, header.NTri, err)
		}
		for v := range tri {
			for c := range vert {
				const start = 3 * 4 // Skip normal
				vert[c] = math.Float32frombits(binary.LittleEndian.Uint32(triBuf[start+12*v+4*c:]))
			}
			vertIndex, ok := vertMap[vert]
			if !ok {
				vertIndex = len(m.Verts)
				m.Verts = append(m.Verts, r3.Vec{X: float64(vert[0]), Y: float64(vert[1]), Z: float64(vert[2])})
				vertMap[vert] = vertIndex
			}
			tri[v] = vertIndex
		}
		m.Tris = append(m.Tris, tri)
	}

	return m, nil
}

// WriteSTL writes m as a binary STL file with facet normals computed from
// the triangle winding.
func WriteSTL(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], m.Header)
	bw.Write(header[:])

	buf := make([]byte, 4*3*4+2)
	binary.LittleEndian.PutUint32(buf, uint32(len(m.Tris)))
	bw.Write(buf[:4])

	put := func(off int, v r3.Vec) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(v.X)))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(float32(v.Y)))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(float32(v.Z)))
	}
	for i := range m.Tris {
		tri := m.Triangle(i)
		var n r3.Vec
		if c := r3.Cross(r3.Sub(tri[1], tri[0]), r3.Sub(tri[2], tri[0])); r3.Norm(c) > 0 {
			n = r3.Unit(c)
		}
		put(0, n)
		for v := range tri {
			put(12+12*v, tri[v])
		}
		buf[48], buf[49] = 0, 0
		bw.Write(buf)
	}
	return bw.Flush()
}
