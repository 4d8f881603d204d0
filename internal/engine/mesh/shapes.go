package mesh

import (
	gomath "math"

	"github.com/Faultbox/folio3d/pkg/math"
)

// single wraps raw geometry as a one-group white mesh.
func single(vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{Bounds: emptyBounds()}
	for _, v := range vertices {
		m.Bounds.extend(v.Position)
	}
	m.Vertices = vertices
	m.Indices = indices
	m.Groups = []Group{{Color: [4]float32{1, 1, 1, 1}, IndexCount: int32(len(indices))}}
	return m
}

// Box builds an axis-aligned box centered on the origin with flat-shaded faces.
func Box(w, h, d float32) *Mesh {
	hw, hh, hd := w/2, h/2, d/2
	faces := []struct {
		normal [3]float32
		corner [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hw, -hh, -hd}, {-hw, -hh, -hd}, {-hw, hh, -hd}, {hw, hh, -hd}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hw, -hh, hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {hw, hh, hd}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hw, -hh, -hd}, {-hw, -hh, hd}, {-hw, hh, hd}, {-hw, hh, -hd}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hw, hh, hd}, {hw, hh, hd}, {hw, hh, -hd}, {-hw, hh, -hd}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, -hh, hd}, {-hw, -hh, hd}}},
	}
	uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, p := range f.corner {
			vertices = append(vertices, Vertex{Position: p, Normal: f.normal, TexCoord: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return single(vertices, indices)
}

// Plane builds a w x h rectangle in the XY plane facing +Z.
func Plane(w, h float32) *Mesh {
	hw, hh := w/2, h/2
	n := [3]float32{0, 0, 1}
	vertices := []Vertex{
		{Position: [3]float32{-hw, -hh, 0}, Normal: n, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{hw, -hh, 0}, Normal: n, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{hw, hh, 0}, Normal: n, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{-hw, hh, 0}, Normal: n, TexCoord: [2]float32{0, 0}},
	}
	return single(vertices, []uint32{0, 1, 2, 0, 2, 3})
}

// Sphere builds a UV sphere.
func Sphere(radius float32, segments, rings int) *Mesh {
	segments = max(segments, 3)
	rings = max(rings, 2)

	var vertices []Vertex
	for r := 0; r <= rings; r++ {
		v := float64(r) / float64(rings)
		phi := v * gomath.Pi
		for s := 0; s <= segments; s++ {
			u := float64(s) / float64(segments)
			theta := u * 2 * gomath.Pi
			n := [3]float32{
				float32(gomath.Sin(phi) * gomath.Cos(theta)),
				float32(gomath.Cos(phi)),
				float32(gomath.Sin(phi) * gomath.Sin(theta)),
			}
			vertices = append(vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{float32(u), float32(v)},
			})
		}
	}
	return single(vertices, gridIndices(rings, segments))
}

// Torus builds a ring around the Y axis. major is the ring radius, minor the
// tube radius.
func Torus(major, minor float32, radialSegments, tubularSegments int) *Mesh {
	radialSegments = max(radialSegments, 3)
	tubularSegments = max(tubularSegments, 3)

	var vertices []Vertex
	for i := 0; i <= tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments)
		theta := u * 2 * gomath.Pi
		ct, st := float32(gomath.Cos(theta)), float32(gomath.Sin(theta))
		for j := 0; j <= radialSegments; j++ {
			v := float64(j) / float64(radialSegments)
			phi := v * 2 * gomath.Pi
			cp, sp := float32(gomath.Cos(phi)), float32(gomath.Sin(phi))
			n := [3]float32{cp * ct, sp, cp * st}
			vertices = append(vertices, Vertex{
				Position: [3]float32{(major + minor*cp) * ct, minor * sp, (major + minor*cp) * st},
				Normal:   n,
				TexCoord: [2]float32{float32(u), float32(v)},
			})
		}
	}
	return single(vertices, gridIndices(tubularSegments, radialSegments))
}

// Cylinder builds a capped cylinder along the Y axis, centered on the origin.
func Cylinder(radius, height float32, segments int) *Mesh {
	segments = max(segments, 3)
	hh := height / 2

	var vertices []Vertex
	// Side wall: two rows.
	for row := 0; row <= 1; row++ {
		y := -hh + float32(row)*height
		for s := 0; s <= segments; s++ {
			theta := float64(s) / float64(segments) * 2 * gomath.Pi
			c, sn := float32(gomath.Cos(theta)), float32(gomath.Sin(theta))
			vertices = append(vertices, Vertex{
				Position: [3]float32{radius * c, y, radius * sn},
				Normal:   [3]float32{c, 0, sn},
				TexCoord: [2]float32{float32(s) / float32(segments), float32(1 - row)},
			})
		}
	}
	indices := gridIndices(1, segments)

	// Caps as triangle fans.
	for _, top := range []bool{true, false} {
		y, ny := -hh, float32(-1)
		if top {
			y, ny = hh, 1
		}
		center := uint32(len(vertices))
		vertices = append(vertices, Vertex{Position: [3]float32{0, y, 0}, Normal: [3]float32{0, ny, 0}, TexCoord: [2]float32{0.5, 0.5}})
		for s := 0; s <= segments; s++ {
			theta := float64(s) / float64(segments) * 2 * gomath.Pi
			c, sn := float32(gomath.Cos(theta)), float32(gomath.Sin(theta))
			vertices = append(vertices, Vertex{
				Position: [3]float32{radius * c, y, radius * sn},
				Normal:   [3]float32{0, ny, 0},
				TexCoord: [2]float32{0.5 + c/2, 0.5 + sn/2},
			})
		}
		for s := uint32(0); s < uint32(segments); s++ {
			a, b := center+1+s, center+2+s
			if top {
				indices = append(indices, center, b, a)
			} else {
				indices = append(indices, center, a, b)
			}
		}
	}
	return single(vertices, indices)
}

// Disc builds a flat cylinder facing +Z, the usual badge shape.
func Disc(radius, thickness float32, segments int) *Mesh {
	m := &Mesh{}
	m.Append(Cylinder(radius, thickness, segments), math.RotateX(gomath.Pi/2), [4]float32{1, 1, 1, 1})
	return m
}

// gridIndices triangulates a (rows+1) x (cols+1) vertex grid with
// counter-clockwise winding seen from outside.
func gridIndices(rows, cols int) []uint32 {
	indices := make([]uint32, 0, rows*cols*6)
	stride := uint32(cols + 1)
	for r := uint32(0); r < uint32(rows); r++ {
		for c := uint32(0); c < uint32(cols); c++ {
			a := r*stride + c
			b := a + stride
			indices = append(indices, a, a+1, b, b, a+1, b+1)
		}
	}
	return indices
}
