// Package mesh builds CPU-side triangle meshes: procedural shapes for the
// logos and glTF imports for custom models.
package mesh

import (
	gomath "math"

	"github.com/Faultbox/folio3d/pkg/math"
)

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Group is a run of indices drawn with one flat color.
type Group struct {
	Color      [4]float32
	StartIndex int32
	IndexCount int32
}

// Mesh holds the complete mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Groups   []Group
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// emptyBounds is inverted so any point extends it.
func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{gomath.MaxFloat32, gomath.MaxFloat32, gomath.MaxFloat32},
		Max: [3]float32{-gomath.MaxFloat32, -gomath.MaxFloat32, -gomath.MaxFloat32},
	}
}

func (b *Bounds) extend(p [3]float32) {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return math.Vec3{X: b.Max[0] - b.Min[0], Y: b.Max[1] - b.Min[1], Z: b.Max[2] - b.Min[2]}
}

// Center returns the box midpoint.
func (b Bounds) Center() math.Vec3 {
	return math.V3(b.Min).Add(math.V3(b.Max)).Scale(0.5)
}

// Empty reports whether the bounds enclose nothing.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0]
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Append copies part into m, transformed by xf and drawn in color, as a new
// group.
func (m *Mesh) Append(part *Mesh, xf math.Mat4, color [4]float32) {
	if part == nil || len(part.Indices) == 0 {
		return
	}
	if len(m.Vertices) == 0 {
		m.Bounds = emptyBounds()
	}

	// Normals use the upper 3x3; valid for rotations and uniform scales.
	normalXf := xf
	normalXf[12], normalXf[13], normalXf[14] = 0, 0, 0

	base := uint32(len(m.Vertices))
	for _, v := range part.Vertices {
		v.Position = xf.TransformPoint(v.Position)
		v.Normal = math.V3(normalXf.TransformPoint(v.Normal)).Normalize().Array()
		m.Bounds.extend(v.Position)
		m.Vertices = append(m.Vertices, v)
	}

	start := int32(len(m.Indices))
	for _, idx := range part.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
	m.Groups = append(m.Groups, Group{
		Color:      color,
		StartIndex: start,
		IndexCount: int32(len(part.Indices)),
	})
}

// Fit recenters the mesh on the origin and scales it uniformly so its largest
// extent equals size.
func (m *Mesh) Fit(size float32) {
	if len(m.Vertices) == 0 || m.Bounds.Empty() {
		return
	}
	ext := m.Bounds.Size()
	largest := max(ext.X, ext.Y, ext.Z)
	if largest <= 0 {
		return
	}
	s := size / largest
	c := m.Bounds.Center()
	m.Bounds = emptyBounds()
	for i := range m.Vertices {
		p := math.V3(m.Vertices[i].Position).Sub(c).Scale(s).Array()
		m.Vertices[i].Position = p
		m.Bounds.extend(p)
	}
}

// Recolor sets every group to color.
func (m *Mesh) Recolor(color [4]float32) {
	for i := range m.Groups {
		m.Groups[i].Color = color
	}
}
