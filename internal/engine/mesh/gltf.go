package mesh

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/folio3d/pkg/math"
)

// LoadGLTF reads a .gltf or .glb file and flattens every triangle primitive of
// the default scene into one mesh. Each primitive becomes a group colored by
// its material's base color factor.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}
	m, err := fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf %s: %w", path, err)
	}
	return m, nil
}

func fromDocument(doc *gltf.Document) (*Mesh, error) {
	out := &Mesh{}

	var roots []int
	switch {
	case doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes):
		roots = toInts(doc.Scenes[*doc.Scene].Nodes)
	case len(doc.Scenes) > 0:
		roots = toInts(doc.Scenes[0].Nodes)
	default:
		for i := range doc.Nodes {
			roots = append(roots, i)
		}
	}

	var walk func(idx int, parent math.Mat4, depth int) error
	walk = func(idx int, parent math.Mat4, depth int) error {
		if idx < 0 || idx >= len(doc.Nodes) || depth > 64 {
			return nil
		}
		node := doc.Nodes[idx]
		world := parent.Mul(nodeMatrix(node))
		if node.Mesh != nil {
			if err := appendMesh(out, doc, int(*node.Mesh), world); err != nil {
				return err
			}
		}
		for _, child := range node.Children {
			if err := walk(int(child), world, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := walk(r, math.Identity(), 0); err != nil {
			return nil, err
		}
	}

	if len(out.Indices) == 0 {
		return nil, fmt.Errorf("no triangle geometry")
	}
	return out, nil
}

func appendMesh(out *Mesh, doc *gltf.Document, meshIdx int, world math.Mat4) error {
	if meshIdx >= len(doc.Meshes) {
		return fmt.Errorf("mesh index %d out of range", meshIdx)
	}
	for pi, p := range doc.Meshes[meshIdx].Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := p.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("mesh %d primitive %d positions: %w", meshIdx, pi, err)
		}

		var normals [][3]float32
		if idx, ok := p.Attributes[gltf.NORMAL]; ok {
			if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
				return fmt.Errorf("mesh %d primitive %d normals: %w", meshIdx, pi, err)
			}
		}

		var indices []uint32
		if p.Indices != nil {
			if indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil); err != nil {
				return fmt.Errorf("mesh %d primitive %d indices: %w", meshIdx, pi, err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		part := &Mesh{Vertices: make([]Vertex, len(positions)), Indices: indices}
		for i, pos := range positions {
			part.Vertices[i].Position = pos
			if i < len(normals) {
				part.Vertices[i].Normal = normals[i]
			}
		}
		if len(normals) != len(positions) {
			computeNormals(part)
		}
		material := -1
		if p.Material != nil {
			material = int(*p.Material)
		}
		out.Append(part, world, baseColor(doc, material))
	}
	return nil
}

func baseColor(doc *gltf.Document, material int) [4]float32 {
	white := [4]float32{1, 1, 1, 1}
	if material < 0 || material >= len(doc.Materials) {
		return white
	}
	pbr := doc.Materials[material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return white
	}
	f := pbr.BaseColorFactor
	return [4]float32{float32(f[0]), float32(f[1]), float32(f[2]), float32(f[3])}
}

// nodeMatrix returns the node's local transform, from its matrix if set or
// from translation * rotation * scale otherwise.
func nodeMatrix(n *gltf.Node) math.Mat4 {
	mat := n.MatrixOrDefault()
	if mat != gltf.DefaultMatrix {
		var m math.Mat4
		for i, v := range mat {
			m[i] = float32(v)
		}
		return m
	}
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	return math.Translate(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul(quatMatrix(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))).
		Mul(math.Scale(float32(s[0]), float32(s[1]), float32(s[2])))
}

// quatMatrix converts a unit quaternion (x, y, z, w) to a rotation matrix.
func quatMatrix(x, y, z, w float32) math.Mat4 {
	return math.Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w), 0,
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w), 0,
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
}

// computeNormals fills smooth vertex normals from face normals.
func computeNormals(m *Mesh) {
	acc := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(a) >= len(acc) || int(b) >= len(acc) || int(c) >= len(acc) {
			continue
		}
		pa := math.V3(m.Vertices[a].Position)
		n := math.V3(m.Vertices[b].Position).Sub(pa).Cross(math.V3(m.Vertices[c].Position).Sub(pa))
		acc[a], acc[b], acc[c] = acc[a].Add(n), acc[b].Add(n), acc[c].Add(n)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = acc[i].Normalize().Array()
	}
}

func toInts[T ~int | ~uint32](in []T) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
