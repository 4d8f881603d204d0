package scene

import (
	gomath "math"

	"github.com/Faultbox/folio3d/internal/engine/mesh"
	"github.com/Faultbox/folio3d/internal/portfolio"
	"github.com/Faultbox/folio3d/pkg/math"
)

// LogoSize is the largest extent of a built-in or loaded logo, in world units.
const LogoSize = 40

// Resume panel dimensions in world units.
const (
	ResumeWidth  = 16
	ResumeHeight = 12
)

var (
	reactBlue    = [4]float32{0.38, 0.85, 0.98, 1}
	nextBlack    = [4]float32{0.05, 0.05, 0.06, 1}
	nextWhite    = [4]float32{0.95, 0.95, 0.95, 1}
	tailwindTeal = [4]float32{0.22, 0.74, 0.97, 1}
	resumeBase   = [4]float32{0.133, 0.133, 0.133, 1}
)

// BuildLogo returns the built-in geometry for id, centered on the origin.
// Cyclable logos are fitted to LogoSize; the resume panel keeps its fixed size.
func BuildLogo(id portfolio.ModelIdentity) *mesh.Mesh {
	var m *mesh.Mesh
	switch id {
	case portfolio.React:
		m = reactLogo()
	case portfolio.Tailwind:
		m = tailwindLogo()
	case portfolio.Resume:
		m = &mesh.Mesh{}
		m.Append(mesh.Plane(ResumeWidth, ResumeHeight), math.Identity(), resumeBase)
		return m
	default:
		m = nextLogo()
	}
	m.Fit(LogoSize)
	return m
}

// reactLogo is a nucleus with three elliptical orbits 60 degrees apart.
func reactLogo() *mesh.Mesh {
	m := &mesh.Mesh{}
	m.Append(mesh.Sphere(2, 24, 16), math.Identity(), reactBlue)

	// Torus lies in XZ; tip it into XY and squash it into an ellipse.
	orbit := math.Scale(1, 0.38, 1).Mul(math.RotateX(gomath.Pi / 2))
	ring := mesh.Torus(10, 0.6, 48, 12)
	for i := 0; i < 3; i++ {
		angle := float32(i) * gomath.Pi / 3
		m.Append(ring, math.RotateZ(angle).Mul(orbit), reactBlue)
	}
	return m
}

// nextLogo is a black disc with a white "N" standing proud of its face.
func nextLogo() *mesh.Mesh {
	m := &mesh.Mesh{}
	m.Append(mesh.Disc(12, 1.5, 64), math.Identity(), nextBlack)

	const (
		barW = 1.8
		barH = 11
		z    = 1.2
	)
	stem := mesh.Box(barW, barH, 0.8)
	m.Append(stem, math.Translate(-4, 0, z), nextWhite)
	m.Append(stem, math.Translate(4, 0, z), nextWhite)

	// Diagonal from the top of the left stem to the bottom of the right one.
	dx, dy := float32(8), float32(barH-barW)
	length := float32(gomath.Hypot(float64(dx), float64(dy)))
	tilt := float32(gomath.Atan2(float64(dx), float64(dy)))
	m.Append(mesh.Box(barW, length, 0.8), math.Translate(0, 0, z).Mul(math.RotateZ(tilt)), nextWhite)
	return m
}

// tailwindLogo is two offset waves built from short box segments.
func tailwindLogo() *mesh.Mesh {
	m := &mesh.Mesh{}
	appendWave(m, -3, 3.5)
	appendWave(m, 3, -3.5)
	return m
}

func appendWave(m *mesh.Mesh, xOffset, yOffset float32) {
	const (
		segments  = 24
		halfWidth = 9
		amplitude = 2.2
		thickness = 1.6
	)
	wave := func(x float32) float32 {
		return amplitude * float32(gomath.Sin(float64(x)*gomath.Pi/halfWidth))
	}
	step := float32(2*halfWidth) / segments
	for i := 0; i < segments; i++ {
		x0 := -halfWidth + float32(i)*step
		x1 := x0 + step
		y0, y1 := wave(x0), wave(x1)
		dx, dy := x1-x0, y1-y0
		length := float32(gomath.Hypot(float64(dx), float64(dy)))
		angle := float32(gomath.Atan2(float64(dy), float64(dx)))

		// Overlap segments slightly so joints have no gaps.
		seg := mesh.Box(length*1.15, thickness, 1.5)
		xf := math.Translate(xOffset+(x0+x1)/2, yOffset+(y0+y1)/2, 0).Mul(math.RotateZ(angle))
		m.Append(seg, xf, tailwindTeal)
	}
}
