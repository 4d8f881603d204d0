// Package lighting provides the light setup shared by every model in the scene.
package lighting

import "github.com/Faultbox/folio3d/pkg/math"

// DirectionalLight shines uniformly from Position toward the origin.
type DirectionalLight struct {
	Position  [3]float32
	Color     [3]float32
	Intensity float32
}

// Direction returns the normalized vector pointing from the origin toward
// the light.
func (d DirectionalLight) Direction() [3]float32 {
	return math.V3(d.Position).Normalize().Array()
}

// Radiance returns the color scaled by intensity.
func (d DirectionalLight) Radiance() [3]float32 {
	return [3]float32{d.Color[0] * d.Intensity, d.Color[1] * d.Intensity, d.Color[2] * d.Intensity}
}

// Rig is the full light setup: ambient, one key light and a few point lights.
type Rig struct {
	Ambient          [3]float32
	AmbientIntensity float32
	Sun              DirectionalLight
	Points           *PointLightBuffer
}

// DefaultRig returns soft white ambient, a key light from the upper right
// front and a dim fill from below left behind.
func DefaultRig() *Rig {
	white := [3]float32{1, 1, 1}
	r := &Rig{
		Ambient:          white,
		AmbientIntensity: 0.5,
		Sun: DirectionalLight{
			Position:  [3]float32{10, 10, 5},
			Color:     white,
			Intensity: 1,
		},
		Points: NewPointLightBuffer(),
	}
	r.Points.AddLight(PointLight{
		Position:  [3]float32{-10, -10, -10},
		Color:     white,
		Intensity: 0.5,
	})
	return r
}

// AmbientRadiance returns the ambient color scaled by intensity.
func (r *Rig) AmbientRadiance() [3]float32 {
	return [3]float32{
		r.Ambient[0] * r.AmbientIntensity,
		r.Ambient[1] * r.AmbientIntensity,
		r.Ambient[2] * r.AmbientIntensity,
	}
}
