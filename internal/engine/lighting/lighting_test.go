package lighting

import (
	gomath "math"
	"testing"
)

func TestDefaultRig(t *testing.T) {
	r := DefaultRig()
	if r.AmbientRadiance() != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("ambient = %v", r.AmbientRadiance())
	}
	d := r.Sun.Direction()
	l := gomath.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
	if gomath.Abs(l-1) > 1e-5 || d[0] <= 0 || d[1] <= 0 || d[2] <= 0 {
		t.Errorf("sun direction = %v", d)
	}
	if r.Points.Count() != 1 {
		t.Fatalf("point lights = %d", r.Points.Count())
	}
	if got := r.Points.Colors()[:3]; got[0] != 0.5 {
		t.Errorf("fill radiance = %v", got)
	}
}

func TestPointLightBufferLimit(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{Intensity: 1}) {
			t.Fatalf("light %d rejected", i)
		}
	}
	if b.AddLight(PointLight{}) {
		t.Error("buffer accepted more than MaxPointLights")
	}
	if len(b.Positions()) != MaxPointLights*3 || len(b.Ranges()) != MaxPointLights {
		t.Error("upload slices not padded to MaxPointLights")
	}
	b.Clear()
	if b.Count() != 0 {
		t.Errorf("count after clear = %d", b.Count())
	}
}

func TestAddLightClampsColor(t *testing.T) {
	b := NewPointLightBuffer()
	b.AddLight(PointLight{Color: [3]float32{2, -1, 0.5}, Range: -3})
	got := b.Lights[0]
	if got.Color != [3]float32{1, 0, 0.5} || got.Range != 0 {
		t.Errorf("light = %+v", got)
	}
}
