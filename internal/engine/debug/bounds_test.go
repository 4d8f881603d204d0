package debug

import "testing"

func TestWireframe(t *testing.T) {
	v := Wireframe([3]float32{1, 1, 1}, [3]float32{-1, -1, -1}, 0.5)
	if len(v) != WireframeVertexCount*3 {
		t.Fatalf("got %d floats, want %d", len(v), WireframeVertexCount*3)
	}
	for i, f := range v {
		if f != -1.5 && f != 1.5 {
			t.Fatalf("component %d = %f, want +-1.5", i, f)
		}
	}

	// Every edge is axis aligned: endpoints differ in exactly one component.
	for e := 0; e < WireframeVertexCount/2; e++ {
		a, b := v[e*6:e*6+3], v[e*6+3:e*6+6]
		diff := 0
		for i := range 3 {
			if a[i] != b[i] {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("edge %d: %v -> %v is not axis aligned", e, a, b)
		}
	}
}
