package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/folio3d/internal/engine/shader"
)

// The background is one oversized triangle generated from gl_VertexID, so it
// needs an empty VAO and no buffers.
const backgroundVertexShader = `
#version 410 core

out float vHeight;

void main() {
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2) * 2.0 - 1.0;
	vHeight = pos.y * 0.5 + 0.5;
	gl_Position = vec4(pos, 1.0, 1.0);
}
`

const backgroundFragmentShader = `
#version 410 core

in float vHeight;

uniform vec3 uTop;
uniform vec3 uBottom;

out vec4 FragColor;

void main() {
	float t = smoothstep(0.0, 1.0, clamp(vHeight, 0.0, 1.0));
	FragColor = vec4(mix(uBottom, uTop, t), 1.0);
}
`

// Gradient is a vertical background blend from Bottom at the lower edge of
// the viewport to Top at the upper edge.
type Gradient struct {
	Top    [3]float32
	Bottom [3]float32
}

type background struct {
	program *shader.Program
	vao     uint32
}

func newBackground() (*background, error) {
	program, err := shader.NewProgram(backgroundVertexShader, backgroundFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("background shader: %w", err)
	}
	b := &background{program: program}
	gl.GenVertexArrays(1, &b.vao)
	return b, nil
}

func (b *background) draw(g Gradient) {
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	b.program.Use()
	b.program.SetVec3("uTop", g.Top)
	b.program.SetVec3("uBottom", g.Bottom)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

func (b *background) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	b.program.Delete()
}

// SetGradient draws g behind every frame. Nil restores the flat clear color.
func (r *Renderer) SetGradient(g *Gradient) {
	if g == nil {
		r.gradient = nil
		return
	}
	cp := *g
	r.gradient = &cp
}
