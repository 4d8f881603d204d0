package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/folio3d/internal/engine/shader"
)

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`

// lineBatch draws world-space line lists for debug overlays.
type lineBatch struct {
	program  *shader.Program
	vao, vbo uint32
}

func newLineBatch() (*lineBatch, error) {
	program, err := shader.NewProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	b := &lineBatch{program: program}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return b, nil
}

func (b *lineBatch) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	b.program.Delete()
}

// DrawLines draws a line list ([x, y, z] per vertex) with the camera set by
// SetCamera.
func (r *Renderer) DrawLines(vertices []float32, color [4]float32) error {
	if len(vertices) < 6 {
		return nil
	}
	if r.lines == nil {
		b, err := newLineBatch()
		if err != nil {
			return err
		}
		r.lines = b
	}

	b := r.lines
	b.program.Use()
	b.program.SetMat4("uViewProj", (*[16]float32)(&r.viewProj))
	b.program.SetVec4("uColor", color)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindVertexArray(0)
	return nil
}
