// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/engine/lighting"
	"github.com/Faultbox/folio3d/internal/engine/mesh"
	"github.com/Faultbox/folio3d/internal/engine/shader"
	"github.com/Faultbox/folio3d/internal/logger"
	"github.com/Faultbox/folio3d/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
	// Gradient, when set, is drawn over the clear color each frame.
	Gradient *Gradient
}

// GPUMesh is a mesh uploaded to vertex/index buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	groups        []mesh.Group
	Bounds        mesh.Bounds
}

// Delete releases the GPU buffers.
func (g *GPUMesh) Delete() {
	if g == nil {
		return
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	g.vao, g.vbo, g.ebo = 0, 0, 0
}

// DrawOptions adjusts a single draw.
type DrawOptions struct {
	// Opacity multiplies every group's alpha.
	Opacity float32
	// Color, when set, replaces the group colors.
	Color *[4]float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program

	viewProj math.Mat4
	lines    *lineBatch
	sky      *background
	gradient *Gradient
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.SetBackground(cfg.Background)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.sky, err = newBackground()
	if err != nil {
		r.program.Delete()
		return nil, err
	}
	r.SetGradient(cfg.Gradient)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.lines != nil {
		r.lines.delete()
		r.lines = nil
	}
	if r.sky != nil {
		r.sky.delete()
		r.sky = nil
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width / height of the viewport.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetBackground sets the clear color.
func (r *Renderer) SetBackground(rgb [3]float32) {
	r.config.Background = rgb
	gl.ClearColor(rgb[0], rgb[1], rgb[2], 1.0)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.gradient != nil {
		r.sky.draw(*r.gradient)
	}
}

// SetCamera uploads view and projection for the frame.
func (r *Renderer) SetCamera(view, projection math.Mat4, eye math.Vec3) {
	r.viewProj = projection.Mul(view)
	r.program.Use()
	r.program.SetMat4("uView", (*[16]float32)(&view))
	r.program.SetMat4("uProjection", (*[16]float32)(&projection))
	r.program.SetVec3("uCameraPos", eye.Array())
}

// SetLights uploads the light rig.
func (r *Renderer) SetLights(rig *lighting.Rig) {
	r.program.Use()
	r.program.SetVec3("uAmbient", rig.AmbientRadiance())
	r.program.SetVec3("uSunDir", rig.Sun.Direction())
	r.program.SetVec3("uSunColor", rig.Sun.Radiance())
	r.program.SetInt("uPointCount", int32(rig.Points.Count()))
	r.program.SetVec3Array("uPointPos", rig.Points.Positions())
	r.program.SetVec3Array("uPointColor", rig.Points.Colors())
	r.program.SetFloatArray("uPointRange", rig.Points.Ranges())
}

// Upload copies a mesh into GPU buffers.
func (r *Renderer) Upload(m *mesh.Mesh) (*GPUMesh, error) {
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("empty mesh")
	}
	g := &GPUMesh{groups: append([]mesh.Group(nil), m.Groups...), Bounds: m.Bounds}

	stride := int32(unsafe.Sizeof(mesh.Vertex{}))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("groups", len(m.Groups)),
	)
	return g, nil
}

// Draw renders g with the given model matrix.
func (r *Renderer) Draw(g *GPUMesh, model math.Mat4, opts DrawOptions) {
	if g == nil || g.vao == 0 || opts.Opacity <= 0 {
		return
	}

	translucent := opts.Opacity < 1
	for _, grp := range g.groups {
		if grp.Color[3] < 1 {
			translucent = true
		}
	}
	if opts.Color != nil && opts.Color[3] < 1 {
		translucent = true
	}
	if translucent {
		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
		defer func() {
			gl.DepthMask(true)
			gl.Disable(gl.BLEND)
		}()
	}

	r.program.Use()
	r.program.SetMat4("uModel", (*[16]float32)(&model))
	r.program.SetFloat("uOpacity", opts.Opacity)

	gl.BindVertexArray(g.vao)
	for _, grp := range g.groups {
		color := grp.Color
		if opts.Color != nil {
			color = *opts.Color
		}
		r.program.SetVec4("uColor", color)
		gl.DrawElementsWithOffset(gl.TRIANGLES, grp.IndexCount, gl.UNSIGNED_INT, uintptr(grp.StartIndex)*4)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return nil, 0, 0
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
