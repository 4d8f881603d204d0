package scene

import (
	"fmt"

	"github.com/Faultbox/folio3d/internal/engine/renderer"
	"github.com/Faultbox/folio3d/internal/portfolio"
)

// GPU holds the uploaded meshes of a Scene.
type GPU struct {
	meshes map[portfolio.ModelIdentity]*renderer.GPUMesh
}

// Upload sends every mesh of s to r.
func (s *Scene) Upload(r *renderer.Renderer) (*GPU, error) {
	g := &GPU{meshes: make(map[portfolio.ModelIdentity]*renderer.GPUMesh, len(s.meshes))}
	for id, m := range s.meshes {
		gm, err := r.Upload(m)
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("uploading %s: %w", id, err)
		}
		g.meshes[id] = gm
	}
	return g, nil
}

// Draw renders id under pose p. The resume plane is drawn as a faint tinted
// panel; hovered switches it to the lighter tint.
func (g *GPU) Draw(r *renderer.Renderer, id portfolio.ModelIdentity, p portfolio.Pose, hovered bool) {
	gm := g.meshes[portfolio.Normalize(id)]
	if gm == nil {
		return
	}
	opts := renderer.DrawOptions{Opacity: float32(p.Opacity)}
	if id == portfolio.Resume {
		tint := ResumeColor
		if hovered {
			tint = ResumeHoverColor
		}
		color := tint.Array()
		opts.Color = &color
		opts.Opacity *= ResumeOpacity
	}
	r.Draw(gm, Transform(p), opts)
}

// Close frees the GPU buffers.
func (g *GPU) Close() {
	for id, gm := range g.meshes {
		gm.Delete()
		delete(g.meshes, id)
	}
}
