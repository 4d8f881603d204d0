// Package scene owns the portfolio's 3D content: one mesh per model identity,
// the transform each frame's pose maps to, and pointer picking against the
// active model.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/engine/mesh"
	"github.com/Faultbox/folio3d/internal/engine/picking"
	"github.com/Faultbox/folio3d/internal/portfolio"
	"github.com/Faultbox/folio3d/pkg/math"
)

// Options configures scene construction.
type Options struct {
	// Overrides maps an identity name to a .gltf/.glb file replacing the
	// built-in logo.
	Overrides map[string]string
	Logger    *zap.Logger
}

// Scene holds the CPU-side mesh for every model identity.
type Scene struct {
	log    *zap.Logger
	meshes map[portfolio.ModelIdentity]*mesh.Mesh
}

// New builds every logo. Override files that fail to load are logged and
// replaced by the built-in geometry.
func New(opts Options) *Scene {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scene{
		log:    log,
		meshes: make(map[portfolio.ModelIdentity]*mesh.Mesh, len(portfolio.All())),
	}
	for _, id := range portfolio.All() {
		s.meshes[id] = BuildLogo(id)
	}

	for name, path := range opts.Overrides {
		id, ok := portfolio.ParseModel(name)
		if !ok || !id.Cyclable() {
			log.Warn("ignoring model override", zap.String("model", name), zap.String("path", path))
			continue
		}
		m, err := mesh.LoadGLTF(path)
		if err != nil {
			log.Warn("model override failed, using built-in logo", zap.Stringer("model", id), zap.Error(err))
			continue
		}
		if m.TriangleCount() == 0 {
			log.Warn("model override is empty, using built-in logo", zap.Stringer("model", id), zap.String("path", path))
			continue
		}
		m.Fit(LogoSize)
		s.meshes[id] = m
		log.Info("loaded model override", zap.Stringer("model", id), zap.String("path", path),
			zap.Int("triangles", m.TriangleCount()))
	}
	return s
}

// Mesh returns the mesh for id.
func (s *Scene) Mesh(id portfolio.ModelIdentity) *mesh.Mesh {
	return s.meshes[portfolio.Normalize(id)]
}

// Transform maps a controller pose to the model matrix of the active model.
func Transform(p portfolio.Pose) math.Mat4 {
	return math.Compose(math.Vec3{Y: float32(p.OffsetY)}, float32(p.RotationY), float32(p.Scale))
}

// Bounds returns the world-space box of id under pose p.
func (s *Scene) Bounds(id portfolio.ModelIdentity, p portfolio.Pose) picking.AABB {
	m := s.Mesh(id)
	if m == nil || m.Bounds.Empty() {
		return picking.AABB{}
	}
	local := picking.NewAABB(math.V3(m.Bounds.Min), math.V3(m.Bounds.Max))
	return local.Transform(Transform(p))
}

// Pick reports whether ray hits id under pose p.
func (s *Scene) Pick(id portfolio.ModelIdentity, p portfolio.Pose, ray picking.Ray) bool {
	m := s.Mesh(id)
	if m == nil || m.Bounds.Empty() {
		return false
	}
	_, hit := ray.IntersectAABB(s.Bounds(id, p))
	return hit
}
