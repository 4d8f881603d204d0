// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/folio3d/pkg/math"
)

// pitchLimit keeps the orbit just short of the poles so LookAt never
// degenerates.
const pitchLimit = gomath.Pi/2 - 0.01

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Projection
	FOV  float32 // Vertical field of view, degrees
	Near float32
	Far  float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	// PanSensitivity is world units per pixel per unit of distance.
	PanSensitivity float32

	home orbitPose
}

// orbitPose is the part of the camera Reset restores.
type orbitPose struct {
	Center                         math.Vec3
	Distance, RotationX, RotationY float32
	MinDistance, MaxDistance       float32
}

func (c *OrbitCamera) pose() orbitPose {
	return orbitPose{
		Center:      c.Center,
		Distance:    c.Distance,
		RotationX:   c.RotationX,
		RotationY:   c.RotationY,
		MinDistance: c.MinDistance,
		MaxDistance: c.MaxDistance,
	}
}

// NewOrbitCamera creates a camera looking down -Z at the origin from
// distance, with free pitch and yaw.
func NewOrbitCamera(fov, distance, minDistance, maxDistance float32) *OrbitCamera {
	c := &OrbitCamera{
		Distance:        distance,
		MinDistance:     minDistance,
		MaxDistance:     maxDistance,
		MinPitch:        -pitchLimit,
		MaxPitch:        pitchLimit,
		FOV:             fov,
		Near:            0.1,
		Far:             1000,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.0015,
	}
	c.clamp()
	c.home = c.pose()
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.RotationX), float64(c.RotationY)
	offset := math.Vec3{
		X: c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw)),
		Y: c.Distance * float32(gomath.Sin(pitch)),
		Z: c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw)),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio (width / height).
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.clamp()
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

// Pan slides the orbit center across the view plane so the scene follows
// the pointer.
func (c *OrbitCamera) Pan(deltaX, deltaY float32) {
	forward := c.Center.Sub(c.Position()).Normalize()
	yaw := float64(c.RotationY)
	right := math.Vec3{X: float32(gomath.Cos(yaw)), Z: -float32(gomath.Sin(yaw))}
	up := right.Cross(forward)

	step := c.PanSensitivity * c.Distance
	c.Center = c.Center.Sub(right.Scale(deltaX * step)).Add(up.Scale(deltaY * step))
}

// SetDistanceLimits updates the zoom range and re-clamps the distance.
func (c *OrbitCamera) SetDistanceLimits(minDistance, maxDistance float32) {
	c.MinDistance, c.MaxDistance = minDistance, maxDistance
	c.home.MinDistance, c.home.MaxDistance = minDistance, maxDistance
	c.clamp()
}

// Reset returns to the pose the camera was created with.
func (c *OrbitCamera) Reset() {
	h := c.home
	c.Center = h.Center
	c.Distance, c.RotationX, c.RotationY = h.Distance, h.RotationX, h.RotationY
	c.MinDistance, c.MaxDistance = h.MinDistance, h.MaxDistance
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.RotationX = math.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
	if c.MaxDistance > c.MinDistance {
		c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	}
}
