package components

import (
	"github.com/spaghettifunk/vitrum/engine/math"
)

/**
 * @brief Represents the viewing camera. The viewer keeps it fixed; user
 * orbiting, when enabled, belongs to the renderer.
 */
type Camera struct {
	/** @brief The position of this camera. */
	Position math.Vec3
	/** @brief The rotation of this camera using Euler angles (pitch, yaw, roll). */
	EulerRotation math.Vec3
	/** @brief Vertical field of view in degrees. */
	FOV float32
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/** @brief The view matrix of this camera. Read it through GetView. */
	ViewMatrix math.Mat4
}

func NewCamera(position math.Vec3, fov float32) *Camera {
	camera := &Camera{}
	camera.Reset()
	camera.SetPosition(position)
	camera.FOV = fov
	return camera
}

func (c *Camera) Reset() {
	c.EulerRotation = math.NewVec3Zero()
	c.Position = math.NewVec3Zero()
	c.IsDirty = true
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.IsDirty = true
}

// GetView returns the inverse of the camera's rigid transform.
func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		rotation := math.NewMat4EulerXYZ(c.EulerRotation.X, c.EulerRotation.Y, c.EulerRotation.Z)
		translation := math.NewMat4Translation(c.Position.MulScalar(-1))
		c.ViewMatrix = translation.Mul(rotation.Transposed())
		c.IsDirty = false
	}
	return c.ViewMatrix
}
