package systems

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/vitrum/engine/math"
)

type PointerFollowConfig struct {
	YawScale   float32
	PitchScale float32
	// Fraction of the remaining distance covered per frame.
	Smoothing       float32
	InitialRotation math.Vec3
}

// PointerFollowSystem eases the container that holds every part toward an
// orientation derived from the normalized pointer position.
type PointerFollowSystem struct {
	config    *PointerFollowConfig
	container *math.Transform
}

func NewPointerFollowSystem(config *PointerFollowConfig) (*PointerFollowSystem, error) {
	return &PointerFollowSystem{
		config:    config,
		container: math.TransformFromRotation(config.InitialRotation),
	}, nil
}

// Target returns the yaw and pitch the container eases toward for a pointer
// at (x, y).
func (pf *PointerFollowSystem) Target(x, y float32) (float32, float32) {
	return x * pf.config.YawScale, y * pf.config.PitchScale
}

// Alpha returns the smoothing factor for step frames' worth of easing.
// One step is exactly the configured smoothing.
func (pf *PointerFollowSystem) Alpha(step float32) float32 {
	if step == 1 {
		return pf.config.Smoothing
	}
	return 1 - math32.Pow(1-pf.config.Smoothing, step)
}

// Update moves yaw and pitch toward the pointer target. Roll is never touched.
func (pf *PointerFollowSystem) Update(x, y, step float32) {
	alpha := pf.Alpha(step)
	targetYaw, targetPitch := pf.Target(x, y)

	r := pf.container.Rotation
	r.Y = math.Lerp(r.Y, targetYaw, alpha)
	r.X = math.Lerp(r.X, targetPitch, alpha)
	pf.container.SetRotation(r)
}

func (pf *PointerFollowSystem) Yaw() float32 {
	return pf.container.Rotation.Y
}

func (pf *PointerFollowSystem) Pitch() float32 {
	return pf.container.Rotation.X
}

func (pf *PointerFollowSystem) Roll() float32 {
	return pf.container.Rotation.Z
}

// Container is the transform every instance is parented to.
func (pf *PointerFollowSystem) Container() *math.Transform {
	return pf.container
}
