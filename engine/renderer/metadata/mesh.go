package metadata

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/vitrum/engine/math"
)

// BaseTransform is the local transform a part had in the source scene.
type BaseTransform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

/**
 * @brief One independently animated part extracted from the source scene.
 * Everything except Transform (rotation, and position when bobbing) and
 * Material colours is fixed at creation.
 */
type MeshInstance struct {
	/** @brief Stable identifier, the id of the scene node the part came from. */
	ID uuid.UUID
	/** @brief Name of the source node. */
	Name string
	/** @brief Non-owning reference to the part geometry. */
	Geometry *Geometry
	/** @brief The transform captured at extraction time. */
	Base BaseTransform
	/** @brief The running transform, parented to the follow container. */
	Transform *math.Transform
	/** @brief Per-axis spin in [-0.25, 0.25], drawn once. */
	AngularVelocity math.Vec3
	/** @brief Phase in [0, 2π), drawn once. */
	PhaseOffset float64
	/** @brief The glass material of this part. */
	Material *TransmissionMaterial
}
