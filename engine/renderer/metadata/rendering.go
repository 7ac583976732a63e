package metadata

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/vitrum/engine/math"
)

// InstanceRenderData is what the renderer receives for one part each frame.
type InstanceRenderData struct {
	ID       uuid.UUID
	Geometry *Geometry
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
	// World combines the part transform with the container transform.
	World            math.Mat4
	Color            math.Vec3
	AttenuationColor math.Vec3
	Material         *TransmissionMaterialConfig
}

/**
 * @brief A structure which is generated by the application and sent once
 * to the renderer to render a given frame.
 */
type RenderPacket struct {
	FrameNumber uint64
	/** @brief Seconds since the animation started. */
	Elapsed float64
	/** @brief Seconds since the previous frame. */
	DeltaTime float64
	/** @brief The camera view matrix. */
	View math.Mat4
	/** @brief The orientation of the container holding every part. */
	Container math.Vec3
	/** @brief The colour shared by every part this frame. */
	SharedColor math.Vec3
	Instances   []InstanceRenderData
}
