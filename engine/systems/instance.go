package systems

import (
	gomath "math"
	"time"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/spaghettifunk/vitrum/engine/scene"
	"golang.org/x/exp/rand"
)

const (
	// Velocity components are (u-0.5)*VelocitySpread for u uniform in [0, 1).
	VelocitySpread float64 = 0.5
	// DefaultSpinScale converts a velocity into radians per frame.
	DefaultSpinScale float32 = 0.01
)

type InstanceSystemConfig struct {
	SpinScale    float32
	BobAmplitude float32
	BobFrequency float32
	// Rand draws velocities and phases. When nil a time seeded generator is used.
	Rand *rand.Rand
	// Material parameters shared by every part, and the colours parts start with.
	Material           *metadata.TransmissionMaterialConfig
	InitialColor       math.Vec3
	InitialAttenuation math.Vec3
}

// InstanceSystem owns the animated parts of the current scene.
type InstanceSystem struct {
	config    *InstanceSystemConfig
	rng       *rand.Rand
	container *math.Transform
	instances []*metadata.MeshInstance
}

func NewInstanceSystem(config *InstanceSystemConfig, container *math.Transform) (*InstanceSystem, error) {
	if config == nil {
		config = &InstanceSystemConfig{SpinScale: DefaultSpinScale}
	}
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &InstanceSystem{
		config:    config,
		rng:       rng,
		container: container,
		instances: []*metadata.MeshInstance{},
	}, nil
}

func (is *InstanceSystem) Shutdown() error {
	is.instances = nil
	return nil
}

// Decompose walks graph once and returns one instance per mesh node, in
// traversal order. Each instance copies the node's local transform and gets
// its own random angular velocity and phase. A nil graph or one without
// meshes yields an empty slice.
func Decompose(graph *scene.Graph, rng *rand.Rand) []*metadata.MeshInstance {
	extracted := []*metadata.MeshInstance{}
	graph.Traverse(func(n *scene.Node) {
		if !n.IsMesh() {
			return
		}
		t := n.Transform
		if t == nil {
			t = math.TransformCreate()
		}
		extracted = append(extracted, &metadata.MeshInstance{
			ID:       n.ID,
			Name:     n.Name,
			Geometry: n.Geometry,
			Base: metadata.BaseTransform{
				Position: t.Position,
				Rotation: t.Rotation,
				Scale:    t.Scale,
			},
			Transform: t.Clone(),
			AngularVelocity: math.NewVec3(
				randomVelocity(rng),
				randomVelocity(rng),
				randomVelocity(rng),
			),
			PhaseOffset: rng.Float64() * 2 * gomath.Pi,
		})
	})
	return extracted
}

func randomVelocity(rng *rand.Rand) float32 {
	return float32((rng.Float64() - 0.5) * VelocitySpread)
}

// Replace drops every current instance and decomposes graph in their place.
// Returns the new instance count.
func (is *InstanceSystem) Replace(graph *scene.Graph) int {
	instances := Decompose(graph, is.rng)
	for _, inst := range instances {
		inst.Transform.Parent = is.container
		inst.Material = &metadata.TransmissionMaterial{
			Config:           is.config.Material,
			Color:            is.config.InitialColor,
			AttenuationColor: is.config.InitialAttenuation,
		}
	}
	is.instances = instances
	core.LogDebug("Decomposed scene into %d instances.", len(instances))
	return len(instances)
}

// Advance spins every instance by velocity * SpinScale * step. step is 1
// per rendered frame unless a reference timestep rescales it.
func (is *InstanceSystem) Advance(elapsed float64, step float32) {
	scale := is.config.SpinScale * step
	for _, inst := range is.instances {
		inst.Transform.Rotate(inst.AngularVelocity.MulScalar(scale))

		if is.config.BobAmplitude != 0 {
			phase := float32(elapsed)*is.config.BobFrequency + float32(inst.PhaseOffset)
			p := inst.Base.Position
			p.Y += is.config.BobAmplitude * math32.Sin(phase)
			inst.Transform.SetPosition(p)
		}
	}
}

func (is *InstanceSystem) Instances() []*metadata.MeshInstance {
	return is.instances
}

func (is *InstanceSystem) Count() int {
	return len(is.instances)
}
