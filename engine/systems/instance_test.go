package systems

import (
	gomath "math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/spaghettifunk/vitrum/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstanceSystem(t *testing.T, cfg *InstanceSystemConfig) (*InstanceSystem, *math.Transform) {
	t.Helper()
	container := math.TransformCreate()
	if cfg.Rand == nil {
		cfg.Rand = seeded()
	}
	if cfg.SpinScale == 0 {
		cfg.SpinScale = DefaultSpinScale
	}
	is, err := NewInstanceSystem(cfg, container)
	require.NoError(t, err)
	return is, container
}

func TestDecomposeOneInstancePerMesh(t *testing.T) {
	g := partsGraph(5)
	instances := Decompose(g, seeded())
	require.Len(t, instances, 5)

	var meshIDs []uuid.UUID
	g.Traverse(func(n *scene.Node) {
		if n.IsMesh() {
			meshIDs = append(meshIDs, n.ID)
		}
	})

	seen := map[uuid.UUID]bool{}
	for i, inst := range instances {
		assert.Equal(t, meshIDs[i], inst.ID, "traversal order")
		assert.False(t, seen[inst.ID])
		seen[inst.ID] = true

		for _, v := range []float32{inst.AngularVelocity.X, inst.AngularVelocity.Y, inst.AngularVelocity.Z} {
			assert.GreaterOrEqual(t, v, float32(-0.25))
			assert.LessOrEqual(t, v, float32(0.25))
		}
		assert.GreaterOrEqual(t, inst.PhaseOffset, 0.0)
		assert.Less(t, inst.PhaseOffset, 2*gomath.Pi)
	}
	assert.NotEqual(t, instances[0].AngularVelocity, instances[1].AngularVelocity)
}

func TestDecomposeCopiesBaseTransform(t *testing.T) {
	g := partsGraph(3)
	instances := Decompose(g, seeded())

	third := instances[2]
	assert.Equal(t, math.NewVec3(2, 0, 0), third.Base.Position)
	assert.Equal(t, math.NewVec3(0, 0.2, 0), third.Base.Rotation)
	assert.Equal(t, math.NewVec3One(), third.Base.Scale)
	assert.Equal(t, third.Base.Rotation, third.Transform.Rotation)

	// The running transform is a copy; the scene graph stays untouched.
	third.Transform.Rotate(math.NewVec3(1, 1, 1))
	g.Traverse(func(n *scene.Node) {
		if n.ID == third.ID {
			assert.Equal(t, math.NewVec3(0, 0.2, 0), n.Transform.Rotation)
		}
	})
}

func TestDecomposeEmpty(t *testing.T) {
	assert.Empty(t, Decompose(nil, seeded()))
	assert.Empty(t, Decompose(partsGraph(0), seeded()))
	assert.NotNil(t, Decompose(nil, seeded()))
}

func TestDecomposeNestedMeshes(t *testing.T) {
	parent := scene.NewNode(uuid.New(), "outer")
	parent.Geometry = &metadata.Geometry{Name: "outer"}
	child := scene.NewNode(uuid.New(), "inner")
	child.Geometry = &metadata.Geometry{Name: "inner"}
	parent.Add(child)
	g := &scene.Graph{Root: parent}

	instances := Decompose(g, seeded())
	require.Len(t, instances, 2)
	assert.Equal(t, "outer", instances[0].Name)
	assert.Equal(t, "inner", instances[1].Name)
}

func TestReplaceIsFullReplacement(t *testing.T) {
	is, container := newInstanceSystem(t, &InstanceSystemConfig{
		Material:           &metadata.TransmissionMaterialConfig{Transmission: 1},
		InitialColor:       math.NewVec3(0, 1, 0),
		InitialAttenuation: math.NewVec3(0.5, 0.5, 1),
	})

	first := partsGraph(5)
	assert.Equal(t, 5, is.Replace(first))
	for _, inst := range is.Instances() {
		assert.Same(t, container, inst.Transform.Parent)
		require.NotNil(t, inst.Material)
		assert.Equal(t, math.NewVec3(0, 1, 0), inst.Material.Color)
		assert.Equal(t, math.NewVec3(0.5, 0.5, 1), inst.Material.AttenuationColor)
	}

	second := partsGraph(2)
	assert.Equal(t, 2, is.Replace(second))
	ids := map[uuid.UUID]bool{}
	second.Traverse(func(n *scene.Node) { ids[n.ID] = true })
	for _, inst := range is.Instances() {
		assert.True(t, ids[inst.ID], "stale instance left behind")
	}

	assert.Equal(t, 0, is.Replace(nil))
	assert.Equal(t, 0, is.Count())
}

func TestRedecomposeKeepsIDs(t *testing.T) {
	is, _ := newInstanceSystem(t, &InstanceSystemConfig{})
	g := partsGraph(4)

	is.Replace(g)
	before := is.Instances()
	is.Replace(g)
	after := is.Instances()

	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
	// Fresh velocities are drawn each time.
	assert.NotEqual(t, before[0].AngularVelocity, after[0].AngularVelocity)
}

func TestAdvanceAccumulatesWithoutWrapping(t *testing.T) {
	is, _ := newInstanceSystem(t, &InstanceSystemConfig{})
	is.Replace(partsGraph(1))
	inst := is.Instances()[0]
	inst.AngularVelocity = math.NewVec3(0.25, -0.1, 0)
	base := inst.Transform.Rotation

	const frames = 3000
	for i := 0; i < frames; i++ {
		is.Advance(float64(i)/60, 1)
	}
	want := base.Add(math.NewVec3(0.25*0.01*frames, -0.1*0.01*frames, 0))
	assert.InDelta(t, want.X, inst.Transform.Rotation.X, 1e-2)
	assert.InDelta(t, want.Y, inst.Transform.Rotation.Y, 1e-2)
	assert.Equal(t, base.Z, inst.Transform.Rotation.Z)
	assert.Greater(t, inst.Transform.Rotation.X, 2*math.K_PI)
}

func TestAdvanceSingleFrame(t *testing.T) {
	is, _ := newInstanceSystem(t, &InstanceSystemConfig{})
	is.Replace(partsGraph(2))
	for _, inst := range is.Instances() {
		inst.Transform.SetRotation(math.NewVec3Zero())
	}

	is.Advance(0, 1)
	for _, inst := range is.Instances() {
		want := inst.AngularVelocity.MulScalar(0.01)
		assert.True(t, want.Compare(inst.Transform.Rotation, 1e-7))
	}

	// A double step covers the same rotation as two single ones.
	is.Advance(0, 2)
	for _, inst := range is.Instances() {
		want := inst.AngularVelocity.MulScalar(0.03)
		assert.True(t, want.Compare(inst.Transform.Rotation, 1e-6))
	}
}

func TestAdvanceBob(t *testing.T) {
	is, _ := newInstanceSystem(t, &InstanceSystemConfig{BobAmplitude: 0.1, BobFrequency: 2})
	is.Replace(partsGraph(3))

	const elapsed = 1.25
	is.Advance(elapsed, 1)
	for _, inst := range is.Instances() {
		want := inst.Base.Position.Y + 0.1*math32.Sin(elapsed*2+float32(inst.PhaseOffset))
		assert.InDelta(t, want, inst.Transform.Position.Y, 1e-6)
		assert.Equal(t, inst.Base.Position.X, inst.Transform.Position.X)
	}
}

func TestAdvanceWithoutBobKeepsPosition(t *testing.T) {
	is, _ := newInstanceSystem(t, &InstanceSystemConfig{})
	is.Replace(partsGraph(3))
	is.Advance(3.5, 1)
	for _, inst := range is.Instances() {
		assert.Equal(t, inst.Base.Position, inst.Transform.Position)
	}
}
