package systems

import (
	"testing"
	"time"

	"github.com/spaghettifunk/vitrum/engine/config"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, cfg *config.Config, loader AssetLoader) *SystemManager {
	t.Helper()
	sm, err := NewSystemManager(cfg, loader, seeded())
	require.NoError(t, err)
	t.Cleanup(func() { sm.Shutdown() })
	return sm
}

// frameUntil runs frames until cond holds or two seconds pass.
func frameUntil(t *testing.T, sm *SystemManager, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		require.NoError(t, sm.Update(0, 0, 0, 0))
		time.Sleep(time.Millisecond)
	}
}

func TestManagerLoadsAndAnimates(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	defer core.EventSystemShutdown()

	var loaded *core.SceneEvent
	core.EventRegister(core.EVENT_CODE_SCENE_LOADED, t, func(ctx core.EventContext, _ interface{}) bool {
		loaded = ctx.Data.(*core.SceneEvent)
		return false
	})

	loader := newFakeLoader()
	loader.set("coin", partsGraph(5))
	sm := newManager(t, config.Default(), loader)

	sm.SceneSystem.Load("coin")
	frameUntil(t, sm, func() bool { return sm.InstanceSystem.Count() == 5 })
	require.NotNil(t, loaded)
	assert.Equal(t, 5, loaded.InstanceCount)

	before := make([]math.Vec3, 0, 5)
	for _, inst := range sm.InstanceSystem.Instances() {
		before = append(before, inst.Transform.Rotation)
	}

	prevYaw := sm.PointerFollowSystem.Yaw()
	require.NoError(t, sm.Update(1.0, 1.0/60, 1, 1))

	shared := sm.ColorSystem.Current()
	for i, inst := range sm.InstanceSystem.Instances() {
		want := before[i].Add(inst.AngularVelocity.MulScalar(0.01))
		assert.True(t, want.Compare(inst.Transform.Rotation, 1e-6))
		assert.Equal(t, shared, inst.Material.Color)
		assert.Equal(t, shared, inst.Material.AttenuationColor)
	}
	assert.InDelta(t, prevYaw+(0.8-prevYaw)*0.05, sm.PointerFollowSystem.Yaw(), 1e-6)

	packet := sm.BuildPacket(7, 1.0, 1.0/60)
	assert.Equal(t, uint64(7), packet.FrameNumber)
	assert.Equal(t, shared, packet.SharedColor)
	assert.Equal(t, sm.PointerFollowSystem.Container().Rotation, packet.Container)
	require.Len(t, packet.Instances, 5)
	for i, inst := range sm.InstanceSystem.Instances() {
		data := packet.Instances[i]
		assert.Equal(t, inst.ID, data.ID)
		assert.Equal(t, inst.Transform.GetWorld(), data.World)
		assert.Equal(t, shared, data.Color)
		assert.NotNil(t, data.Material)
	}
}

func TestManagerReportsLoadFailures(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	defer core.EventSystemShutdown()

	var failed *core.SceneEvent
	core.EventRegister(core.EVENT_CODE_SCENE_LOAD_FAILED, t, func(ctx core.EventContext, _ interface{}) bool {
		failed = ctx.Data.(*core.SceneEvent)
		return true
	})

	sm := newManager(t, config.Default(), newFakeLoader())
	sm.SceneSystem.Load("nowhere")
	frameUntil(t, sm, func() bool { return failed != nil })
	assert.ErrorIs(t, failed.Err, core.ErrAssetNotFound)
	assert.Equal(t, 0, sm.InstanceSystem.Count())
}

func TestManagerReloadReplacesInstances(t *testing.T) {
	loader := newFakeLoader()
	loader.set("coin", partsGraph(5))
	sm := newManager(t, config.Default(), loader)

	sm.SceneSystem.Load("coin")
	frameUntil(t, sm, func() bool { return sm.InstanceSystem.Count() == 5 })

	loader.set("coin", partsGraph(3))
	sm.SceneSystem.Load("coin")
	frameUntil(t, sm, func() bool { return sm.InstanceSystem.Count() == 3 })
}

func TestManagerStep(t *testing.T) {
	sm := newManager(t, config.Default(), newFakeLoader())
	assert.Equal(t, float32(1), sm.Step(1.0/30))
	assert.Equal(t, float32(1), sm.Step(0))

	cfg := config.Default()
	cfg.Animation.Timestep = config.TimestepReference
	cfg.Animation.ReferenceFPS = 60
	ref := newManager(t, cfg, newFakeLoader())
	assert.InDelta(t, 2, ref.Step(1.0/30), 1e-6)
	assert.InDelta(t, 0.5, ref.Step(1.0/120), 1e-6)
}

func TestManagerRejectsBadColour(t *testing.T) {
	cfg := config.Default()
	cfg.Color.A = "nope"
	_, err := NewSystemManager(cfg, newFakeLoader(), nil)
	assert.Error(t, err)
}
