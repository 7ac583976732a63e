package showcase

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/vitrum/engine/config"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinGameTracksSceneEvents(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	defer core.EventSystemShutdown()

	g := NewCoinGame(config.Default())
	assert.Equal(t, "Vitrum", g.ApplicationConfig.Name)
	require.NoError(t, g.FnInitialize())

	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SCENE_LOADED,
		Data: &core.SceneEvent{Name: "coin", InstanceCount: 5},
	})
	assert.Equal(t, 5, g.Parts())
	assert.NoError(t, g.LoadError())

	boom := errors.New("boom")
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SCENE_LOAD_FAILED,
		Data: &core.SceneEvent{Name: "coin", Err: boom},
	})
	assert.ErrorIs(t, g.LoadError(), boom)
	assert.Equal(t, 5, g.Parts(), "a failed reload keeps the old parts")

	require.NoError(t, g.FnShutdown())
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SCENE_LOADED,
		Data: &core.SceneEvent{Name: "coin", InstanceCount: 1},
	})
	assert.Equal(t, 5, g.Parts())
}

func TestCoinGameHooks(t *testing.T) {
	g := NewCoinGame(config.Default())
	require.NoError(t, g.FnOnResize(640, 360))
	require.NoError(t, g.FnRender(&metadata.RenderPacket{FrameNumber: 9}, 0.016))
	require.NoError(t, g.FnUpdate(reportInterval+1))

	s := g.state()
	assert.Equal(t, uint32(640), s.width)
	assert.Equal(t, uint64(9), s.lastFrame)
	assert.Zero(t, s.sinceReport)
}
