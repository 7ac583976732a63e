package renderer

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBackend struct {
	calls   []string
	drawErr error
}

func (b *recordingBackend) Initialize(*metadata.RenderConfig) error {
	b.calls = append(b.calls, "init")
	return nil
}
func (b *recordingBackend) Shutdown() error { b.calls = append(b.calls, "shutdown"); return nil }
func (b *recordingBackend) Resized(w, h uint32) error {
	b.calls = append(b.calls, "resize")
	return nil
}
func (b *recordingBackend) BeginFrame(float64) error { b.calls = append(b.calls, "begin"); return nil }
func (b *recordingBackend) DrawFrame(*metadata.RenderPacket) error {
	b.calls = append(b.calls, "draw")
	return b.drawErr
}
func (b *recordingBackend) EndFrame(float64) error { b.calls = append(b.calls, "end"); return nil }

func TestRendererFrameOrder(t *testing.T) {
	b := &recordingBackend{}
	r := New(b)
	require.NoError(t, r.Initialize(&metadata.RenderConfig{Width: 640, Height: 480}))
	require.NoError(t, r.DrawFrame(&metadata.RenderPacket{}))
	assert.Equal(t, []string{"init", "begin", "draw", "end"}, b.calls)
	assert.Equal(t, uint64(1), r.FramesDrawn())

	w, h := r.Size()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
}

func TestRendererDrawError(t *testing.T) {
	b := &recordingBackend{drawErr: errors.New("lost device")}
	r := New(b)
	assert.Error(t, r.DrawFrame(&metadata.RenderPacket{}))
	assert.NotContains(t, b.calls, "end")
	assert.Zero(t, r.FramesDrawn())
}

func TestRendererIgnoresMinimizedResize(t *testing.T) {
	b := &recordingBackend{}
	r := New(b)
	require.NoError(t, r.OnResize(0, 200))
	assert.Empty(t, b.calls)
	require.NoError(t, r.OnResize(800, 600))
	assert.Equal(t, []string{"resize"}, b.calls)
}
