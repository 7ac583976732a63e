package renderer

import (
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

type Renderer struct {
	backend     RendererBackend
	framesDrawn uint64
	width       uint32
	height      uint32
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(config *metadata.RenderConfig) error {
	r.width, r.height = config.Width, config.Height
	if err := r.backend.Initialize(config); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	core.LogInfo("Renderer initialized (%dx%d).", r.width, r.height)
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	if width == 0 || height == 0 {
		// Minimized.
		return nil
	}
	r.width, r.height = width, height
	return r.backend.Resized(width, height)
}

// DrawFrame begins, draws and ends one frame.
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	if err := r.backend.DrawFrame(packet); err != nil {
		core.LogError("renderer failed to draw frame %d: %s", packet.FrameNumber, err)
		return err
	}
	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	r.framesDrawn++
	return nil
}

func (r *Renderer) FramesDrawn() uint64 {
	return r.framesDrawn
}

func (r *Renderer) Size() (uint32, uint32) {
	return r.width, r.height
}
