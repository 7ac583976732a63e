package headless

import (
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

// Backend draws nothing. It logs a summary of the packet every
// ReportEvery frames and keeps the last one for inspection.
type Backend struct {
	ReportEvery uint64

	config     *metadata.RenderConfig
	last       *metadata.RenderPacket
	frames     uint64
	inFrame    bool
	resizes    int
	isShutdown bool
}

func New(reportEvery uint64) *Backend {
	return &Backend{ReportEvery: reportEvery}
}

func (b *Backend) Initialize(config *metadata.RenderConfig) error {
	b.config = config
	core.LogInfo("Headless renderer ready for %s with %d lights, bloom=%t vignette=%t.",
		config.AppName, len(config.Lights), config.Effects.Bloom.Enabled, config.Effects.Vignette.Enabled)
	return nil
}

func (b *Backend) Shutdown() error {
	b.isShutdown = true
	core.LogInfo("Headless renderer drew %d frames.", b.frames)
	return nil
}

func (b *Backend) Resized(width, height uint32) error {
	b.resizes++
	core.LogDebug("Headless renderer resized to %dx%d.", width, height)
	return nil
}

func (b *Backend) BeginFrame(deltaTime float64) error {
	b.inFrame = true
	return nil
}

func (b *Backend) DrawFrame(packet *metadata.RenderPacket) error {
	b.last = packet
	b.frames++
	if b.ReportEvery > 0 && packet.FrameNumber%b.ReportEvery == 0 {
		c := packet.SharedColor
		core.LogInfo("frame %d t=%.2fs parts=%d colour=(%.3f %.3f %.3f) container=(%.3f %.3f %.3f)",
			packet.FrameNumber, packet.Elapsed, len(packet.Instances),
			c.X, c.Y, c.Z,
			packet.Container.X, packet.Container.Y, packet.Container.Z)
	}
	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	b.inFrame = false
	return nil
}

// Last returns the most recently drawn packet.
func (b *Backend) Last() *metadata.RenderPacket {
	return b.last
}

func (b *Backend) Frames() uint64 {
	return b.frames
}
