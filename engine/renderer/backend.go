package renderer

import "github.com/spaghettifunk/vitrum/engine/renderer/metadata"

// RendererBackend turns render packets into pixels. The animation core
// hands over a packet per frame and never talks to a GPU API directly.
type RendererBackend interface {
	Initialize(config *metadata.RenderConfig) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(deltaTime float64) error
	DrawFrame(packet *metadata.RenderPacket) error
	EndFrame(deltaTime float64) error
}
