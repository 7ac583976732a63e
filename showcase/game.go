package showcase

import (
	"github.com/spaghettifunk/vitrum/engine"
	"github.com/spaghettifunk/vitrum/engine/config"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

// How often, in seconds, frame statistics are logged.
const reportInterval = 5.0

// CoinGame is the glass coin viewer: the engine animates the parts, the game
// reports on what it sees.
type CoinGame struct {
	*engine.Game
}

type gameState struct {
	width  uint32
	height uint32

	sinceReport float64
	lastFrame   uint64
	parts       int
	scene       string
	loadErr     error
}

func NewCoinGame(cfg *config.Config) *CoinGame {
	cg := &CoinGame{
		Game: &engine.Game{
			ApplicationConfig: engine.NewApplicationConfig(cfg),
			State:             &gameState{},
		},
	}

	cg.FnInitialize = cg.Initialize
	cg.FnUpdate = cg.Update
	cg.FnRender = cg.Render
	cg.FnOnResize = cg.OnResize
	cg.FnShutdown = cg.Shutdown

	return cg
}

func (g *CoinGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *CoinGame) Initialize() error {
	core.LogInfo("Initializing %s.", g.ApplicationConfig.Name)
	core.EventRegister(core.EVENT_CODE_SCENE_LOADED, g, g.onScene)
	core.EventRegister(core.EVENT_CODE_SCENE_LOAD_FAILED, g, g.onScene)
	return nil
}

func (g *CoinGame) Update(deltaTime float64) error {
	s := g.state()
	s.sinceReport += deltaTime
	if s.sinceReport >= reportInterval {
		s.sinceReport = 0
		fps, ms := core.MetricsFrame()
		core.LogInfo("%s: %d parts, %.0f fps, %.2f ms/frame", s.scene, s.parts, fps, ms)
	}
	return nil
}

func (g *CoinGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	g.state().lastFrame = packet.FrameNumber
	return nil
}

func (g *CoinGame) OnResize(width uint32, height uint32) error {
	s := g.state()
	s.width, s.height = width, height
	return nil
}

func (g *CoinGame) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_SCENE_LOADED, g)
	core.EventUnregister(core.EVENT_CODE_SCENE_LOAD_FAILED, g)
	core.LogInfo("Shutting down after %d frames.", g.state().lastFrame+1)
	return nil
}

// Parts is the instance count of the last loaded scene.
func (g *CoinGame) Parts() int {
	return g.state().parts
}

// LoadError is the error of the last failed load, cleared by a successful one.
func (g *CoinGame) LoadError() error {
	return g.state().loadErr
}

func (g *CoinGame) onScene(ctx core.EventContext, listener interface{}) bool {
	se, ok := ctx.Data.(*core.SceneEvent)
	if !ok {
		return false
	}
	s := g.state()
	s.scene = se.Name
	if ctx.Type == core.EVENT_CODE_SCENE_LOAD_FAILED {
		s.loadErr = se.Err
		return false
	}
	s.loadErr = nil
	s.parts = se.InstanceCount
	return false
}
