package systems

import (
	"github.com/charmbracelet/harmonica"
	"github.com/spaghettifunk/vitrum/engine/config"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/components"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"golang.org/x/exp/rand"
)

// SystemManager owns every per-frame system. Everything except the job
// workers runs on the frame thread.
type SystemManager struct {
	config *config.Config

	JobSystem           *JobSystem
	SceneSystem         *SceneSystem
	InstanceSystem      *InstanceSystem
	ColorSystem         *ColorSystem
	PointerFollowSystem *PointerFollowSystem
	Camera              *components.Camera

	// Seconds per frame at the reference frame rate.
	referenceDelta float64
}

// NewSystemManager wires the systems from cfg. rng may be nil.
func NewSystemManager(cfg *config.Config, loader AssetLoader, rng *rand.Rand) (*SystemManager, error) {
	js, err := NewJobSystem(1, 4)
	if err != nil {
		return nil, err
	}
	ss, err := NewSceneSystem(loader, js)
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	pf, err := NewPointerFollowSystem(&PointerFollowConfig{
		YawScale:        cfg.Follow.YawScale,
		PitchScale:      cfg.Follow.PitchScale,
		Smoothing:       cfg.Follow.Smoothing,
		InitialRotation: math.NewVec3(cfg.Follow.InitialRotation[0], cfg.Follow.InitialRotation[1], cfg.Follow.InitialRotation[2]),
	})
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	cs, err := NewColorSystem(&ColorSystemConfig{
		ColorA:    cfg.Color.A,
		ColorB:    cfg.Color.B,
		Frequency: cfg.Color.Frequency,
	})
	if err != nil {
		js.Shutdown()
		return nil, err
	}

	material := cfg.Render.Material
	initialColor, err := LinearFromHex(material.Color)
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	initialAttenuation, err := LinearFromHex(material.AttenuationColor)
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	is, err := NewInstanceSystem(&InstanceSystemConfig{
		SpinScale:          cfg.Animation.SpinScale,
		BobAmplitude:       cfg.Animation.BobAmplitude,
		BobFrequency:       cfg.Animation.BobFrequency,
		Rand:               rng,
		Material:           &material,
		InitialColor:       initialColor,
		InitialAttenuation: initialAttenuation,
	}, pf.Container())
	if err != nil {
		js.Shutdown()
		return nil, err
	}

	cam := cfg.Render.Camera
	sm := &SystemManager{
		config:              cfg,
		JobSystem:           js,
		SceneSystem:         ss,
		InstanceSystem:      is,
		ColorSystem:         cs,
		PointerFollowSystem: pf,
		Camera:              components.NewCamera(math.NewVec3(cam.Position[0], cam.Position[1], cam.Position[2]), cam.FOV),
	}
	if cfg.Animation.Timestep == config.TimestepReference {
		sm.referenceDelta = harmonica.FPS(cfg.Animation.ReferenceFPS)
	}
	return sm, nil
}

// Step converts the frame delta into the multiplier of the per-frame factors.
func (sm *SystemManager) Step(delta float64) float32 {
	if sm.referenceDelta == 0 {
		return 1
	}
	return float32(delta / sm.referenceDelta)
}

// Update swaps in any freshly loaded scene and advances one frame.
func (sm *SystemManager) Update(elapsed, delta float64, pointerX, pointerY float32) error {
	for _, r := range sm.SceneSystem.Poll() {
		if r.Err != nil {
			core.LogError("failed to load scene %s: %s", r.Name, r.Err)
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_SCENE_LOAD_FAILED,
				Data: &core.SceneEvent{Name: r.Name, Err: r.Err},
			})
			continue
		}
		count := sm.InstanceSystem.Replace(r.Graph)
		core.LogInfo("Scene %s loaded with %d parts.", r.Name, count)
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_SCENE_LOADED,
			Data: &core.SceneEvent{Name: r.Name, InstanceCount: count},
		})
	}

	step := sm.Step(delta)
	sm.InstanceSystem.Advance(elapsed, step)
	sm.ColorSystem.Update(elapsed)
	sm.ColorSystem.Apply(sm.InstanceSystem.Instances())
	sm.PointerFollowSystem.Update(pointerX, pointerY, step)
	return nil
}

// BuildPacket snapshots the frame for the renderer.
func (sm *SystemManager) BuildPacket(frame uint64, elapsed, delta float64) *metadata.RenderPacket {
	instances := sm.InstanceSystem.Instances()
	packet := &metadata.RenderPacket{
		FrameNumber: frame,
		Elapsed:     elapsed,
		DeltaTime:   delta,
		View:        sm.Camera.GetView(),
		Container:   sm.PointerFollowSystem.Container().Rotation,
		SharedColor: sm.ColorSystem.Current(),
		Instances:   make([]metadata.InstanceRenderData, 0, len(instances)),
	}
	for _, inst := range instances {
		data := metadata.InstanceRenderData{
			ID:       inst.ID,
			Geometry: inst.Geometry,
			Position: inst.Transform.Position,
			Rotation: inst.Transform.Rotation,
			Scale:    inst.Transform.Scale,
			World:    inst.Transform.GetWorld(),
		}
		if inst.Material != nil {
			data.Color = inst.Material.Color
			data.AttenuationColor = inst.Material.AttenuationColor
			data.Material = inst.Material.Config
		}
		packet.Instances = append(packet.Instances, data)
	}
	return packet
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.JobSystem.Shutdown(); err != nil {
		return err
	}
	return sm.InstanceSystem.Shutdown()
}
