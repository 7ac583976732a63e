package metadata

type PointLightConfig struct {
	Position  [3]float32 `toml:"position"`
	Intensity float32    `toml:"intensity"`
	Color     string     `toml:"color"`
}

type EnvironmentConfig struct {
	// HDR file lighting the scene, relative to the assets directory.
	File               string     `toml:"file"`
	Background         bool       `toml:"background"`
	BackgroundRotation [3]float32 `toml:"background_rotation"`
	Intensity          float32    `toml:"intensity"`
	Blur               float32    `toml:"blur"`
}

type CameraConfig struct {
	Position [3]float32 `toml:"position"`
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	// Orbit lets the renderer attach user orbit controls to the camera.
	Orbit bool `toml:"orbit"`
}

type ToneMapping string

const (
	ToneMappingNone       ToneMapping = "none"
	ToneMappingACESFilmic ToneMapping = "aces_filmic"
	ToneMappingReinhard   ToneMapping = "reinhard"
	ToneMappingLinear     ToneMapping = "linear"
)

type SurfaceConfig struct {
	Antialias   bool        `toml:"antialias"`
	Alpha       bool        `toml:"alpha"`
	ToneMapping ToneMapping `toml:"tone_mapping"`
	// Device pixel ratio range.
	DPR [2]float32 `toml:"dpr"`
}

// RenderConfig is everything the backend needs once at start up.
type RenderConfig struct {
	AppName     string
	Width       uint32
	Height      uint32
	Surface     SurfaceConfig
	Camera      CameraConfig
	Environment EnvironmentConfig
	Lights      []PointLightConfig
	Effects     EffectsConfig
	Material    TransmissionMaterialConfig
}
