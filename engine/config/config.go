package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

// Timestep selects how per-frame factors react to the frame rate.
type Timestep string

const (
	// TimestepFrame applies the spin and smoothing factors once per frame,
	// so the motion speeds up with the frame rate.
	TimestepFrame Timestep = "frame"
	// TimestepReference scales the factors by delta / (1 / ReferenceFPS),
	// giving the same motion at any frame rate as at ReferenceFPS.
	TimestepReference Timestep = "reference"
)

type AppConfig struct {
	Name        string `toml:"name"`
	PosX        uint32 `toml:"pos_x"`
	PosY        uint32 `toml:"pos_y"`
	Width       uint32 `toml:"width"`
	Height      uint32 `toml:"height"`
	LogLevel    string `toml:"log_level"`
	Headless    bool   `toml:"headless"`
	TargetFPS   uint32 `toml:"target_fps"`
	LimitFrames bool   `toml:"limit_frames"`
	// Stop after this many frames, 0 runs until quit.
	MaxFrames uint64 `toml:"max_frames"`
	// Seed for the per-part velocities, 0 seeds from the clock.
	Seed uint64 `toml:"seed"`
}

type AssetsConfig struct {
	Dir   string `toml:"dir"`
	Scene string `toml:"scene"`
	// Reload the scene when its file changes on disk.
	Watch bool `toml:"watch"`
}

type AnimationConfig struct {
	Timestep     Timestep `toml:"timestep"`
	ReferenceFPS int      `toml:"reference_fps"`
	SpinScale    float32  `toml:"spin_scale"`
	// Vertical bob driven by each part's phase offset. 0 disables it.
	BobAmplitude float32 `toml:"bob_amplitude"`
	BobFrequency float32 `toml:"bob_frequency"`
}

type ColorConfig struct {
	A         string  `toml:"a"`
	B         string  `toml:"b"`
	Frequency float64 `toml:"frequency"`
}

type FollowConfig struct {
	YawScale   float32 `toml:"yaw_scale"`
	PitchScale float32 `toml:"pitch_scale"`
	Smoothing  float32 `toml:"smoothing"`
	// Container rotation before the pointer has any influence. Z stays fixed.
	InitialRotation [3]float32 `toml:"initial_rotation"`
}

type RenderConfig struct {
	Surface     metadata.SurfaceConfig              `toml:"surface"`
	Camera      metadata.CameraConfig               `toml:"camera"`
	Environment metadata.EnvironmentConfig          `toml:"environment"`
	Lights      []metadata.PointLightConfig         `toml:"lights"`
	Effects     metadata.EffectsConfig              `toml:"effects"`
	Material    metadata.TransmissionMaterialConfig `toml:"material"`
}

type Config struct {
	App       AppConfig       `toml:"app"`
	Assets    AssetsConfig    `toml:"assets"`
	Animation AnimationConfig `toml:"animation"`
	Color     ColorConfig     `toml:"color"`
	Follow    FollowConfig    `toml:"follow"`
	Render    RenderConfig    `toml:"render"`
}

// Load reads a TOML file on top of Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", core.ErrInvalidConfig, strict.String())
		}
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the systems rely on.
func (c *Config) Validate() error {
	if _, err := core.ParseLogLevel(c.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", core.ErrInvalidConfig, c.App.LogLevel)
	}
	if c.App.TargetFPS == 0 {
		return fmt.Errorf("%w: target_fps must be > 0", core.ErrInvalidConfig)
	}
	switch c.Animation.Timestep {
	case TimestepFrame:
	case TimestepReference:
		if c.Animation.ReferenceFPS <= 0 {
			return fmt.Errorf("%w: reference_fps must be > 0", core.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown timestep %q", core.ErrInvalidConfig, c.Animation.Timestep)
	}
	if c.Follow.Smoothing <= 0 || c.Follow.Smoothing >= 1 {
		return fmt.Errorf("%w: follow smoothing must be in (0, 1)", core.ErrInvalidConfig)
	}
	colors := map[string]string{
		"color.a":                           c.Color.A,
		"color.b":                           c.Color.B,
		"render.material.color":             c.Render.Material.Color,
		"render.material.attenuation_color": c.Render.Material.AttenuationColor,
	}
	for i, l := range c.Render.Lights {
		colors[fmt.Sprintf("render.lights[%d].color", i)] = l.Color
	}
	for key, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: %s %q is not a hex colour", core.ErrInvalidConfig, key, hex)
		}
	}
	return nil
}
