package config

import (
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

// Default returns the configuration of the coin showcase.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:      "Vitrum",
			PosX:      100,
			PosY:      100,
			Width:     1280,
			Height:    720,
			LogLevel:  "info",
			TargetFPS: 60,
		},
		Assets: AssetsConfig{
			Dir:   "assets",
			Scene: "scenes/coin.scene.toml",
			Watch: true,
		},
		Animation: AnimationConfig{
			Timestep:     TimestepFrame,
			ReferenceFPS: 60,
			SpinScale:    0.01,
			BobFrequency: 1,
		},
		Color: ColorConfig{
			A:         "#00CC9B",
			B:         "#e600ff",
			Frequency: 0.5,
		},
		Follow: FollowConfig{
			YawScale:        0.8,
			PitchScale:      0.5,
			Smoothing:       0.05,
			InitialRotation: [3]float32{0, math.K_PI * 0.5, math.K_PI * 0.2},
		},
		Render: RenderConfig{
			Surface: metadata.SurfaceConfig{
				Antialias:   false,
				Alpha:       true,
				ToneMapping: metadata.ToneMappingACESFilmic,
				DPR:         [2]float32{1, 2},
			},
			Camera: metadata.CameraConfig{
				Position: [3]float32{0, 0, 5},
				FOV:      35,
				Near:     0.1,
				Far:      1000,
				Orbit:    true,
			},
			Environment: metadata.EnvironmentConfig{
				File:               "hdri/GSG_HC005_A041_HDRISTUDIOvol2041.hdr",
				Background:         true,
				BackgroundRotation: [3]float32{0, math.K_PI / 2.3, 0},
				Intensity:          0.1,
				Blur:               0.1,
			},
			Lights: []metadata.PointLightConfig{
				{Position: [3]float32{5, 5, 5}, Intensity: 5, Color: "#e600ff"},
				{Position: [3]float32{-5, 3, -5}, Intensity: 2, Color: "#00ff51"},
				{Position: [3]float32{0, -5, -5}, Intensity: 1, Color: "#0056ec"},
			},
			Effects: metadata.EffectsConfig{
				Multisampling: 0,
				Bloom: metadata.BloomConfig{
					Enabled:            true,
					Intensity:          0.7,
					LuminanceThreshold: 0.5,
					LuminanceSmoothing: 0.9,
					BlendFunction:      metadata.BlendFunctionAdd,
				},
				Vignette: metadata.VignetteConfig{
					Enabled:       true,
					Offset:        0.1,
					Darkness:      0.6,
					BlendFunction: metadata.BlendFunctionNormal,
				},
			},
			Material: metadata.TransmissionMaterialConfig{
				Transmission:        1,
				Thickness:           0.5,
				Roughness:           0.05,
				IOR:                 1.5,
				ChromaticAberration: 0.05,
				AttenuationDistance: 0.5,
				Backside:            true,
				Samples:             10,
				Resolution:          512,
				EnvMapIntensity:     1.5,
				Color:               "#00CC9B",
				AttenuationColor:    "#88ccff",
			},
		},
	}
}

// ToRenderConfig assembles what the renderer backend needs at start up.
func (c *Config) ToRenderConfig() *metadata.RenderConfig {
	return &metadata.RenderConfig{
		AppName:     c.App.Name,
		Width:       c.App.Width,
		Height:      c.App.Height,
		Surface:     c.Render.Surface,
		Camera:      c.Render.Camera,
		Environment: c.Render.Environment,
		Lights:      c.Render.Lights,
		Effects:     c.Render.Effects,
		Material:    c.Render.Material,
	}
}
