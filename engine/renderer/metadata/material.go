package metadata

import "github.com/spaghettifunk/vitrum/engine/math"

// TransmissionMaterialConfig holds the refraction parameters the renderer
// applies to every part. The animation core never changes them.
type TransmissionMaterialConfig struct {
	Transmission        float32 `toml:"transmission"`
	Thickness           float32 `toml:"thickness"`
	Roughness           float32 `toml:"roughness"`
	IOR                 float32 `toml:"ior"`
	ChromaticAberration float32 `toml:"chromatic_aberration"`
	AttenuationDistance float32 `toml:"attenuation_distance"`
	Backside            bool    `toml:"backside"`
	Samples             uint32  `toml:"samples"`
	Resolution          uint32  `toml:"resolution"`
	EnvMapIntensity     float32 `toml:"env_map_intensity"`
	// Colours used before the first frame recolours the part, as hex strings.
	Color            string `toml:"color"`
	AttenuationColor string `toml:"attenuation_color"`
}

/**
 * @brief A transmissive (glass-like) material instance. Colours are
 * linear RGB.
 */
type TransmissionMaterial struct {
	Config *TransmissionMaterialConfig
	/** @brief The primary surface colour. */
	Color math.Vec3
	/** @brief The tint applied to light travelling through the medium. */
	AttenuationColor math.Vec3
	/** @brief Incremented every time a colour changes. */
	Generation uint32
}

// SetColors assigns both colour fields.
func (m *TransmissionMaterial) SetColors(color, attenuation math.Vec3) {
	m.Color = color
	m.AttenuationColor = attenuation
	m.Generation++
}
