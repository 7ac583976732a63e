package metadata

type BlendFunction string

const (
	BlendFunctionNormal BlendFunction = "normal"
	BlendFunctionAdd    BlendFunction = "add"
)

type BloomConfig struct {
	Enabled            bool          `toml:"enabled"`
	Intensity          float32       `toml:"intensity"`
	LuminanceThreshold float32       `toml:"luminance_threshold"`
	LuminanceSmoothing float32       `toml:"luminance_smoothing"`
	BlendFunction      BlendFunction `toml:"blend_function"`
}

type VignetteConfig struct {
	Enabled       bool          `toml:"enabled"`
	Offset        float32       `toml:"offset"`
	Darkness      float32       `toml:"darkness"`
	BlendFunction BlendFunction `toml:"blend_function"`
}

// EffectsConfig is the post-processing chain, applied in field order.
type EffectsConfig struct {
	Multisampling uint32         `toml:"multisampling"`
	Bloom         BloomConfig    `toml:"bloom"`
	Vignette      VignetteConfig `toml:"vignette"`
}
