package systems

import (
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

type ColorSystemConfig struct {
	ColorA string
	ColorB string
	// Angular frequency of the oscillation in radians per second.
	Frequency float64
}

// ColorSystem computes the single colour every part shares at a point in
// time. Interpolation happens in linear RGB.
type ColorSystem struct {
	config  *ColorSystemConfig
	linearA [3]float64
	linearB [3]float64

	colorT  float64
	current math.Vec3
}

func NewColorSystem(config *ColorSystemConfig) (*ColorSystem, error) {
	a, err := colorful.Hex(config.ColorA)
	if err != nil {
		return nil, err
	}
	b, err := colorful.Hex(config.ColorB)
	if err != nil {
		return nil, err
	}
	cs := &ColorSystem{config: config}
	cs.linearA[0], cs.linearA[1], cs.linearA[2] = a.LinearRgb()
	cs.linearB[0], cs.linearB[1], cs.linearB[2] = b.LinearRgb()
	cs.Update(0)
	return cs, nil
}

// ColorT maps elapsed seconds to the blend factor (sin(t*f)+1)/2 in [0, 1].
func (cs *ColorSystem) ColorT(elapsed float64) float64 {
	return (gomath.Sin(elapsed*cs.config.Frequency) + 1) / 2
}

// Update recomputes the shared colour for elapsed seconds and returns it.
func (cs *ColorSystem) Update(elapsed float64) math.Vec3 {
	t := cs.ColorT(elapsed)
	cs.colorT = t
	cs.current = math.NewVec3(
		float32(cs.linearA[0]+(cs.linearB[0]-cs.linearA[0])*t),
		float32(cs.linearA[1]+(cs.linearB[1]-cs.linearA[1])*t),
		float32(cs.linearA[2]+(cs.linearB[2]-cs.linearA[2])*t),
	)
	return cs.current
}

func (cs *ColorSystem) Current() math.Vec3 {
	return cs.current
}

func (cs *ColorSystem) Blend() float64 {
	return cs.colorT
}

// Apply writes the current colour to the surface and attenuation colour of
// every instance.
func (cs *ColorSystem) Apply(instances []*metadata.MeshInstance) {
	for _, inst := range instances {
		if inst.Material == nil {
			continue
		}
		inst.Material.SetColors(cs.current, cs.current)
	}
}

// LinearFromHex parses an sRGB hex colour into linear RGB components.
func LinearFromHex(hex string) (math.Vec3, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return math.Vec3{}, err
	}
	r, g, b := c.LinearRgb()
	return math.NewVec3(float32(r), float32(g), float32(b)), nil
}
