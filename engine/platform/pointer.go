package platform

// NormalizePointer maps a pixel position inside a width x height viewport
// to [-1, 1] on both axes, origin at the center and Y up.
func NormalizePointer(xpos, ypos float64, width, height int) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	x := xpos/float64(width)*2 - 1
	y := -(ypos/float64(height)*2 - 1)
	return float32(x), float32(y)
}
