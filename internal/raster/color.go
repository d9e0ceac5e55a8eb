package raster

import (
	"math"

	"spheretrace/internal/mathutil"
)

// Named colors, RGB in [0,255].
var (
	White  = mathutil.Vec3{255, 255, 255}
	Yellow = mathutil.Vec3{255, 255, 0}
	Black  = mathutil.Vec3{0, 0, 0}
	Red    = mathutil.Vec3{255, 0, 110}
	Green  = mathutil.Vec3{110, 255, 0}
	Blue   = mathutil.Vec3{0, 110, 255}
)

// Clamp saturates every component to [0,255]. NaN components pass through.
func Clamp(c mathutil.Vec3) mathutil.Vec3 {
	for i := range c {
		if c[i] > 255 {
			c[i] = 255
		} else if c[i] < 0 {
			c[i] = 0
		}
	}
	return c
}

// toByte truncates a clamped channel the way an integer cast does.
// Non-finite values map to 0.
func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
