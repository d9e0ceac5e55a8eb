package raster

import (
	"spheretrace/internal/geom"
	"spheretrace/internal/mathutil"
)

// PixelSink receives one clamped color per pixel.
type PixelSink interface {
	PutPixel(x, y int, c mathutil.Vec3)
}

// RenderFrame traces one parallel ray per pixel of a w×h viewport and
// writes the clamped colors to dst in row-major order. It does not modify
// light or objects.
func RenderFrame(
	dst PixelSink,
	w, h int,
	light *geom.Sphere,
	objects []geom.Sphere,
	cfg *ShadeConfig,
) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Trace(cfg.PrimaryRay(x, y), light, objects, cfg)
			dst.PutPixel(x, y, Clamp(c))
		}
	}
}

// RenderImage renders into a fresh FrameBuffer.
func RenderImage(w, h int, light *geom.Sphere, objects []geom.Sphere, cfg *ShadeConfig) *FrameBuffer {
	fb := NewFrameBuffer(w, h)
	RenderFrame(fb, w, h, light, objects, cfg)
	return fb
}
