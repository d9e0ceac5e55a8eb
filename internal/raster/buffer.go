package raster

import (
	"image"

	"spheretrace/internal/mathutil"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates an opaque black buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
	for i := 3; i < len(fb.Color); i += 4 {
		fb.Color[i] = 255
	}
	return fb
}

// PutPixel stores c at (x, y). Out-of-range coordinates are ignored.
func (fb *FrameBuffer) PutPixel(x, y int, c mathutil.Vec3) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = toByte(c[0])
	fb.Color[i+1] = toByte(c[1])
	fb.Color[i+2] = toByte(c[2])
	fb.Color[i+3] = 255
}

// View wraps the buffer as an image without copying. It changes with
// every later PutPixel.
func (fb *FrameBuffer) View() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Image copies the buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
