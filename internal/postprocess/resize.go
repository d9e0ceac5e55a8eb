package postprocess

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel.
type Filter int

const (
	// Nearest keeps hard pixel edges; the default for previews.
	Nearest Filter = iota
	// CatmullRom approximates Lanczos.
	CatmullRom
)

// ParseFilter maps "nearest" or "catmullrom" to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "nearest":
		return Nearest, nil
	case "catmullrom":
		return CatmullRom, nil
	}
	return Nearest, fmt.Errorf("postprocess: unknown filter %q", s)
}

func (f Filter) scaler() draw.Scaler {
	if f == CatmullRom {
		return draw.CatmullRom
	}
	return draw.NearestNeighbor
}

// Resize returns img scaled to w×h. The input is returned unchanged when
// it already has that size.
func Resize(img *image.NRGBA, w, h int, f Filter) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	f.scaler().Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ScaleInto stretches src over r of dst.
func ScaleInto(dst draw.Image, r image.Rectangle, src image.Image, f Filter) {
	f.scaler().Scale(dst, r, src, src.Bounds(), draw.Src, nil)
}
