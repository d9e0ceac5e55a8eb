package output

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"os"
	"sort"
	"sync"

	"golang.org/x/image/draw"
)

// gifFrames collects dithered frames from encode workers in any order.
type gifFrames struct {
	mu     sync.Mutex
	frames map[int]*image.Paletted
}

func newGIFFrames() *gifFrames {
	return &gifFrames{frames: make(map[int]*image.Paletted)}
}

func (g *gifFrames) add(n int, img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)

	g.mu.Lock()
	g.frames[n] = p
	g.mu.Unlock()
}

// write saves all frames in order as a looping GIF.
// delay is in 100ths of a second.
func (g *gifFrames) write(path string, delay int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	keys := make([]int, 0, len(g.frames))
	for k := range g.frames {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(keys)),
		Delay:     make([]int, 0, len(keys)),
		LoopCount: 0,
	}
	for _, k := range keys {
		out.Image = append(out.Image, g.frames[k])
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, out); err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}
