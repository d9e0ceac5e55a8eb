package frameloop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"spheretrace/internal/raster"
	"spheretrace/internal/scene"
)

// ErrClosed is returned by a Surface whose viewer has gone away. Run treats
// it as a normal stop.
var ErrClosed = errors.New("frameloop: surface closed")

// Surface is the visible target of a frame.
type Surface interface {
	raster.PixelSink
	// PresentFrame makes every PutPixel since the previous call visible.
	PresentFrame() error
}

// InputSource yields at most one pending event without blocking.
type InputSource interface {
	PollInput() (scene.Event, bool)
}

// NoInput never has an event.
type NoInput struct{}

func (NoInput) PollInput() (scene.Event, bool) { return scene.Event{}, false }

// Options configures Run.
type Options struct {
	Width     int
	Height    int
	Shade     raster.ShadeConfig
	Zoom      scene.ZoomConfig
	MaxFrames int       // 0 runs until ctx is done or the surface closes
	Progress  io.Writer // frame rate lines every 2s, nil for none
}

// Run pumps frames: poll one event, apply it, render every pixel, present,
// then advance the animation. It returns the number of frames presented.
func Run(ctx context.Context, sc *scene.Scene, anim *scene.Animator, surf Surface, in InputSource, opts Options) (int, error) {
	if in == nil {
		in = NoInput{}
	}

	var presented atomic.Int64
	done := make(chan struct{})
	defer close(done)
	if opts.Progress != nil {
		go reportProgress(opts.Progress, &presented, done)
	}

	for opts.MaxFrames <= 0 || int(presented.Load()) < opts.MaxFrames {
		select {
		case <-ctx.Done():
			return int(presented.Load()), nil
		default:
		}

		if ev, ok := in.PollInput(); ok {
			scene.ApplyInput(sc, ev, opts.Zoom)
		}

		raster.RenderFrame(surf, opts.Width, opts.Height, &sc.Light, sc.Objects, &opts.Shade)

		if err := surf.PresentFrame(); err != nil {
			if errors.Is(err, ErrClosed) {
				return int(presented.Load()), nil
			}
			return int(presented.Load()), fmt.Errorf("frameloop: present frame %d: %w", presented.Load(), err)
		}
		presented.Add(1)

		if anim != nil {
			anim.Advance(sc)
		}
	}

	return int(presented.Load()), nil
}

func reportProgress(w io.Writer, presented *atomic.Int64, done <-chan struct{}) {
	start := time.Now()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			p := presented.Load()
			if p > 0 {
				rate := float64(p) / time.Since(start).Seconds()
				fmt.Fprintf(w, "  [frame %d] %.1f fps\n", p, rate)
			}
		}
	}
}
