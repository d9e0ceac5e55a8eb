// Package window shows frames in a native window and turns pointer
// motion and wheel notches into scene events.
package window

import (
	"fmt"
	"image"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"

	"spheretrace/internal/frameloop"
	"spheretrace/internal/mathutil"
	"spheretrace/internal/postprocess"
	"spheretrace/internal/raster"
	"spheretrace/internal/scene"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int // render size; the window opens at this size
	Height int
	Filter postprocess.Filter // used when the window is resized
}

// Window is a frameloop.Surface and frameloop.InputSource.
type Window struct {
	opts Options
	s    screen.Screen
	win  screen.Window
	buf  screen.Buffer
	fb   *raster.FrameBuffer

	events chan scene.Event
	closed chan struct{}

	mu   sync.Mutex
	size image.Point
}

// Main opens a window and calls fn with it. It must be called from the
// main goroutine and returns once fn does.
func Main(opts Options, fn func(w *Window) error) error {
	var err error
	driver.Main(func(s screen.Screen) {
		w, oerr := open(s, opts)
		if oerr != nil {
			err = oerr
			return
		}
		defer w.release()

		go w.pump()
		err = fn(w)
	})
	return err
}

func open(s screen.Screen, opts Options) (*Window, error) {
	win, err := s.NewWindow(&screen.NewWindowOptions{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("window: create: %w", err)
	}

	sz := image.Point{opts.Width, opts.Height}
	buf, err := s.NewBuffer(sz)
	if err != nil {
		win.Release()
		return nil, fmt.Errorf("window: create buffer: %w", err)
	}

	return &Window{
		opts:   opts,
		s:      s,
		win:    win,
		buf:    buf,
		fb:     raster.NewFrameBuffer(opts.Width, opts.Height),
		events: make(chan scene.Event, 64),
		closed: make(chan struct{}),
		size:   sz,
	}, nil
}

// releaseWait bounds how long release waits for pump to see the window die.
var releaseWait = time.Second

// release closes the window before freeing the buffer pump may still
// reference. If the driver never reports StageDead, pump stays parked in
// NextEvent until the process exits.
func (w *Window) release() {
	w.win.Release()
	select {
	case <-w.closed:
	case <-time.After(releaseWait):
	}
	w.buf.Release()
}

// pump drains window events until the window dies.
func (w *Window) pump() {
	for {
		switch e := w.win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				close(w.closed)
				return
			}
		case size.Event:
			if e.WidthPx > 0 && e.HeightPx > 0 {
				w.mu.Lock()
				w.size = image.Point{e.WidthPx, e.HeightPx}
				w.mu.Unlock()
			}
		case mouse.Event:
			if ev, ok := w.translate(e); ok {
				select {
				case w.events <- ev:
				default:
					// frame loop is behind; drop
				}
			}
		}
	}
}

// translate maps a mouse event to render coordinates.
func (w *Window) translate(e mouse.Event) (scene.Event, bool) {
	switch {
	case e.Button == mouse.ButtonWheelUp && e.Direction != mouse.DirRelease:
		return scene.Event{Kind: scene.ScrollUp}, true
	case e.Button == mouse.ButtonWheelDown && e.Direction != mouse.DirRelease:
		return scene.Event{Kind: scene.ScrollDown}, true
	case e.Direction == mouse.DirNone:
		w.mu.Lock()
		sz := w.size
		w.mu.Unlock()
		x := float64(e.X) * float64(w.opts.Width) / float64(sz.X)
		y := float64(e.Y) * float64(w.opts.Height) / float64(sz.Y)
		return scene.Event{Kind: scene.Motion, X: float64(int(x)), Y: float64(int(y))}, true
	}
	return scene.Event{}, false
}

// PollInput returns one pending event without blocking.
func (w *Window) PollInput() (scene.Event, bool) {
	select {
	case ev := <-w.events:
		return ev, true
	default:
		return scene.Event{}, false
	}
}

func (w *Window) PutPixel(x, y int, c mathutil.Vec3) {
	w.fb.PutPixel(x, y, c)
}

// PresentFrame uploads the frame, stretched to the current window size.
func (w *Window) PresentFrame() error {
	select {
	case <-w.closed:
		return frameloop.ErrClosed
	default:
	}

	w.mu.Lock()
	sz := w.size
	w.mu.Unlock()

	if w.buf.Size() != sz {
		buf, err := w.s.NewBuffer(sz)
		if err != nil {
			return fmt.Errorf("window: resize buffer: %w", err)
		}
		w.buf.Release()
		w.buf = buf
	}

	postprocess.ScaleInto(w.buf.RGBA(), w.buf.Bounds(), w.fb.View(), w.opts.Filter)
	w.win.Upload(image.Point{}, w.buf, w.buf.Bounds())
	w.win.Publish()
	return nil
}
