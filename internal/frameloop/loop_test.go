package frameloop

import (
	"context"
	"errors"
	"math"
	"testing"

	"spheretrace/internal/mathutil"
	"spheretrace/internal/raster"
	"spheretrace/internal/scene"
)

type fakeSurface struct {
	pixels    int
	presented int
	closeAt   int // return ErrClosed on this present, 0 never
	err       error
}

func (f *fakeSurface) PutPixel(x, y int, c mathutil.Vec3) { f.pixels++ }

func (f *fakeSurface) PresentFrame() error {
	if f.err != nil {
		return f.err
	}
	if f.closeAt > 0 && f.presented+1 == f.closeAt {
		return ErrClosed
	}
	f.presented++
	return nil
}

type queueInput struct {
	events []scene.Event
}

func (q *queueInput) PollInput() (scene.Event, bool) {
	if len(q.events) == 0 {
		return scene.Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

func testOptions(frames int) Options {
	return Options{
		Width:     8,
		Height:    6,
		Shade:     raster.DefaultShadeConfig(),
		Zoom:      scene.DefaultZoomConfig(),
		MaxFrames: frames,
	}
}

func TestRunFrameLimit(t *testing.T) {
	sc := scene.Default(8, 6)
	anim := scene.NewAnimator(8, 6)
	surf := &fakeSurface{}

	n, err := Run(context.Background(), sc, anim, surf, nil, testOptions(3))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || surf.presented != 3 {
		t.Errorf("expected 3 frames, got n=%d presented=%d", n, surf.presented)
	}
	if surf.pixels != 3*8*6 {
		t.Errorf("expected %d pixels, got %d", 3*8*6, surf.pixels)
	}
	if math.Abs(anim.Theta-0.3) > 1e-12 {
		t.Errorf("expected theta 0.3, got %v", anim.Theta)
	}
}

func TestRunOneEventPerFrame(t *testing.T) {
	sc := scene.Default(8, 6)
	in := &queueInput{events: []scene.Event{
		{Kind: scene.Motion, X: 1, Y: 2},
		{Kind: scene.Motion, X: 3, Y: 4},
	}}

	if _, err := Run(context.Background(), sc, nil, &fakeSurface{}, in, testOptions(1)); err != nil {
		t.Fatal(err)
	}
	if sc.Light.Center[0] != 1 || sc.Light.Center[1] != 2 {
		t.Errorf("expected first event only, light at %v", sc.Light.Center)
	}
	if len(in.events) != 1 {
		t.Errorf("expected one event left, got %d", len(in.events))
	}
}

func TestRunStopsOnClosedSurface(t *testing.T) {
	surf := &fakeSurface{closeAt: 2}
	n, err := Run(context.Background(), scene.Default(8, 6), nil, surf, nil, testOptions(0))
	if err != nil {
		t.Fatalf("closing is not an error, got %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 frame before close, got %d", n)
	}
}

func TestRunWrapsPresentError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(context.Background(), scene.Default(8, 6), nil, &fakeSurface{err: boom}, nil, testOptions(5))
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped boom, got %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	surf := &fakeSurface{}
	n, err := Run(ctx, scene.Default(8, 6), nil, surf, NoInput{}, testOptions(0))
	if err != nil || n != 0 || surf.pixels != 0 {
		t.Errorf("expected no work after cancel, got n=%d pixels=%d err=%v", n, surf.pixels, err)
	}
}
