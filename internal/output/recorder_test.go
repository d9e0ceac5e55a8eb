package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"

	"spheretrace/internal/mathutil"
)

func recordFrames(t *testing.T, cfg Config, n int) (*Recorder, []Result) {
	t.Helper()
	rec, err := NewRecorder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		rec.PutPixel(i, 0, mathutil.Vec3{255, 128, 0})
		if err := rec.PresentFrame(); err != nil {
			t.Fatal(err)
		}
	}
	results, err := rec.Close()
	if err != nil {
		t.Fatal(err)
	}
	return rec, results
}

func TestRecorderPNG(t *testing.T) {
	dir := t.TempDir()
	rec, results := recordFrames(t, Config{OutputDir: dir, Format: PNG, Width: 4, Height: 3, Workers: 2}, 3)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if !r.Success || r.Frame != i {
			t.Fatalf("result %d: %+v", i, r)
		}
	}

	f, err := os.Open(rec.FramePath(2))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("expected 4x3, got %v", b)
	}
	// Pixels persist between frames: frame 2 has columns 0..2 painted.
	if r, _, _, _ := img.At(2, 0).RGBA(); r>>8 != 255 {
		t.Errorf("expected painted pixel, got r=%d", r>>8)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.json"))
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m.Frames) != 3 || m.Frames[0].Image != "frame_00000.png" || m.Width != 4 {
		t.Errorf("unexpected manifest %+v", m)
	}
}

func TestRecorderTGAScaled(t *testing.T) {
	dir := t.TempDir()
	rec, _ := recordFrames(t, Config{
		OutputDir: dir, Format: TGA, Width: 4, Height: 3,
		OutputWidth: 8, OutputHeight: 6, Workers: 1,
	}, 1)

	f, err := os.Open(rec.FramePath(0))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := tga.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("expected 8x6, got %v", b)
	}
}

func TestRecorderGIF(t *testing.T) {
	dir := t.TempDir()
	_, results := recordFrames(t, Config{OutputDir: dir, Format: GIF, Width: 4, Height: 4, Workers: 3}, 5)

	for _, r := range results {
		if r.Path != filepath.Join(dir, "frames.gif") {
			t.Fatalf("unexpected path %q", r.Path)
		}
	}

	f, err := os.Open(filepath.Join(dir, "frames.gif"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 5 {
		t.Errorf("expected 5 frames, got %d", len(g.Image))
	}
}

func TestEncodeWebP(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := Encode(&buf, img, WebP); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Errorf("not a WebP container: % x", b[:min(len(b), 12)])
	}
}

func TestEncodeRejectsGIFStill(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, image.NewNRGBA(image.Rect(0, 0, 1, 1)), GIF); err == nil {
		t.Error("expected error")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": PNG, ".WEBP": WebP, "tga": TGA, "gif": GIF} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("bmp"); err == nil {
		t.Error("expected error for bmp")
	}
}

type closeFailer struct {
	bytes.Buffer
	closed bool
}

func (c *closeFailer) Close() error {
	c.closed = true
	return errors.New("disk full")
}

func TestWriteFrameReportsCloseError(t *testing.T) {
	wc := &closeFailer{}
	err := writeFrame(wc, image.NewNRGBA(image.Rect(0, 0, 2, 2)), PNG)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected close error, got %v", err)
	}
	if !wc.closed || wc.Len() == 0 {
		t.Errorf("expected encoded bytes and a close call")
	}

	wc = &closeFailer{}
	if err := writeFrame(wc, image.NewNRGBA(image.Rect(0, 0, 1, 1)), GIF); err == nil || !wc.closed {
		t.Errorf("encode failure should still close: err=%v closed=%v", err, wc.closed)
	}
}
