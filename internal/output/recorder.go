package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"spheretrace/internal/mathutil"
	"spheretrace/internal/postprocess"
	"spheretrace/internal/raster"
)

// Config holds everything a Recorder needs.
type Config struct {
	OutputDir    string
	Format       Format
	Width        int // render size
	Height       int
	OutputWidth  int // saved size, 0 keeps the render size
	OutputHeight int
	Filter       postprocess.Filter
	Workers      int
	GIFDelay     int // 100ths of a second per frame
}

// Result holds the outcome of saving one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Recorder is a frame surface that saves every presented frame to disk.
// Rendering stays on the caller's goroutine; scaling and encoding run on a
// worker pool.
type Recorder struct {
	cfg   Config
	fb    *raster.FrameBuffer
	frame int

	jobs chan job
	wg   sync.WaitGroup

	mu      sync.Mutex
	results []Result

	gif *gifFrames
}

type job struct {
	n   int
	img *image.NRGBA
}

// NewRecorder creates the output directory and starts the encode workers.
func NewRecorder(cfg Config) (*Recorder, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Format == "" {
		cfg.Format = PNG
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = 4
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("output: mkdir %s: %w", cfg.OutputDir, err)
	}

	r := &Recorder{
		cfg:  cfg,
		fb:   raster.NewFrameBuffer(cfg.Width, cfg.Height),
		jobs: make(chan job, cfg.Workers*2),
	}
	if cfg.Format == GIF {
		r.gif = newGIFFrames()
	}

	for w := 0; w < cfg.Workers; w++ {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			for j := range r.jobs {
				res := r.save(j)
				r.mu.Lock()
				r.results = append(r.results, res)
				r.mu.Unlock()
			}
		}()
	}

	return r, nil
}

func (r *Recorder) PutPixel(x, y int, c mathutil.Vec3) {
	r.fb.PutPixel(x, y, c)
}

// PresentFrame snapshots the buffer and queues it for saving.
func (r *Recorder) PresentFrame() error {
	r.jobs <- job{n: r.frame, img: r.fb.Image()}
	r.frame++
	return nil
}

// FramePath returns where frame n is written.
func (r *Recorder) FramePath(n int) string {
	return filepath.Join(r.cfg.OutputDir, fmt.Sprintf("frame_%05d%s", n, r.cfg.Format.Ext()))
}

func (r *Recorder) save(j job) Result {
	img := j.img
	if r.cfg.OutputWidth > 0 && r.cfg.OutputHeight > 0 {
		img = postprocess.Resize(img, r.cfg.OutputWidth, r.cfg.OutputHeight, r.cfg.Filter)
	}

	if r.gif != nil {
		r.gif.add(j.n, img)
		return Result{Frame: j.n, Success: true}
	}

	path := r.FramePath(j.n)
	f, err := os.Create(path)
	if err != nil {
		return Result{Frame: j.n, Path: path, Error: err.Error()}
	}
	if err := writeFrame(f, img, r.cfg.Format); err != nil {
		return Result{Frame: j.n, Path: path, Error: err.Error()}
	}

	return Result{Frame: j.n, Path: path, Success: true}
}

// writeFrame encodes img to wc and closes it. A failed close is reported
// since it can lose the tail of the file.
func writeFrame(wc io.WriteCloser, img image.Image, format Format) error {
	if err := Encode(wc, img, format); err != nil {
		wc.Close()
		return fmt.Errorf("%s encode: %w", format, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

// Close waits for queued frames, writes the GIF when recording one, and
// writes frames.json. Results are ordered by frame number.
func (r *Recorder) Close() ([]Result, error) {
	close(r.jobs)
	r.wg.Wait()

	r.mu.Lock()
	results := append([]Result(nil), r.results...)
	r.mu.Unlock()
	sort.Slice(results, func(i, j int) bool { return results[i].Frame < results[j].Frame })

	if r.gif != nil && len(results) > 0 {
		path := filepath.Join(r.cfg.OutputDir, "frames.gif")
		if err := r.gif.write(path, r.cfg.GIFDelay); err != nil {
			return results, err
		}
		for i := range results {
			results[i].Path = path
		}
	}

	if err := WriteManifest(filepath.Join(r.cfg.OutputDir, "frames.json"), r.cfg, results); err != nil {
		return results, err
	}
	return results, nil
}
