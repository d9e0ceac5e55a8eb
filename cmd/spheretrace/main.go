package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spheretrace/internal/config"
	"spheretrace/internal/frameloop"
	"spheretrace/internal/output"
	"spheretrace/internal/postprocess"
	"spheretrace/internal/scene"
	"spheretrace/internal/stream"
	"spheretrace/internal/window"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	mode := flag.String("mode", "", "Surface: window, record or stream (default: window)")
	sceneFile := flag.String("scene", "", "Path to a scene JSON file (default: built-in scene)")
	width := flag.Int("width", 0, "Viewport width (default: 300)")
	height := flag.Int("height", 0, "Viewport height (default: 300)")
	frames := flag.Int("frames", 0, "Stop after N frames (required for record)")
	outputDir := flag.String("output", "", "Record output directory (default: frames)")
	format := flag.String("format", "", "png, webp, tga or gif (default: png)")
	scale := flag.Int("scale", 0, "Record output upscale factor")
	workers := flag.Int("workers", 0, "Encode worker goroutines (default: NumCPU)")
	addr := flag.String("addr", "", "Stream listen address (default: :8080)")
	dumpScene := flag.String("dump-scene", "", "Write the starting scene to this JSON file and exit")

	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mode:      *mode,
		SceneFile: *sceneFile,
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Workers:   *workers,
		Addr:      *addr,
	})

	sc := scene.Default(cfg.Width, cfg.Height)
	if cfg.SceneFile != "" {
		var err error
		sc, err = scene.Load(cfg.SceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}

	if *dumpScene != "" {
		if err := scene.Save(*dumpScene, sc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene: %s\n", *dumpScene)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	filter, err := postprocess.ParseFilter(cfg.Filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	anim := scene.NewAnimator(cfg.Width, cfg.Height)
	anim.Step = cfg.ThetaStep

	loopOpts := frameloop.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Shade:     cfg.Shading,
		Zoom:      cfg.Zoom,
		MaxFrames: cfg.Frames,
		Progress:  os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Sphere ray tracer → %s\n", cfg.Mode)
	fmt.Printf("Viewport: %dx%d, Spheres: %d\n", cfg.Width, cfg.Height, len(sc.Objects))
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	var n int

	switch cfg.Mode {
	case config.ModeWindow:
		err = window.Main(window.Options{
			Title:  "Ray Tracer",
			Width:  cfg.Width,
			Height: cfg.Height,
			Filter: filter,
		}, func(w *window.Window) error {
			var rerr error
			n, rerr = frameloop.Run(ctx, sc, anim, w, w, loopOpts)
			return rerr
		})

	case config.ModeRecord:
		n, err = record(ctx, cfg, filter, sc, anim, loopOpts)

	case config.ModeStream:
		n, err = serve(ctx, cfg, sc, anim, loopOpts)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Frames: %d in %.1fs\n", n, elapsed.Seconds())

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func record(ctx context.Context, cfg config.Config, filter postprocess.Filter, sc *scene.Scene, anim *scene.Animator, opts frameloop.Options) (int, error) {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return 0, err
	}

	rec, err := output.NewRecorder(output.Config{
		OutputDir:    cfg.OutputDir,
		Format:       format,
		Width:        cfg.Width,
		Height:       cfg.Height,
		OutputWidth:  cfg.OutputWidth,
		OutputHeight: cfg.OutputHeight,
		Filter:       filter,
		Workers:      cfg.Workers,
		GIFDelay:     cfg.GIFDelay,
	})
	if err != nil {
		return 0, err
	}
	fmt.Printf("Output: %s (%s, %d workers)\n", cfg.OutputDir, format, cfg.Workers)

	n, runErr := frameloop.Run(ctx, sc, anim, rec, nil, opts)
	results, closeErr := rec.Close()

	// Count results
	var failed []output.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Saved: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := 20
		if len(failed) < limit {
			limit = len(failed)
		}
		for _, r := range failed[:limit] {
			fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
		}
	}

	if runErr != nil {
		return n, runErr
	}
	if closeErr != nil {
		return n, closeErr
	}
	if len(failed) > 0 {
		return n, fmt.Errorf("%d frames failed to save", len(failed))
	}
	return n, nil
}

func serve(ctx context.Context, cfg config.Config, sc *scene.Scene, anim *scene.Animator, opts frameloop.Options) (int, error) {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return 0, err
	}

	srv := stream.NewServer(stream.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		MaxFPS: cfg.MaxFPS,
	})
	defer srv.Close()

	hs := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}
	errc := make(chan error, 1)
	go func() {
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()
	fmt.Printf("Viewer: http://localhost%s/\n", cfg.Addr)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err, ok := <-errc; ok && err != nil {
			fmt.Fprintf(os.Stderr, "Error: listen: %v\n", err)
			cancel()
		}
	}()

	n, runErr := frameloop.Run(runCtx, sc, anim, srv, srv, opts)

	shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
	defer done()
	_ = hs.Shutdown(shutdownCtx)

	return n, runErr
}
