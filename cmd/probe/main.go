package main

import (
	"flag"
	"fmt"
	"os"

	"spheretrace/internal/config"
	"spheretrace/internal/raster"
	"spheretrace/internal/scene"
)

// probe advances the scene N frames and prints how one pixel's color is composed.
func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to a scene JSON file")
	frames := flag.Int("frames", 0, "Animation frames to advance first")
	x := flag.Int("x", 150, "Pixel x")
	y := flag.Int("y", 150, "Pixel y")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{SceneFile: *sceneFile})

	sc := scene.Default(cfg.Width, cfg.Height)
	if cfg.SceneFile != "" {
		var err error
		sc, err = scene.Load(cfg.SceneFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	anim := scene.NewAnimator(cfg.Width, cfg.Height)
	anim.Step = cfg.ThetaStep
	for i := 0; i < *frames; i++ {
		anim.Advance(sc)
	}

	shade := cfg.Shading
	r := shade.PrimaryRay(*x, *y)
	fmt.Printf("Pixel (%d,%d) after %d frames, theta=%.2f\n", *x, *y, *frames, anim.Theta)
	fmt.Printf("Light: center=%v color=%v\n", sc.Light.Center, sc.Light.Color)

	for i := range sc.Objects {
		s := &sc.Objects[i]
		t, ok := s.IntersectsEps(r, shade.Epsilon)
		if !ok {
			fmt.Printf("  [%d] %-6s miss\n", i, label(i, s.Tag))
			continue
		}
		p := r.At(t)
		n := s.Normal(p)
		base := raster.BaseColor(s, &sc.Light, p, n, &shade)
		refl := base
		if !s.IsWorld() {
			refl = raster.Reflection(sc.Objects, p, n, base, &shade)
		}
		shad := raster.Shadow(sc.Objects, p, refl, &sc.Light, &shade)
		fmt.Printf("  [%d] %-6s t=%.3f hit=%.1f\n", i, label(i, s.Tag), t, p)
		fmt.Printf("       base=%.1f reflect=%.1f shadow=%.1f clamp=%.0f\n", base, refl, shad, raster.Clamp(shad))
	}

	fmt.Printf("Final: %.0f\n", raster.Trace(r, &sc.Light, sc.Objects, &shade))
}

func label(i int, tag string) string {
	if tag != "" {
		return tag
	}
	return fmt.Sprintf("obj%d", i)
}
