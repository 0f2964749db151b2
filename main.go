package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"

	"github.com/kjhsato/pathtrace/pkg/core"
	"github.com/kjhsato/pathtrace/pkg/render"
	"github.com/kjhsato/pathtrace/pkg/scene"
)

// cliConfig holds all the configuration for a single render, parsed
// from flags and optionally overlaid with a YAML config file.
type cliConfig struct {
	SceneName  string
	Width      int
	Aspect     float64
	Samples    int
	MaxDepth   int
	Workers    int
	Seed       int64
	Output     string
	EarthPath  string
	ConfigPath string
	CPUProfile string
	Help       bool
}

func main() {
	cfg := parseFlags()
	if cfg.Help {
		showHelp()
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func parseFlags() cliConfig {
	cfg := cliConfig{}
	flag.StringVar(&cfg.SceneName, "scene", "basic", "Preset scene: basic, noise, globe, lit-globe")
	flag.IntVar(&cfg.Width, "width", 400, "Image width in pixels")
	flag.Float64Var(&cfg.Aspect, "aspect", 16.0/9.0, "Image aspect ratio (width/height)")
	flag.IntVar(&cfg.Samples, "samples", 100, "Samples per pixel")
	flag.IntVar(&cfg.MaxDepth, "max-depth", 50, "Maximum ray recursion depth")
	flag.IntVar(&cfg.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&cfg.Seed, "seed", 1, "RNG seed, for reproducible renders")
	flag.StringVar(&cfg.Output, "output", "render.ppm", "Output PPM file path")
	flag.StringVar(&cfg.EarthPath, "earth-texture", "earth.jpg", "Path to the earth texture used by globe/lit-globe scenes")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML file overriding samples/depth/width/output")
	flag.StringVar(&cfg.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.BoolVar(&cfg.Help, "help", false, "Show help information")
	flag.Parse()
	return cfg
}

func showHelp() {
	fmt.Println("pathtrace: an offline Monte Carlo path tracer")
	fmt.Println("Usage: pathtrace [options]")
	fmt.Println()
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Preset scenes: basic, noise, globe, lit-globe")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pathtrace --scene=basic --samples=100")
	fmt.Println("  pathtrace --scene=noise --width=600 --workers=4")
	fmt.Println("  pathtrace --scene=globe --earth-texture=assets/earth.jpg")
}

func run(cfg cliConfig) error {
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return errors.Wrapf(err, "creating CPU profile %q", cfg.CPUProfile)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	width, samples, depth, output := cfg.Width, cfg.Samples, cfg.MaxDepth, cfg.Output
	if cfg.ConfigPath != "" {
		override, err := scene.LoadOverrideConfig(cfg.ConfigPath)
		if err != nil {
			return err
		}
		width, samples, depth, output = override.Apply(width, samples, depth, output)
	}
	height := int(float64(width) / cfg.Aspect)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger := render.NewStdLogger(log.New(os.Stdout, "", log.LstdFlags))
	fmt.Printf("Building %q scene at %dx%d, %d samples/px, depth %d, %d workers\n",
		cfg.SceneName, width, height, samples, depth, workers)

	buildRandom := rand.New(rand.NewSource(cfg.Seed))
	builtScene, err := scene.Build(scene.Name(cfg.SceneName), scene.Options{
		AspectRatio:      cfg.Aspect,
		EarthTexturePath: cfg.EarthPath,
		Random:           buildRandom,
	})
	if err != nil {
		return errors.Wrap(err, "building scene")
	}

	background := core.Colour{X: 0.5, Y: 0.7, Z: 1.0}
	if scene.Name(cfg.SceneName) == scene.LitGlobe {
		background = core.Colour{} // pure black: illumination comes only from the emissive sphere
	}

	opts := render.Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        depth,
		Background:      background,
		Workers:         workers,
		Seed:            cfg.Seed,
	}

	start := time.Now()
	rows, stats := render.Render(render.Scene{World: builtScene.World, Camera: builtScene.Camera}, opts, logger)
	fmt.Printf("Render completed in %v (%.0f samples/sec)\n", time.Since(start), stats.SamplesPerSecond())

	out, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "creating output file %q", output)
	}
	defer out.Close()

	if err := render.WritePPM(out, width, height, rows); err != nil {
		return errors.Wrap(err, "writing PPM output")
	}

	fmt.Printf("Render saved as %s\n", output)
	return nil
}
