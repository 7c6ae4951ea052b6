package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/imageio"
	"github.com/LucasKurosei/ray-tracing/pkg/renderer"
	"github.com/LucasKurosei/ray-tracing/pkg/scene"
)

// renderFlags holds the sampling options that can be given on the command line
type renderFlags struct {
	width      int
	height     int
	samples    int
	depth      int
	background string
	tileSize   int
	seed       int64
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: 'default', a scene name from the scenes directory, or a path to a .json file")
	outPath := flag.String("out", "", "Output PPM file (default stdout)")
	scenesDir := flag.String("scenes", "", "Directory searched by -list (default ./scenes)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")

	var opts renderFlags
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel, must be a perfect square")
	flag.IntVar(&opts.depth, "depth", 0, "Diffuse branching depth")
	flag.StringVar(&opts.background, "background", "", "Sky model: 'horizon' or 'gradient'")
	flag.IntVar(&opts.tileSize, "tile", 0, "Rows rendered per band")
	flag.Int64Var(&opts.seed, "seed", 0, "Base random seed")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Ray Tracer")
		fmt.Println("Usage: raytracer [options] > image.ppm")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Scene values are used unless a flag is given explicitly.")
		fmt.Println("Progress is reported on stderr; the P3 image goes to stdout or -out.")
		return
	}

	logger := renderer.NewDefaultLogger(os.Stderr)

	if *list {
		dir := *scenesDir
		if dir == "" {
			dir = scene.FindScenesDir()
		}
		if err := listScenes(os.Stdout, dir, logger); err != nil {
			log.Printf("Error listing scenes: %v", err)
			os.Exit(1)
		}
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Printf("Error loading scene: %v", err)
		os.Exit(1)
	}

	// Only flags that were actually given override the scene
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	selectedScene.SamplingConfig = opts.apply(selectedScene.SamplingConfig, setFlags)

	logger.Printf("Using scene %q...\n", selectedScene.Name)

	raytracer, err := selectedScene.NewRaytracer(logger)
	if err != nil {
		log.Printf("Error creating raytracer: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, _, err := raytracer.Render(ctx)
	if err != nil {
		log.Printf("Error rendering: %v", err)
		os.Exit(1)
	}

	if err := writeImage(*outPath, img); err != nil {
		log.Printf("Error saving PPM: %v", err)
		os.Exit(1)
	}
	if *outPath != "" {
		logger.Printf("Render saved as %s\n", *outPath)
	}
}

// createScene resolves the -scene argument
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.ResolveScene(sceneType)
}

// apply copies the explicitly set flags onto config
func (f renderFlags) apply(config renderer.SamplingConfig, set map[string]bool) renderer.SamplingConfig {
	if set["width"] {
		config.Width = f.width
	}
	if set["height"] {
		config.Height = f.height
	}
	if set["samples"] {
		config.SamplesPerPixel = f.samples
	}
	if set["depth"] {
		config.MaxDepth = f.depth
	}
	if set["background"] {
		config.Background = f.background
	}
	if set["tile"] {
		config.TileSize = f.tileSize
	}
	if set["seed"] {
		config.Seed = f.seed
	}
	return config
}

// listScenes prints the builtin scenes followed by the scene files in dir
func listScenes(w io.Writer, dir string, logger core.Logger) error {
	scenes, err := scene.ListAllScenes(dir, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scenes {
		fmt.Fprintf(w, "  %-16s %s\n", info.ID, info.Description)
	}
	return nil
}

// writeImage writes the PPM to path, or to stdout when path is empty
func writeImage(path string, img *imageio.Image) error {
	if path == "" {
		return imageio.WritePPM(os.Stdout, img)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imageio.WritePPM(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
