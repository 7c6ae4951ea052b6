package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/geometry"
	"github.com/LucasKurosei/ray-tracing/pkg/imageio"
	"github.com/LucasKurosei/ray-tracing/pkg/integrator"
)

// Raytracer handles the rendering process
type Raytracer struct {
	world  geometry.World
	camera *Camera
	config SamplingConfig
	tiles  *TileRenderer
	logger core.Logger
}

// NewRaytracer creates a new raytracer for world. The world must not be
// modified while a render is in progress.
func NewRaytracer(world geometry.World, cameraConfig CameraConfig, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := world.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDiscardLogger()
	}

	camera, err := NewCamera(cameraConfig, config.Width, config.Height, config.SamplesPerPixel)
	if err != nil {
		return nil, err
	}

	background, err := integrator.NewBackground(config.Background)
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		world:  world,
		camera: camera,
		config: config,
		tiles:  NewTileRenderer(world, camera, integrator.NewEstimator(background), config.MaxDepth),
		logger: logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.tiles = NewTileRenderer(rt.world, rt.camera, integratorInst, rt.config.MaxDepth)
}

// Config returns the sampling configuration in use
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// RenderPixel computes the averaged color of a single pixel
func (rt *Raytracer) RenderPixel(row, col int, sampler core.Sampler) (core.Color, error) {
	return rt.tiles.RenderPixel(row, col, sampler)
}

// Render traces every pixel band by band, top to bottom, and returns the
// image. The first failing sample aborts the whole render.
func (rt *Raytracer) Render(ctx context.Context) (*imageio.Image, RenderStats, error) {
	startTime := time.Now()

	img := imageio.NewImage(rt.config.Width, rt.config.Height)
	bands := NewRowBands(rt.config.Width, rt.config.Height, rt.config.TileSize, rt.config.Seed)

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel)

	stats := RenderStats{SamplesPerPixel: rt.config.SamplesPerPixel}
	remaining := rt.config.Height

	for _, band := range bands {
		// Each band draws from its own generator, so a band renders the same
		// regardless of what was rendered before it
		sampler := core.NewRandomSampler(band.Random)
		bandStats, err := rt.tiles.RenderTileBounds(ctx, band.Bounds, img, sampler)
		if err != nil {
			return nil, stats, fmt.Errorf("render aborted: %w", err)
		}

		stats.merge(bandStats)
		remaining -= band.Bounds.Dy()
		rt.logger.Printf("there are %d lines remaining\n", remaining)
	}

	stats.finalize()
	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Done! Render completed in %v (%.1f samples/pixel)\n", stats.Duration, stats.AverageSamples)

	return img, stats, nil
}
