package renderer

import (
	"context"
	"fmt"
	"image"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/geometry"
	"github.com/LucasKurosei/ray-tracing/pkg/imageio"
	"github.com/LucasKurosei/ray-tracing/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	world      geometry.World
	camera     *Camera
	integrator integrator.Integrator
	maxDepth   int
}

// NewTileRenderer creates a new tile renderer with the given world and integrator
func NewTileRenderer(world geometry.World, camera *Camera, integratorInst integrator.Integrator, maxDepth int) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		maxDepth:   maxDepth,
	}
}

// RenderTileBounds renders pixels within the specified bounds into img
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, img *imageio.Image, sampler core.Sampler) (RenderStats, error) {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			if err := tr.samplePixel(j, i, &ps, sampler); err != nil {
				return stats, fmt.Errorf("pixel (%d, %d): %w", i, j, err)
			}
			img.Set(i, j, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.finalize()
	return stats, nil
}

// RenderPixel returns the averaged color of one pixel
func (tr *TileRenderer) RenderPixel(row, col int, sampler core.Sampler) (core.Color, error) {
	var ps PixelStats
	if err := tr.samplePixel(row, col, &ps, sampler); err != nil {
		return core.Color{}, err
	}
	return ps.GetColor(), nil
}

// samplePixel traces every sub-sample of the S×S grid
func (tr *TileRenderer) samplePixel(row, col int, ps *PixelStats, sampler core.Sampler) error {
	s := tr.camera.SamplesPerAxis()
	for k := 0; k < s; k++ {
		for l := 0; l < s; l++ {
			ray, err := tr.camera.GetRay(row, col, k, l)
			if err != nil {
				return err
			}
			color, err := tr.integrator.RayColor(ray, tr.world, sampler, tr.maxDepth)
			if err != nil {
				return err
			}
			ps.AddSample(color)
		}
	}
	return nil
}
