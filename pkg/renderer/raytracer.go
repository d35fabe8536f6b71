package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders a scene into a framebuffer
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, config RenderConfig, logger core.Logger) *Raytracer {
	rt := &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		logger: logger,
	}
	rt.SetRenderConfig(config)
	return rt
}

// SetRenderConfig updates the render configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	rt.config = config
}

// Config returns the active render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces every pixel once. Tiles are rendered in parallel and the
// result does not depend on the worker count or tile size.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	startTime := time.Now()

	fb := NewFramebuffer(rt.width, rt.height)
	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)

	workerPool := NewWorkerPool(rt.scene, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d image, %d spheres, %d tiles (using %d workers)...\n",
		rt.width, rt.height, len(rt.scene.GetSpheres()), len(tiles), workerPool.GetNumWorkers())

	workerPool.Start(ctx)
	defer workerPool.Stop()

	for _, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:        tile,
			Framebuffer: fb,
		})
	}

	var stats RenderStats
	var firstErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)
	}

	if firstErr != nil {
		if errors.Is(firstErr, context.Canceled) || errors.Is(firstErr, context.DeadlineExceeded) {
			rt.logger.Printf("Rendering cancelled: %v\n", firstErr)
		} else {
			rt.logger.Printf("Rendering failed: %v\n", firstErr)
		}
		return nil, RenderStats{}, firstErr
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d of %d pixels covered, %.1f%%)\n",
		stats.Duration, stats.HitPixels, stats.TotalPixels, 100*stats.Coverage())

	return fb, stats, nil
}

// RenderSequential traces every pixel on the calling goroutine in scanline order
func (rt *Raytracer) RenderSequential() (*Framebuffer, RenderStats) {
	startTime := time.Now()
	fb := NewFramebuffer(rt.width, rt.height)
	stats := NewTileRenderer(rt.scene).RenderTileBounds(fb.Bounds(), fb)
	stats.Duration = time.Since(startTime)
	return fb, stats
}
