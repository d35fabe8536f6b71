package renderer

import (
	"context"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

func TestWorkerPoolRendersAllTiles(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 3), 100, 0x00ffff)
	scene := createMockScene(t, 20, 10, sphere)

	tiles := NewTileGrid(20, 10, 4)
	fb := NewFramebuffer(20, 10)

	pool := NewWorkerPool(scene, 3, len(tiles))
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start(context.Background())

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Framebuffer: fb})
	}

	var stats RenderStats
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if result.Error != nil {
			t.Fatalf("Unexpected error: %v", result.Error)
		}
		stats.Add(result.Stats)
	}
	pool.Stop()

	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
	if stats.TotalPixels != 200 || stats.HitPixels != 200 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	for _, c := range fb.Pixels() {
		if c != 0x00ffff {
			t.Fatalf("Expected every pixel rendered, found %v", c)
		}
	}
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(&MockScene{}, 0, 1)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.GetNumWorkers())
	}
}
