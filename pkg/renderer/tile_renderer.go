package renderer

import (
	"image"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetSpheres() []geometry.Sphere
	GetBackground() core.Color
}

// TileRenderer handles the actual rendering of individual tiles
type TileRenderer struct {
	scene Scene
}

// NewTileRenderer creates a new tile renderer for the given scene
func NewTileRenderer(scene Scene) *TileRenderer {
	return &TileRenderer{scene: scene}
}

// hitWorld finds the sphere with the smallest intersection parameter.
// Spheres are tested in scene order and a later sphere replaces the current
// one only if strictly nearer, so the first sphere wins ties.
func (tr *TileRenderer) hitWorld(ray core.Ray) (core.Color, float64, bool) {
	closestSoFar := math.Inf(1)
	color := tr.scene.GetBackground()
	hitAnything := false

	for _, sphere := range tr.scene.GetSpheres() {
		if t, isHit := sphere.Hit(ray); isHit && t < closestSoFar {
			hitAnything = true
			closestSoFar = t
			color = sphere.Color
		}
	}

	return color, closestSoFar, hitAnything
}

// TracePixel returns the color of pixel (x, y) and whether any sphere covers it
func (tr *TileRenderer) TracePixel(x, y int) (core.Color, bool) {
	ray := tr.scene.GetCamera().GetRay(x, y)
	color, _, isHit := tr.hitWorld(ray)
	return color, isHit
}

// RenderTileBounds renders pixels within the specified bounds into fb
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer) RenderStats {
	sphereCount := len(tr.scene.GetSpheres())
	stats := RenderStats{
		TotalPixels:       bounds.Dx() * bounds.Dy(),
		IntersectionTests: bounds.Dx() * bounds.Dy() * sphereCount,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color, isHit := tr.TracePixel(i, j)
			if isHit {
				stats.HitPixels++
			}
			fb.SetPixel(i, j, color)
		}
	}

	return stats
}
