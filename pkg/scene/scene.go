package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Spheres      []geometry.Sphere // Objects in the scene, in intersection order
	Background   core.Color        // Color of pixels no sphere covers
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetSpheres returns the scene spheres in intersection order
func (s *Scene) GetSpheres() []geometry.Sphere {
	return s.Spheres
}

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Color {
	return s.Background
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
