package scene

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Default camera parameters
const (
	DefaultFocalLength = 2.1
	DefaultFrameWidth  = 5.0
)

// defaultSpheres is a unit-diameter white sphere at the origin surrounded by a
// ring of six smaller spheres in the y=0 plane.
var defaultSpheres = [...]geometry.Sphere{
	geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, 0xffffff),

	geometry.NewSphere(core.NewVec3(0.5, 0, -0.866), 0.25, 0xff0000),
	geometry.NewSphere(core.NewVec3(-0.5, 0, -0.866), 0.25, 0xff00ff),
	geometry.NewSphere(core.NewVec3(-1, 0, 0), 0.25, 0x00ff00),
	geometry.NewSphere(core.NewVec3(-0.5, 0, 0.866), 0.25, 0xcccccc),
	geometry.NewSphere(core.NewVec3(0.5, 0, 0.866), 0.25, 0x00ffff),
	geometry.NewSphere(core.NewVec3(1, 0, 0), 0.25, 0x0000ff),
}

// DefaultSpheres returns a copy of the compiled-in sphere list
func DefaultSpheres() []geometry.Sphere {
	spheres := defaultSpheres
	return spheres[:]
}

// DefaultCameraConfig returns the camera that frames the default spheres.
// The camera sits focal length units behind (0, -0.2, -0.2), looking slightly
// upward along +z.
func DefaultCameraConfig(width, height int) geometry.CameraConfig {
	look := core.NewVec3(0, 0.35, 1).Normalize()
	origin := core.NewVec3(0, -0.2, -0.2).Add(look.Multiply(-DefaultFocalLength))

	return geometry.CameraConfig{
		Origin:        origin,
		LookDirection: look,
		FocalLength:   DefaultFocalLength,
		FrameWidth:    DefaultFrameWidth,
		Width:         width,
		Height:        height,
	}
}

// NewDefaultScene creates the sphere ring scene for the given image size
func NewDefaultScene(width, height int) (*Scene, error) {
	cameraConfig := DefaultCameraConfig(width, height)

	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	return &Scene{
		Camera:       camera,
		CameraConfig: camera.Config(),
		Spheres:      DefaultSpheres(),
		Background:   core.Black,
	}, nil
}
