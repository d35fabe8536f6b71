package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

func TestDefaultSpheres(t *testing.T) {
	spheres := DefaultSpheres()
	if len(spheres) != 7 {
		t.Fatalf("Expected 7 spheres, got %d", len(spheres))
	}

	center := spheres[0]
	if center.Center != core.NewVec3(0, 0, 0) || center.Radius != 0.5 || center.Color != 0xffffff {
		t.Errorf("Unexpected central sphere: %+v", center)
	}

	expectedColors := []core.Color{0xff0000, 0xff00ff, 0x00ff00, 0xcccccc, 0x00ffff, 0x0000ff}
	for i, sphere := range spheres[1:] {
		if sphere.Radius != 0.25 {
			t.Errorf("Ring sphere %d: expected radius 0.25, got %v", i, sphere.Radius)
		}
		if sphere.Color != expectedColors[i] {
			t.Errorf("Ring sphere %d: expected color %v, got %v", i, expectedColors[i], sphere.Color)
		}
		if sphere.Center.Y != 0 {
			t.Errorf("Ring sphere %d should lie in the y=0 plane, got %v", i, sphere.Center)
		}
		if d := sphere.Center.Length(); math.Abs(d-1) > 1e-3 {
			t.Errorf("Ring sphere %d should be 1 unit from the origin, got %v", i, d)
		}
	}
}

func TestDefaultSpheresReturnsCopy(t *testing.T) {
	spheres := DefaultSpheres()
	spheres[0].Color = 0x123456

	if DefaultSpheres()[0].Color != 0xffffff {
		t.Error("Modifying a returned sphere list should not change the compiled-in scene")
	}
}

func TestNewDefaultScene(t *testing.T) {
	s, err := NewDefaultScene(400, 300)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.GetPrimitiveCount() != 7 {
		t.Errorf("Expected 7 primitives, got %d", s.GetPrimitiveCount())
	}
	if s.GetBackground() != core.Black {
		t.Errorf("Expected black background, got %v", s.GetBackground())
	}
	if s.GetCamera() == nil {
		t.Fatal("Expected a camera")
	}
	if s.CameraConfig.Width != 400 || s.CameraConfig.Height != 300 {
		t.Errorf("Unexpected camera size %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
	}
	if math.Abs(s.CameraConfig.LookDirection.Length()-1) > 1e-9 {
		t.Errorf("Expected normalized look direction, got %v", s.CameraConfig.LookDirection)
	}
}

func TestDefaultCameraLooksThroughAnchor(t *testing.T) {
	config := DefaultCameraConfig(512, 512)
	anchor := config.Origin.Add(config.LookDirection.Multiply(config.FocalLength))
	if anchor.Subtract(core.NewVec3(0, -0.2, -0.2)).Length() > 1e-9 {
		t.Errorf("Expected image plane center at (0,-0.2,-0.2), got %v", anchor)
	}
}

func TestNewDefaultSceneInvalidSize(t *testing.T) {
	s, err := NewDefaultScene(0, 10)
	if !errors.Is(err, geometry.ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}
	if s != nil {
		t.Error("Expected nil scene on error")
	}
}
