package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

var (
	// ErrInvalidCamera is returned for non-positive image or frame dimensions
	ErrInvalidCamera = errors.New("invalid camera configuration")
	// ErrDegenerateCamera is returned when the look direction cannot span an image plane
	ErrDegenerateCamera = errors.New("degenerate camera basis")
)

// CameraConfig describes a pinhole camera looking through a flat frame
type CameraConfig struct {
	Origin        core.Vec3 // Eye position
	LookDirection core.Vec3 // Viewing direction, normalized by NewCamera
	FocalLength   float64   // Distance from origin to the image plane
	FrameWidth    float64   // Width of the image plane in world units
	Width         int       // Image width in pixels
	Height        int       // Image height in pixels
}

// FrameHeight returns the image plane height derived from the pixel aspect
func (c CameraConfig) FrameHeight() float64 {
	return (float64(c.Height) / float64(c.Width)) * c.FrameWidth
}

// Camera generates primary rays for pixel coordinates
type Camera struct {
	config       CameraConfig
	origin       core.Vec3
	look         core.Vec3
	xVec         core.Vec3 // Unit vector along image rows
	yVec         core.Vec3 // Unit vector along image columns
	screenOrigin core.Vec3 // World position of pixel (0, 0)
	xStep        float64
	yStep        float64
}

// NewCamera validates the configuration and precomputes the image plane basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidCamera, config.Width, config.Height)
	}
	if !(config.FrameWidth > 0) || !(config.FocalLength > 0) {
		return nil, fmt.Errorf("%w: frame width %v, focal length %v", ErrInvalidCamera, config.FrameWidth, config.FocalLength)
	}
	if config.LookDirection.IsZero() {
		return nil, fmt.Errorf("%w: zero look direction", ErrDegenerateCamera)
	}

	look := config.LookDirection.Normalize()

	// Project the look direction onto the horizontal plane. A look direction
	// that is already horizontal would make the cross product below vanish,
	// so lift it off the plane instead.
	planarLook := core.NewVec3(look.X, 0, look.Z)
	if look.Y == 0 {
		planarLook.Y += 1
	}

	xVec := look.Cross(planarLook)
	if xVec.IsZero() {
		return nil, fmt.Errorf("%w: look direction %v is parallel to the y axis", ErrDegenerateCamera, look)
	}
	yVec := look.Cross(xVec)
	xVec = xVec.Normalize()
	yVec = yVec.Normalize()

	frameHeight := config.FrameHeight()
	screenOrigin := config.Origin.
		Add(look.Multiply(config.FocalLength)).
		Add(xVec.Multiply(config.FrameWidth / -2)).
		Add(yVec.Multiply(frameHeight / -2))

	cfg := config
	cfg.LookDirection = look

	return &Camera{
		config:       cfg,
		origin:       config.Origin,
		look:         look,
		xVec:         xVec,
		yVec:         yVec,
		screenOrigin: screenOrigin,
		xStep:        config.FrameWidth / float64(config.Width),
		yStep:        frameHeight / float64(config.Height),
	}, nil
}

// Config returns the camera configuration with the look direction normalized
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Origin returns the eye position shared by every primary ray
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// Basis returns the unit look, row and column vectors of the image plane
func (c *Camera) Basis() (look, xVec, yVec core.Vec3) {
	return c.look, c.xVec, c.yVec
}

// RayDirection returns the normalized direction from the origin through pixel (x, y)
func (c *Camera) RayDirection(x, y int) core.Vec3 {
	screenPoint := c.screenOrigin.
		Add(c.xVec.Multiply(float64(x) * c.xStep)).
		Add(c.yVec.Multiply(float64(y) * c.yStep))
	return screenPoint.Subtract(c.origin).Normalize()
}

// GetRay returns the primary ray for pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	return core.NewRay(c.origin, c.RayDirection(x, y))
}
