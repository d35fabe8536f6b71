package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a flat-colored sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Roots returns both solutions of the ray-sphere quadratic, smaller first.
//
// The roots are -b ∓ sqrt(b² - 4ac) without the usual division by 2a, so they
// are scaled by 2|d|² relative to the true distance. Ordering and sign are
// unaffected, which is all the renderer compares. Negative roots (behind the
// ray origin) are returned as-is.
func (s Sphere) Roots(ray core.Ray) (t1, t2 float64, ok bool) {
	// Vector from sphere center to ray origin
	l := ray.Origin.Subtract(s.Center)

	a := ray.Direction.LengthSquared()
	b := 2 * ray.Direction.Dot(l)
	c := l.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	x1 := -b - sqrtD
	x2 := -b + sqrtD
	if x1 < x2 {
		return x1, x2, true
	}
	return x2, x1, true
}

// Hit returns the nearest intersection parameter along the ray.
// The ray direction is expected to be normalized.
func (s Sphere) Hit(ray core.Ray) (float64, bool) {
	t, _, ok := s.Roots(ray)
	return t, ok
}
