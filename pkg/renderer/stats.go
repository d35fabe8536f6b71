package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	HitPixels         int           // Pixels covered by at least one sphere
	IntersectionTests int           // Ray-sphere tests performed
	Duration          time.Duration // Wall time of the render, set by Render
}

// Add accumulates the counters of another stats value
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.IntersectionTests += other.IntersectionTests
}

// Coverage returns the fraction of pixels covered by a sphere
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
