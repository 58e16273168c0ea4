// Package ring derives the circular progress indicator from a progress ratio.
package ring

import (
	"image/color"
	"math"
)

// DefaultRadius matches the 260px dial of the main window.
const DefaultRadius = 130

// Ring is a circle stroked from 12 o'clock clockwise.
type Ring struct {
	Radius float64
	Stroke float64
}

// New returns a ring of the given radius with a proportional stroke.
func New(radius float64) Ring {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return Ring{Radius: radius, Stroke: radius / 16}
}

// Circumference returns 2πr.
func (ring Ring) Circumference() float64 {
	return 2 * math.Pi * ring.Radius
}

// Offset returns the dash offset for percent: circumference × (1 − percent).
func (ring Ring) Offset(percent float64) float64 {
	return ring.Circumference() * (1 - clamp(percent))
}

// Visible reports whether the point at angleFraction (0 at the top, growing
// clockwise, in [0,1)) lies on the drawn arc.
func (ring Ring) Visible(angleFraction, percent float64) bool {
	drawn := ring.Circumference() - ring.Offset(percent)
	return angleFraction*ring.Circumference() < drawn
}

// Pixel colours a raster of size width×height centred on the ring.
// Points outside the stroke are transparent; the undrawn arc uses track.
func (ring Ring) Pixel(x, y, width, height int, percent float64, stroke, track color.Color) color.Color {
	scale := math.Min(float64(width), float64(height)) / (2 * (ring.Radius + ring.Stroke))
	dx := (float64(x) - float64(width)/2) / scale
	dy := (float64(y) - float64(height)/2) / scale
	distance := math.Hypot(dx, dy)
	if math.Abs(distance-ring.Radius) > ring.Stroke/2 {
		return color.Transparent
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if ring.Visible(angle/(2*math.Pi), percent) {
		return stroke
	}
	return track
}

func clamp(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 1 {
		return 1
	}
	return percent
}
