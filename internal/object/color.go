package object

import "math/rand"

// Color is an RGB color with components in [0, 1]. It exists for the
// renderer's benefit; the simulation never reads it.
type Color struct {
	R, G, B float64
}

// Scale returns the color with each component multiplied by f and clamped
// to [0, 1]. Used by renderers to derive darker fills and brighter outlines.
func (c Color) Scale(f float64) Color {
	return Color{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// asteroidPalette holds the colors new asteroids are drawn from.
var asteroidPalette = []Color{
	{R: 1.0, G: 0.4, B: 0.0}, // Orange
	{R: 0.0, G: 0.8, B: 0.8}, // Cyan
	{R: 0.8, G: 0.0, B: 0.8}, // Magenta
	{R: 1.0, G: 1.0, B: 0.0}, // Yellow
	{R: 0.1, G: 1.0, B: 0.1}, // Green
}

// RandomColor picks a palette color for a newly spawned asteroid.
func RandomColor(rng *rand.Rand) Color {
	return asteroidPalette[rng.Intn(len(asteroidPalette))]
}
