package object

import (
	"github.com/mhrabos/nebuloids/internal/physics"
	"github.com/mhrabos/nebuloids/internal/shape"
)

// SizeClass is the size category of an asteroid. The set is closed and
// ordered: asteroids only ever shrink.
type SizeClass int

const (
	SizeSmall  SizeClass = 1
	SizeMedium SizeClass = 2
	SizeLarge  SizeClass = 3
)

// sizeFactors maps each size class to its scale/radius factor.
// Scale and radius share the same factor on both axes.
var sizeFactors = map[SizeClass]float64{
	SizeSmall:  0.04,
	SizeMedium: 0.08,
	SizeLarge:  0.15,
}

// Factor returns the scale/radius factor for the size class.
func (s SizeClass) Factor() float64 {
	return sizeFactors[s]
}

// Smaller returns the next size class down. Only valid for sizes above
// SizeSmall; small asteroids are destroyed, never split.
func (s SizeClass) Smaller() SizeClass {
	return s - 1
}

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Asteroid is a drifting space rock. Its scale and radius are fixed
// functions of the size class, and its shape handle is owned exclusively
// by this asteroid from spawn until removal.
type Asteroid struct {
	Position      physics.Vec2
	Velocity      physics.Vec2
	Rotation      float64 // Radians, free-running (never wrapped, cosmetic only)
	RotationSpeed float64 // Radians/sec, constant for the asteroid's lifetime
	Size          SizeClass
	Scale         float64
	Radius        float64
	Color         Color
	Shape         shape.Handle
}
