// Package object defines the entity records the simulation operates on.
package object

import (
	"math"

	"github.com/mhrabos/nebuloids/internal/physics"
)

// Ship is the player-controlled vessel. Exactly one instance exists per
// session; it is never removed, a fatal collision sets the session's
// game-over flag instead.
type Ship struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Rotation float64 // Radians, wrapped to [0, 2π) after input is applied
	Scale    float64
	Radius   float64
}

// NewShip creates a ship at the world center, facing up.
func NewShip() *Ship {
	return &Ship{
		Scale:  SizeSmall.Factor(),
		Radius: SizeSmall.Factor(),
	}
}

// Facing returns the ship's facing unit vector. The ship model points up
// at rotation 0, so the trigonometric angle is offset by π/2.
func (s *Ship) Facing() physics.Vec2 {
	return physics.Heading(s.Rotation + math.Pi/2)
}
