package loop

import (
	"math"

	"github.com/mhrabos/nebuloids/internal/physics"
)

// integrate advances every live entity by delta seconds using explicit Euler.
// The ship and asteroids wrap at the play-area edges; bullets are removed
// instead once they leave the extended bounds or their lifetime runs out.
func (s *State) integrate(delta float64) {
	ship := s.Ship
	ship.Velocity = ship.Velocity.Scale(Friction)
	ship.Position = ship.Position.Add(ship.Velocity.Scale(delta))
	wrapPosition(&ship.Position)

	for _, a := range s.Asteroids {
		a.Position = a.Position.Add(a.Velocity.Scale(delta))
		a.Rotation += a.RotationSpeed * delta
		wrapPosition(&a.Position)
	}

	kept := s.Bullets[:0] // reuse backing array
	for _, b := range s.Bullets {
		b.Position = b.Position.Add(b.Velocity.Scale(delta))
		b.Lifetime -= delta

		if b.Lifetime <= 0 ||
			math.Abs(b.Position.X) > BulletBoundsMargin ||
			math.Abs(b.Position.Y) > BulletBoundsMargin {
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}

// wrapPosition teleports each axis that left the play area to the opposite
// edge. Axes wrap independently; this is a hard teleport, not a bounce.
func wrapPosition(p *physics.Vec2) {
	if p.X > WorldMax {
		p.X = WorldMin
	} else if p.X < WorldMin {
		p.X = WorldMax
	}
	if p.Y > WorldMax {
		p.Y = WorldMin
	} else if p.Y < WorldMin {
		p.Y = WorldMax
	}
}
