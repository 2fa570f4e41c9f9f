package object

import "github.com/mhrabos/nebuloids/internal/physics"

// BulletRadius is the fixed collision radius (and render scale) of a bullet.
const BulletRadius = 0.01

// BulletLifetime is how long a bullet lasts before disappearing, in seconds.
const BulletLifetime = 1.0

// Bullet is a projectile fired by the ship. It inherits the ship's momentum
// at spawn and is removed when its lifetime expires, when it leaves the
// extended world bounds, or when it hits an asteroid.
type Bullet struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Lifetime float64 // Seconds remaining
}

// NewBullet creates a bullet at pos with the given velocity and a full lifetime.
func NewBullet(pos, vel physics.Vec2) *Bullet {
	return &Bullet{
		Position: pos,
		Velocity: vel,
		Lifetime: BulletLifetime,
	}
}
