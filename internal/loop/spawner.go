package loop

import (
	"math"

	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/physics"
)

// updateSpawner runs the timed asteroid spawner. Each spawn event tightens
// the cadence by SpawnRateStep down to the MinSpawnRate floor; the ramp is
// event-driven, not time-driven. While the population is at the cap the
// timer stays expired and the next spawn fires as soon as room opens up.
func (s *State) updateSpawner(delta float64) {
	s.SpawnTimer -= delta
	if s.SpawnTimer <= 0 && len(s.Asteroids) < MaxAsteroids {
		s.spawnEdgeAsteroid(object.SizeLarge)
		s.SpawnInterval = math.Max(MinSpawnRate, s.SpawnInterval-SpawnRateStep)
		s.SpawnTimer = s.SpawnInterval
	}
}

// newAsteroid builds an asteroid of the given size with its size-derived
// scale/radius, a random spin and color, and a freshly acquired shape handle.
// Position and velocity are set by the caller.
func (s *State) newAsteroid(size object.SizeClass) *object.Asteroid {
	return &object.Asteroid{
		Size:          size,
		Scale:         size.Factor(),
		Radius:        size.Factor(),
		RotationSpeed: AsteroidMinSpin + s.rng.Float64()*(AsteroidMaxSpin-AsteroidMinSpin),
		Color:         object.RandomColor(s.rng),
		Shape:         s.shapes.Acquire(),
	}
}

// spawnEdgeAsteroid places a fresh asteroid just outside a random screen
// edge, aimed roughly at the world center. A spawn that would exceed the
// population cap is silently dropped. Reports whether the asteroid was added.
func (s *State) spawnEdgeAsteroid(size object.SizeClass) bool {
	if len(s.Asteroids) >= MaxAsteroids {
		return false
	}

	a := s.newAsteroid(size)

	along := s.rng.Float64()*2 - 1
	switch s.rng.Intn(4) {
	case 0: // Top
		a.Position = physics.Vec2{X: along, Y: EdgeSpawnDistance}
	case 1: // Bottom
		a.Position = physics.Vec2{X: along, Y: -EdgeSpawnDistance}
	case 2: // Left
		a.Position = physics.Vec2{X: -EdgeSpawnDistance, Y: along}
	case 3: // Right
		a.Position = physics.Vec2{X: EdgeSpawnDistance, Y: along}
	}

	// Aim at the center, scatter each axis a little, then renormalize.
	dir := physics.Vec2{}.Sub(a.Position).Normalize()
	dir.X += (s.rng.Float64() - 0.5) * EdgeSpawnScatter
	dir.Y += (s.rng.Float64() - 0.5) * EdgeSpawnScatter
	dir = dir.Normalize()

	speed := EdgeSpawnMinSpeed + s.rng.Float64()*(EdgeSpawnMaxSpeed-EdgeSpawnMinSpeed)
	a.Velocity = dir.Scale(speed)

	s.Asteroids = append(s.Asteroids, a)
	return true
}

// spawnSplitAsteroid places a split child near the parent's last position
// with a fully random heading. A spawn that would exceed the population cap
// is silently dropped. Reports whether the asteroid was added.
func (s *State) spawnSplitAsteroid(parentPos physics.Vec2, parentScale float64, size object.SizeClass) bool {
	if len(s.Asteroids) >= MaxAsteroids {
		return false
	}

	a := s.newAsteroid(size)

	a.Position = parentPos.Add(physics.Vec2{
		X: (s.rng.Float64() - 0.5) * parentScale * SplitOffsetSpread,
		Y: (s.rng.Float64() - 0.5) * parentScale * SplitOffsetSpread,
	})

	angle := s.rng.Float64() * 2 * math.Pi
	speed := SplitMinSpeed + s.rng.Float64()*(SplitMaxSpeed-SplitMinSpeed)
	a.Velocity = physics.Heading(angle).Scale(speed)

	s.Asteroids = append(s.Asteroids, a)
	return true
}
