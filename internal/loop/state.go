package loop

import (
	"math"
	"math/rand"

	"github.com/mhrabos/nebuloids/internal/input"
	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/shape"
)

// State holds all session state: the ship, the asteroid and bullet
// collections, timers, and the terminal game-over flag. Every subsystem pass
// operates on one State, so sessions can be created, reset, and torn down
// independently.
type State struct {
	Ship      *object.Ship
	Asteroids []*object.Asteroid
	Bullets   []*object.Bullet

	FireCooldown  float64 // Seconds until the next shot is allowed
	SpawnTimer    float64 // Seconds until the next automatic spawn
	SpawnInterval float64 // Current spawn cadence; decays per spawn event
	GameOver      bool    // Terminal; no state exits game over within a session
	Thrusting     bool    // Raised for the renderer while the thrust intent is held
	Score         int

	shapes shape.Store
	rng    *rand.Rand
}

// NewState creates a fresh session. Shape handles for spawned asteroids are
// acquired from shapes; all randomness is drawn from rng.
func NewState(shapes shape.Store, rng *rand.Rand) *State {
	return &State{
		Ship:          object.NewShip(),
		SpawnInterval: InitialSpawnRate,
		shapes:        shapes,
		rng:           rng,
	}
}

// Close releases the shape handle of every still-live asteroid and empties
// the collections. The session must not be stepped afterwards.
func (s *State) Close() {
	for _, a := range s.Asteroids {
		s.shapes.Release(a.Shape)
		a.Shape = shape.None
	}
	s.Asteroids = s.Asteroids[:0]
	s.Bullets = s.Bullets[:0]
}

// Step advances the session by one frame: cooldowns, input, spawning,
// physics, collisions. Delta is the frame's elapsed time in seconds.
func (s *State) Step(inp input.Input, delta float64) {
	// The cooldown runs down even once the session is over; it has no
	// observable effect then, but keeps restart timing consistent.
	s.FireCooldown -= delta

	s.applyInput(inp, delta)

	if s.GameOver {
		return
	}

	s.updateSpawner(delta)
	s.integrate(delta)
	s.shipAsteroidPass()
	s.bulletAsteroidPass()
}

// applyInput turns the frame's intents into ship rotation, thrust, and
// bullet spawns.
func (s *State) applyInput(inp input.Input, delta float64) {
	ship := s.Ship

	if inp.Left {
		ship.Rotation += RotationSpeed * delta
	}
	if inp.Right {
		ship.Rotation -= RotationSpeed * delta
	}
	ship.Rotation = math.Mod(ship.Rotation, 2*math.Pi)
	if ship.Rotation < 0 {
		ship.Rotation += 2 * math.Pi
	}

	facing := ship.Facing()

	s.Thrusting = false
	if inp.Thrust {
		s.Thrusting = true
		ship.Velocity = ship.Velocity.Add(facing.Scale(ThrustSpeed * delta))
	}

	if inp.Fire && s.FireCooldown <= 0 {
		nose := ship.Position.Add(facing.Scale(ship.Radius * BulletNoseOffset))
		vel := facing.Scale(BulletSpeed).Add(ship.Velocity)
		s.Bullets = append(s.Bullets, object.NewBullet(nose, vel))
		s.FireCooldown = FireRate
	}
}

func scoreFor(size object.SizeClass) int {
	switch size {
	case object.SizeLarge:
		return ScoreLargeAsteroid
	case object.SizeMedium:
		return ScoreMediumAsteroid
	case object.SizeSmall:
		return ScoreSmallAsteroid
	default:
		return 0
	}
}
