package loop

import (
	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/physics"
	"github.com/mhrabos/nebuloids/internal/shape"
)

// shipAsteroidPass is the lethal pass: the first asteroid overlapping the
// ship ends the session. Insertion order decides which asteroid is checked
// first, though the outcome is the same either way.
func (s *State) shipAsteroidPass() {
	for _, a := range s.Asteroids {
		if physics.CirclesOverlap(s.Ship.Position, s.Ship.Radius, a.Position, a.Radius) {
			s.GameOver = true
			return
		}
	}
}

// bulletAsteroidPass is the scoring pass. Asteroids are scanned in reverse
// insertion order so that removing index i never shifts the entries still to
// be visited; split children are appended at the tail, behind the scan
// cursor, and become eligible only next frame. Each asteroid absorbs at most
// one bullet per frame: the first (lowest-index) overlapping bullet wins.
func (s *State) bulletAsteroidPass() {
	for i := len(s.Asteroids) - 1; i >= 0; i-- {
		a := s.Asteroids[i]

		hit := false
		for j, b := range s.Bullets {
			if physics.CirclesOverlap(a.Position, a.Radius, b.Position, object.BulletRadius) {
				s.Bullets = append(s.Bullets[:j], s.Bullets[j+1:]...)
				hit = true
				break
			}
		}
		if !hit {
			continue
		}

		s.shapes.Release(a.Shape)
		a.Shape = shape.None
		s.Asteroids = append(s.Asteroids[:i], s.Asteroids[i+1:]...)

		if a.Size != object.SizeSmall {
			s.splitAsteroid(a)
		}
		s.Score += scoreFor(a.Size)
	}
}

// splitAsteroid spawns up to two children one size class smaller at the
// parent's last position. The parent must already be removed and its shape
// handle released. Children that would exceed the population cap are dropped.
func (s *State) splitAsteroid(parent *object.Asteroid) {
	next := parent.Size.Smaller()
	for i := 0; i < 2; i++ {
		s.spawnSplitAsteroid(parent.Position, parent.Scale, next)
	}
}
