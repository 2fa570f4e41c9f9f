package loop

import (
	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/physics"
	"github.com/mhrabos/nebuloids/internal/shape"
)

// ShipPose is the ship's renderable state.
type ShipPose struct {
	Position physics.Vec2
	Rotation float64
	Scale    float64
}

// AsteroidPose is one asteroid's renderable state.
type AsteroidPose struct {
	Position physics.Vec2
	Rotation float64
	Scale    float64
	Size     object.SizeClass
	Color    object.Color
	Shape    shape.Handle
}

// Frame is the read-only entity snapshot handed to the renderer once per
// frame. Slices are reused across frames by Snapshot; a renderer must not
// retain them past the Render call.
type Frame struct {
	Ship      ShipPose
	Thrusting bool
	GameOver  bool
	Score     int
	Asteroids []AsteroidPose
	Bullets   []physics.Vec2
}

// Snapshot fills f with the current entity states, reusing its slices.
func (s *State) Snapshot(f *Frame) {
	f.Ship = ShipPose{
		Position: s.Ship.Position,
		Rotation: s.Ship.Rotation,
		Scale:    s.Ship.Scale,
	}
	f.Thrusting = s.Thrusting
	f.GameOver = s.GameOver
	f.Score = s.Score

	f.Asteroids = f.Asteroids[:0]
	for _, a := range s.Asteroids {
		f.Asteroids = append(f.Asteroids, AsteroidPose{
			Position: a.Position,
			Rotation: a.Rotation,
			Scale:    a.Scale,
			Size:     a.Size,
			Color:    a.Color,
			Shape:    a.Shape,
		})
	}

	f.Bullets = f.Bullets[:0]
	for _, b := range s.Bullets {
		f.Bullets = append(f.Bullets, b.Position)
	}
}
