package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhrabos/nebuloids/internal/input"
	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/physics"
)

func TestShipAsteroidCollisionEndsSession(t *testing.T) {
	s, _ := newTestState()
	addAsteroid(s, object.SizeLarge, physics.Vec2{X: 0.1})

	s.Step(input.Input{}, 0.01)
	require.True(t, s.GameOver)

	// Game over is terminal: the world freezes even under held input.
	pos := s.Asteroids[0].Position
	s.Step(input.Input{Thrust: true}, 0.1)
	assert.True(t, s.GameOver)
	assert.Equal(t, pos, s.Asteroids[0].Position)
	assert.Equal(t, physics.Vec2{}, s.Ship.Position)
}

func TestShipClearsDistantAsteroid(t *testing.T) {
	// The concrete non-collision case: large asteroid (r=0.15) at distance
	// 0.5 from the ship (r=0.04). distanceSq 0.25 exceeds (0.19)^2 = 0.0361.
	s, _ := newTestState()
	addAsteroid(s, object.SizeLarge, physics.Vec2{X: 0.5})

	s.Step(input.Input{}, 0.01)
	assert.False(t, s.GameOver)
}

func TestSmallAsteroidDestroyedOutright(t *testing.T) {
	s, arena := newTestState()
	pos := physics.Vec2{X: 0.4, Y: 0.4}
	addAsteroid(s, object.SizeSmall, pos)
	s.Bullets = append(s.Bullets, object.NewBullet(pos, physics.Vec2{}))
	require.Equal(t, 1, arena.Live())

	s.bulletAsteroidPass()

	assert.Empty(t, s.Asteroids)
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 0, arena.Live(), "destroyed asteroid must release its shape handle")
	assert.Equal(t, ScoreSmallAsteroid, s.Score)
}

func TestLargeAsteroidSplitsIntoTwoMedium(t *testing.T) {
	s, arena := newTestState()
	pos := physics.Vec2{X: -0.3, Y: 0.2}
	parent := addAsteroid(s, object.SizeLarge, pos)
	s.Bullets = append(s.Bullets, object.NewBullet(pos, physics.Vec2{}))

	s.bulletAsteroidPass()

	require.Len(t, s.Asteroids, 2)
	for _, child := range s.Asteroids {
		assert.Equal(t, object.SizeMedium, child.Size)
		assert.Equal(t, object.SizeMedium.Factor(), child.Scale)
		assert.Equal(t, object.SizeMedium.Factor(), child.Radius)
		assert.InDelta(t, pos.X, child.Position.X, parent.Scale*SplitOffsetSpread/2+1e-9)
		assert.InDelta(t, pos.Y, child.Position.Y, parent.Scale*SplitOffsetSpread/2+1e-9)
	}
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 2, arena.Live(), "parent shape released, two child shapes live")
	assert.Equal(t, ScoreLargeAsteroid, s.Score)
}

func TestMediumAsteroidSplitsIntoTwoSmall(t *testing.T) {
	s, _ := newTestState()
	pos := physics.Vec2{}
	addAsteroid(s, object.SizeMedium, pos)
	s.Bullets = append(s.Bullets, object.NewBullet(pos, physics.Vec2{}))

	s.bulletAsteroidPass()

	require.Len(t, s.Asteroids, 2)
	for _, child := range s.Asteroids {
		assert.Equal(t, object.SizeSmall, child.Size)
	}
}

func TestSplitDropsChildrenAtPopulationCap(t *testing.T) {
	s, arena := newTestState()
	// 19 bystanders far away plus the target: the field is exactly at cap,
	// so removing the parent leaves room for only one child.
	for i := 0; i < MaxAsteroids-1; i++ {
		addAsteroid(s, object.SizeSmall, physics.Vec2{X: -0.9, Y: -0.9})
	}
	pos := physics.Vec2{X: 0.5, Y: 0.5}
	addAsteroid(s, object.SizeLarge, pos)
	s.Bullets = append(s.Bullets, object.NewBullet(pos, physics.Vec2{}))

	s.bulletAsteroidPass()

	assert.Len(t, s.Asteroids, MaxAsteroids)
	mediums := 0
	for _, a := range s.Asteroids {
		if a.Size == object.SizeMedium {
			mediums++
		}
	}
	assert.Equal(t, 1, mediums)
	assert.Equal(t, MaxAsteroids, arena.Live())
}

func TestAsteroidAbsorbsOneBulletPerFrame(t *testing.T) {
	s, _ := newTestState()
	pos := physics.Vec2{X: 0.1, Y: 0.1}
	addAsteroid(s, object.SizeSmall, pos)
	first := object.NewBullet(pos, physics.Vec2{})
	second := object.NewBullet(pos, physics.Vec2{})
	s.Bullets = append(s.Bullets, first, second)

	s.bulletAsteroidPass()

	assert.Empty(t, s.Asteroids)
	// Only the first (lowest-index) overlapping bullet is consumed.
	require.Len(t, s.Bullets, 1)
	assert.Same(t, second, s.Bullets[0])
}

func TestSplitChildrenNotHitSameFrame(t *testing.T) {
	s, _ := newTestState()
	pos := physics.Vec2{X: 0.2, Y: 0.2}
	addAsteroid(s, object.SizeLarge, pos)
	for i := 0; i < 3; i++ {
		s.Bullets = append(s.Bullets, object.NewBullet(pos, physics.Vec2{}))
	}

	s.bulletAsteroidPass()

	// The parent absorbed one bullet; its children, appended behind the
	// reverse scan cursor, stay untouched until next frame even though the
	// remaining bullets overlap them.
	assert.Len(t, s.Asteroids, 2)
	assert.Len(t, s.Bullets, 2)
}

func TestReverseScanGivesBulletToLastAsteroid(t *testing.T) {
	s, _ := newTestState()
	pos := physics.Vec2{X: -0.4, Y: 0.1}
	first := addAsteroid(s, object.SizeSmall, pos)
	addAsteroid(s, object.SizeSmall, pos)
	s.Bullets = append(s.Bullets, object.NewBullet(pos, physics.Vec2{}))

	s.bulletAsteroidPass()

	// Both asteroids overlap the bullet, but the reverse scan reaches the
	// later-inserted one first and consumes the bullet there.
	require.Len(t, s.Asteroids, 1)
	assert.Same(t, first, s.Asteroids[0])
	assert.Empty(t, s.Bullets)
}

func TestCollisionPassesSkippedWhenOver(t *testing.T) {
	s, arena := newTestState()
	pos := physics.Vec2{X: 0.5, Y: 0.5}
	addAsteroid(s, object.SizeSmall, pos)
	s.Bullets = append(s.Bullets, object.NewBullet(pos, physics.Vec2{}))
	s.GameOver = true

	s.Step(input.Input{}, 0.01)

	assert.Len(t, s.Asteroids, 1)
	assert.Len(t, s.Bullets, 1)
	assert.Equal(t, 1, arena.Live())
}

func TestLethalFrameStillResolvesBullets(t *testing.T) {
	// The ship pass and the bullet pass are independent: a frame that kills
	// the ship still scores bullet hits registered the same frame.
	s, _ := newTestState()
	addAsteroid(s, object.SizeLarge, physics.Vec2{X: 0.05})
	far := physics.Vec2{X: -0.7, Y: -0.7}
	addAsteroid(s, object.SizeSmall, far)
	s.Bullets = append(s.Bullets, object.NewBullet(far, physics.Vec2{}))

	s.Step(input.Input{}, 0)

	assert.True(t, s.GameOver)
	assert.Equal(t, ScoreSmallAsteroid, s.Score)
}
