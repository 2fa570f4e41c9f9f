package loop

// Gameplay constants. All tunable simulation parameters are centralized here.

// World bounds. Positions live in the [-1,1]×[-1,1] toroidal play area.
const (
	WorldMin = -1.0
	WorldMax = 1.0
)

// Ship physics
const (
	ThrustSpeed   = 1.0   // Acceleration along the facing vector, units/sec²
	RotationSpeed = 2.0   // Radians per second
	Friction      = 0.995 // Velocity multiplier, applied once per frame (not per second)
)

// Bullets
const (
	BulletSpeed        = 2.5 // Units per second, on top of inherited ship velocity
	FireRate           = 0.2 // Minimum seconds between shots
	BulletBoundsMargin = 1.5 // A bullet with |x| or |y| beyond this is removed
	BulletNoseOffset   = 1.5 // Bullet spawn distance ahead of the ship, in ship radii
)

// Spawning
const (
	InitialSpawnRate = 5.0 // Seconds between automatic spawns at session start
	MinSpawnRate     = 1.0 // Floor for the spawn interval
	SpawnRateStep    = 0.1 // Interval decrease per spawn event
	MaxAsteroids     = 20  // Hard population cap

	EdgeSpawnDistance = 1.1 // |coordinate| of the spawn edge, just outside the play area
	EdgeSpawnScatter  = 0.2 // Per-axis aim scatter applied before normalization
	EdgeSpawnMinSpeed = 0.1
	EdgeSpawnMaxSpeed = 0.3

	SplitMinSpeed     = 0.3
	SplitMaxSpeed     = 0.7
	SplitOffsetSpread = 0.5 // Child offset per axis: ±parentScale·spread/2

	AsteroidMinSpin = 0.3 // Rotation speed range, radians/sec
	AsteroidMaxSpin = 0.8
)

// Scoring
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)
