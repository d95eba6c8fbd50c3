package physics

const (
	// MaxFrameDelta caps a single simulation step in seconds.
	MaxFrameDelta = 0.033

	CollisionAxisTolerance = 1e-9

	ShipRadius      = 14.0
	ShipThrust      = 180.0 // px/s^2
	ShipFriction    = 0.98
	ShipShootRate   = 0.15 // seconds between shots
	ShipBulletSpeed = 400.0

	BulletRadius   = 3.0
	BulletLifetime = 2.0 // seconds

	EnemyRadius   = 16.0
	EnemySpeedMin = 60.0
	EnemySpeedMax = 100.0
	EnemyHealth   = 1

	SpawnMargin      = 20.0
	SpawnRateStart   = 2.0 // seconds between spawns
	SpawnRateFloor   = 0.8
	SpawnRateDecay   = 0.98
	KillReward       = 10
	CollisionPenalty = 5

	PlaceholderRadius = 10.0

	MinViewportWidth  = 300
	MinViewportHeight = 240
	DefaultWidth      = 800
	DefaultHeight     = 600
)
