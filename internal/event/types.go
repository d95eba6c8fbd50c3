package event

const (
	EventEnemySpawned   = "enemy.spawned"
	EventEnemyDestroyed = "enemy.destroyed"
	EventPlayerHit      = "player.hit"
	EventLoopState      = "loop.state"
)

type EnemySpawnedEvent struct {
	X         float64
	Y         float64
	Speed     float64
	SpawnRate float64
}

type EnemyDestroyedEvent struct {
	X     float64
	Y     float64
	Score int
}

type PlayerHitEvent struct {
	Penalty int
	Score   int
}

type LoopStateEvent struct {
	Running bool
}
