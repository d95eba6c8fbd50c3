package scene

import (
	"github.com/Versifine/spacee/internal/entity"
	"github.com/Versifine/spacee/internal/event"
	"github.com/Versifine/spacee/internal/physics"
)

type edge int

const (
	edgeTop edge = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// advanceSpawner spawns at most one enemy per tick once the timer reaches
// the current rate, then shortens the rate down to its floor.
func (s *Spacee) advanceSpawner(dt float64) {
	s.spawnTimer += dt
	if s.spawnTimer < s.spawnRate {
		return
	}
	s.spawnEnemy()
	s.spawnTimer = 0
	s.spawnRate = max(s.spawnRateFloor, s.spawnRate*s.spawnDecay)
}

// spawnPoint picks a uniform point on a random edge, outside the visible
// area by the spawn margin.
func (s *Spacee) spawnPoint() physics.Vec2 {
	w, h := s.Bounds()
	m := s.spawnMargin
	switch edge(s.rng.IntN(4)) {
	case edgeTop:
		return physics.Vec2{X: s.rng.Float64() * w, Y: -m}
	case edgeRight:
		return physics.Vec2{X: w + m, Y: s.rng.Float64() * h}
	case edgeBottom:
		return physics.Vec2{X: s.rng.Float64() * w, Y: h + m}
	default:
		return physics.Vec2{X: -m, Y: s.rng.Float64() * h}
	}
}

func (s *Spacee) spawnEnemy() *entity.Enemy {
	pos := s.spawnPoint()
	e, err := entity.NewEnemy(pos, s.tuning.Enemy, s.rng)
	if err != nil {
		// Tuning was validated in NewSpacee.
		s.log.Error("Enemy spawn failed", "error", err)
		return nil
	}
	s.Add(e)
	s.log.Debug("Enemy spawned", "x", pos.X, "y", pos.Y, "speed", e.Speed, "rate", s.spawnRate)
	s.bus.Publish(event.EventEnemySpawned, event.EnemySpawnedEvent{
		X:         pos.X,
		Y:         pos.Y,
		Speed:     e.Speed,
		SpawnRate: s.spawnRate,
	})
	return e
}
