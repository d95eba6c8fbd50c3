package scene

import (
	"github.com/Versifine/spacee/internal/entity"
	"github.com/Versifine/spacee/internal/event"
	"github.com/Versifine/spacee/internal/physics"
)

// resolveCollisions scans bullet/enemy pairs and enemy/player pairs. An
// entity marked dead earlier in the scan takes part in no further pairs, so
// one bullet scores at most one kill and one enemy is scored at most once.
func (s *Spacee) resolveCollisions() {
	var bullets []*entity.Bullet
	var enemies []*entity.Enemy
	for _, e := range s.entities {
		if !e.Alive() {
			continue
		}
		switch v := e.(type) {
		case *entity.Bullet:
			bullets = append(bullets, v)
		case *entity.Enemy:
			enemies = append(enemies, v)
		}
	}

	for _, b := range bullets {
		for _, en := range enemies {
			if !en.Alive() {
				continue
			}
			if !physics.Overlaps(b.Circle(), en.Circle()) {
				continue
			}
			b.Kill()
			en.Hit()
			s.score += s.killReward
			s.bus.Publish(event.EventEnemyDestroyed, event.EnemyDestroyedEvent{
				X:     en.Position.X,
				Y:     en.Position.Y,
				Score: s.score,
			})
			break
		}
	}

	player := s.Player()
	if player == nil {
		return
	}
	for _, en := range enemies {
		if !en.Alive() {
			continue
		}
		if !physics.Overlaps(player.Circle(), en.Circle()) {
			continue
		}
		en.Hit()
		s.score = max(0, s.score-s.collisionPenalty)
		s.log.Debug("Player hit", "score", s.score)
		s.bus.Publish(event.EventPlayerHit, event.PlayerHitEvent{
			Penalty: s.collisionPenalty,
			Score:   s.score,
		})
	}
}
