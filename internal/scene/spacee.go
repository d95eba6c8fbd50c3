package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/dustin/go-humanize"

	"github.com/Versifine/spacee/internal/entity"
	"github.com/Versifine/spacee/internal/event"
	"github.com/Versifine/spacee/internal/input"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/render"
)

var ErrInvalidSpawn = errors.New("scene: invalid spawn parameters")

const controlsHint = "WASD to move • Left click to shoot • P to pause"

type Config struct {
	Width  int
	Height int
	Tuning entity.Tuning

	SpawnRate      float64 // initial seconds between enemy spawns
	SpawnRateFloor float64
	SpawnDecay     float64 // multiplier applied to the rate after each spawn
	SpawnMargin    float64

	KillReward       int
	CollisionPenalty int

	// Rand drives spawn positions and enemy speeds. Nil uses the global source.
	Rand *rand.Rand
	// Bus, when set, receives spawn, kill and hit events.
	Bus    *event.Bus
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Width:            physics.DefaultWidth,
		Height:           physics.DefaultHeight,
		Tuning:           entity.DefaultTuning(),
		SpawnRate:        physics.SpawnRateStart,
		SpawnRateFloor:   physics.SpawnRateFloor,
		SpawnDecay:       physics.SpawnRateDecay,
		SpawnMargin:      physics.SpawnMargin,
		KillReward:       physics.KillReward,
		CollisionPenalty: physics.CollisionPenalty,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !(c.SpawnRate > 0) || !(c.SpawnRateFloor > 0) {
		return fmt.Errorf("%w: rate %v and floor %v must be > 0", ErrInvalidSpawn, c.SpawnRate, c.SpawnRateFloor)
	}
	if !(c.SpawnDecay > 0 && c.SpawnDecay < 1) {
		return fmt.Errorf("%w: decay must be in (0,1), got %v", ErrInvalidSpawn, c.SpawnDecay)
	}
	if c.SpawnMargin < 0 {
		return fmt.Errorf("%w: margin must be >= 0, got %v", ErrInvalidSpawn, c.SpawnMargin)
	}
	if c.KillReward < 0 || c.CollisionPenalty < 0 {
		return fmt.Errorf("%w: reward and penalty must be >= 0", ErrInvalidSpawn)
	}
	return c.Tuning.Validate()
}

// Spacee is the arcade scene: one player ship in the middle, enemies
// spawning from the edges at an increasing rate, bullets scoring kills.
type Spacee struct {
	*Scene

	player *entity.Ship
	score  int

	spawnTimer     float64
	spawnRate      float64
	spawnRateFloor float64
	spawnDecay     float64
	spawnMargin    float64

	killReward       int
	collisionPenalty int

	tuning entity.Tuning
	rng    *rand.Rand
	bus    *event.Bus
	log    *slog.Logger
}

func NewSpacee(cfg Config) (*Spacee, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Spacee{
		Scene:            base,
		spawnRate:        cfg.SpawnRate,
		spawnRateFloor:   cfg.SpawnRateFloor,
		spawnDecay:       cfg.SpawnDecay,
		spawnMargin:      cfg.SpawnMargin,
		killReward:       cfg.KillReward,
		collisionPenalty: cfg.CollisionPenalty,
		tuning:           cfg.Tuning,
		rng:              rng,
		bus:              cfg.Bus,
		log:              logger.With("component", "scene"),
	}

	center := physics.Vec2{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2}
	ship, err := entity.NewShip(center, cfg.Tuning.Ship, cfg.Tuning.Bullet)
	if err != nil {
		return nil, fmt.Errorf("create player ship: %w", err)
	}
	s.player = ship
	s.Add(ship)
	return s, nil
}

// Player returns the player ship while it is alive and still owned by the
// scene, nil otherwise.
func (s *Spacee) Player() *entity.Ship {
	if s.player == nil || !s.player.Alive() {
		return nil
	}
	return s.player
}

func (s *Spacee) Remove(e entity.Entity) {
	if ship, ok := e.(*entity.Ship); ok && ship == s.player {
		s.player = nil
	}
	s.Scene.Remove(e)
}

func (s *Spacee) Score() int {
	return s.score
}

func (s *Spacee) SpawnRate() float64 {
	return s.spawnRate
}

func (s *Spacee) SpawnTimer() float64 {
	return s.spawnTimer
}

// Update runs one tick: entity updates, cull, spawning, collisions and a
// final cull so nothing that died this tick survives it.
func (s *Spacee) Update(dt float64, in *input.State) error {
	if err := s.Step(dt, in, s); err != nil {
		return err
	}
	s.dropDeadPlayer()

	s.advanceSpawner(dt)
	s.resolveCollisions()

	s.Cull()
	s.dropDeadPlayer()
	return nil
}

func (s *Spacee) dropDeadPlayer() {
	if s.player != nil && !s.player.Alive() {
		s.player = nil
	}
}

func (s *Spacee) Draw(surface render.Surface) {
	s.Scene.Draw(surface)
	surface.Text("Score: "+humanize.Comma(int64(s.score)), 12, 24, 16, render.HUDText)
	surface.Text(controlsHint, 12, 46, 12, render.HUDHint)
}
