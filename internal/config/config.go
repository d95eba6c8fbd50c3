package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Versifine/spacee/internal/entity"
	"github.com/Versifine/spacee/internal/logger"
	"github.com/Versifine/spacee/internal/physics"
	"github.com/Versifine/spacee/internal/scene"
)

const (
	FrontendAuto     = "auto"
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Frontend string        `yaml:"frontend"`
	Logging  LoggingConfig `yaml:"logging"`
	Game     GameConfig    `yaml:"game"`
	Loop     LoopConfig    `yaml:"loop"`
}

type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	Scale  float64 `yaml:"scale"` // 0 uses the monitor's device scale
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type GameConfig struct {
	Seed   uint64       `yaml:"seed"` // 0 picks a random seed
	Spawn  SpawnConfig  `yaml:"spawn"`
	Score  ScoreConfig  `yaml:"score"`
	Ship   ShipConfig   `yaml:"ship"`
	Bullet BulletConfig `yaml:"bullet"`
	Enemy  EnemyConfig  `yaml:"enemy"`
}

type SpawnConfig struct {
	Rate   float64 `yaml:"rate"`
	Floor  float64 `yaml:"floor"`
	Decay  float64 `yaml:"decay"`
	Margin float64 `yaml:"margin"`
}

type ScoreConfig struct {
	KillReward       int `yaml:"kill_reward"`
	CollisionPenalty int `yaml:"collision_penalty"`
}

type ShipConfig struct {
	Radius      float64 `yaml:"radius"`
	Thrust      float64 `yaml:"thrust"`
	Friction    float64 `yaml:"friction"`
	ShootRate   float64 `yaml:"shoot_rate"`
	BulletSpeed float64 `yaml:"bullet_speed"`
}

type BulletConfig struct {
	Radius   float64 `yaml:"radius"`
	Lifetime float64 `yaml:"lifetime"`
}

type EnemyConfig struct {
	Radius   float64 `yaml:"radius"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	Health   int     `yaml:"health"`
}

type LoopConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // seconds
	TickHz   int     `yaml:"tick_hz"`   // terminal and headless frame rate
}

// Default mirrors the built-in game constants. Load starts from it, so a
// file only needs the keys it overrides.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  physics.DefaultWidth,
			Height: physics.DefaultHeight,
			Title:  "Spacee",
		},
		Frontend: FrontendAuto,
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Game: GameConfig{
			Spawn: SpawnConfig{
				Rate:   physics.SpawnRateStart,
				Floor:  physics.SpawnRateFloor,
				Decay:  physics.SpawnRateDecay,
				Margin: physics.SpawnMargin,
			},
			Score: ScoreConfig{
				KillReward:       physics.KillReward,
				CollisionPenalty: physics.CollisionPenalty,
			},
			Ship: ShipConfig{
				Radius:      physics.ShipRadius,
				Thrust:      physics.ShipThrust,
				Friction:    physics.ShipFriction,
				ShootRate:   physics.ShipShootRate,
				BulletSpeed: physics.ShipBulletSpeed,
			},
			Bullet: BulletConfig{
				Radius:   physics.BulletRadius,
				Lifetime: physics.BulletLifetime,
			},
			Enemy: EnemyConfig{
				Radius:   physics.EnemyRadius,
				SpeedMin: physics.EnemySpeedMin,
				SpeedMax: physics.EnemySpeedMax,
				Health:   physics.EnemyHealth,
			},
		},
		Loop: LoopConfig{
			MaxDelta: physics.MaxFrameDelta,
			TickHz:   60,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Frontend {
	case FrontendAuto, FrontendTerminal, FrontendWindow, FrontendHeadless:
	default:
		errs = append(errs, fmt.Errorf("%w: frontend %q", ErrInvalid, c.Frontend))
	}
	if !logger.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level))
	}
	if c.Window.Width < physics.MinViewportWidth || c.Window.Height < physics.MinViewportHeight {
		errs = append(errs, fmt.Errorf("%w: window %dx%d below minimum %dx%d", ErrInvalid,
			c.Window.Width, c.Window.Height, physics.MinViewportWidth, physics.MinViewportHeight))
	}
	if c.Window.Scale < 0 {
		errs = append(errs, fmt.Errorf("%w: window.scale %v", ErrInvalid, c.Window.Scale))
	}
	if !(c.Loop.MaxDelta > 0) {
		errs = append(errs, fmt.Errorf("%w: loop.max_delta %v", ErrInvalid, c.Loop.MaxDelta))
	}
	if c.Loop.TickHz <= 0 {
		errs = append(errs, fmt.Errorf("%w: loop.tick_hz %d", ErrInvalid, c.Loop.TickHz))
	}
	if err := c.SceneConfig().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Tuning() entity.Tuning {
	g := c.Game
	return entity.Tuning{
		Ship: entity.ShipTuning{
			Radius:      g.Ship.Radius,
			Thrust:      g.Ship.Thrust,
			Friction:    g.Ship.Friction,
			ShootRate:   g.Ship.ShootRate,
			BulletSpeed: g.Ship.BulletSpeed,
		},
		Bullet: entity.BulletTuning{
			Radius:   g.Bullet.Radius,
			Lifetime: g.Bullet.Lifetime,
		},
		Enemy: entity.EnemyTuning{
			Radius:   g.Enemy.Radius,
			SpeedMin: g.Enemy.SpeedMin,
			SpeedMax: g.Enemy.SpeedMax,
			Health:   g.Enemy.Health,
		},
	}
}

// SceneConfig converts the game section. Callers fill in Bus and Logger.
func (c Config) SceneConfig() scene.Config {
	g := c.Game
	sc := scene.Config{
		Width:            c.Window.Width,
		Height:           c.Window.Height,
		Tuning:           c.Tuning(),
		SpawnRate:        g.Spawn.Rate,
		SpawnRateFloor:   g.Spawn.Floor,
		SpawnDecay:       g.Spawn.Decay,
		SpawnMargin:      g.Spawn.Margin,
		KillReward:       g.Score.KillReward,
		CollisionPenalty: g.Score.CollisionPenalty,
	}
	if g.Seed != 0 {
		sc.Rand = rand.New(rand.NewPCG(g.Seed, g.Seed^0x9e3779b97f4a7c15))
	}
	return sc
}

func (c Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		File:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
	}
}
