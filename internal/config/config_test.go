package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Versifine/spacee/internal/entity"
	"github.com/Versifine/spacee/internal/physics"
)

// TestLoad 使用表驱动测试覆盖配置加载的核心场景
func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:       "正常加载有效YAML",
			createFile: true,
			content: `window:
  width: 1024
  height: 768
  title: "Spacee test"
frontend: "terminal"
logging:
  level: "debug"
  file: "spacee.log"
game:
  seed: 42
  spawn:
    rate: 1.5
  enemy:
    speed_max: 120
loop:
  tick_hz: 30
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *Config, err error) {
				if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
					t.Errorf("Window = %dx%d, 期望 1024x768", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Window.Title != "Spacee test" {
					t.Errorf("Window.Title = %q, 期望 %q", cfg.Window.Title, "Spacee test")
				}
				if cfg.Frontend != FrontendTerminal {
					t.Errorf("Frontend = %q, 期望 %q", cfg.Frontend, FrontendTerminal)
				}
				if cfg.Logging.Level != "debug" {
					t.Errorf("Logging.Level = %q, 期望 %q", cfg.Logging.Level, "debug")
				}
				if cfg.Logging.File != "spacee.log" {
					t.Errorf("Logging.File = %q, 期望 %q", cfg.Logging.File, "spacee.log")
				}
				if cfg.Logging.Format != "console" {
					t.Errorf("未指定的 Logging.Format 应保留默认值, 实际 %q", cfg.Logging.Format)
				}
				if cfg.Game.Seed != 42 {
					t.Errorf("Game.Seed = %d, 期望 42", cfg.Game.Seed)
				}
				if cfg.Game.Spawn.Rate != 1.5 {
					t.Errorf("Game.Spawn.Rate = %v, 期望 1.5", cfg.Game.Spawn.Rate)
				}
				if cfg.Game.Spawn.Decay != physics.SpawnRateDecay {
					t.Errorf("Game.Spawn.Decay = %v, 期望默认值 %v", cfg.Game.Spawn.Decay, physics.SpawnRateDecay)
				}
				if cfg.Game.Enemy.SpeedMax != 120 || cfg.Game.Enemy.SpeedMin != physics.EnemySpeedMin {
					t.Errorf("Game.Enemy = %+v", cfg.Game.Enemy)
				}
				if cfg.Loop.TickHz != 30 {
					t.Errorf("Loop.TickHz = %d, 期望 30", cfg.Loop.TickHz)
				}
			},
		},
		{
			name:       "文件不存在",
			createFile: false,
			wantErr:    true,
			validate: func(t *testing.T, cfg *Config, err error) {
				if !os.IsNotExist(err) {
					t.Errorf("期望文件不存在错误，实际: %v", err)
				}
			},
		},
		{
			name:       "YAML格式错误",
			createFile: true,
			content: `window:
  width: [1024
  height: 768
`,
			wantErr: true,
			validate: func(t *testing.T, cfg *Config, err error) {
				if err == nil || !strings.Contains(err.Error(), "yaml") {
					t.Errorf("期望返回YAML解析错误，实际: %v", err)
				}
			},
		},
		{
			name:       "空文件",
			createFile: true,
			content:    "",
			wantErr:    false,
			validate: func(t *testing.T, cfg *Config, err error) {
				// 空文件得到默认配置。
				if cfg.Window.Width != physics.DefaultWidth || cfg.Window.Height != physics.DefaultHeight {
					t.Errorf("Window 应为默认值，实际 %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Frontend != FrontendAuto {
					t.Errorf("Frontend 应为 %q，实际 %q", FrontendAuto, cfg.Frontend)
				}
				if cfg.Loop.MaxDelta != physics.MaxFrameDelta {
					t.Errorf("Loop.MaxDelta 应为 %v，实际 %v", physics.MaxFrameDelta, cfg.Loop.MaxDelta)
				}
			},
		},
		{
			name:       "非法取值",
			createFile: true,
			content: `frontend: "vr"
window:
  width: 100
game:
  spawn:
    decay: 1.5
`,
			wantErr: true,
			validate: func(t *testing.T, cfg *Config, err error) {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("期望 ErrInvalid，实际: %v", err)
				}
				for _, want := range []string{"frontend", "window", "decay"} {
					if !strings.Contains(err.Error(), want) {
						t.Errorf("错误信息应包含 %q，实际: %v", want, err)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "config.yaml")

			if tt.createFile {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("创建测试配置文件失败: %v", err)
				}
			}

			cfg, err := Load(configPath)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err == nil && cfg == nil {
				t.Fatalf("Load() 返回了 nil 配置")
			}

			if tt.validate != nil {
				tt.validate(t, cfg, err)
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestTuningMatchesBuiltins(t *testing.T) {
	if got, want := Default().Tuning(), entity.DefaultTuning(); got != want {
		t.Errorf("Tuning() = %+v, 期望 %+v", got, want)
	}
}

func TestSceneConfigSeed(t *testing.T) {
	cfg := Default()
	if cfg.SceneConfig().Rand != nil {
		t.Error("seed 0 不应创建固定随机源")
	}

	cfg.Game.Seed = 7
	a, b := cfg.SceneConfig().Rand, cfg.SceneConfig().Rand
	if a == nil || b == nil {
		t.Fatal("seed 非 0 应创建随机源")
	}
	for i := 0; i < 10; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("相同 seed 的序列不同: %d != %d", x, y)
		}
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.File = "out.log"
	lc := cfg.LoggerConfig()
	if lc.File != "out.log" || lc.MaxSizeMB != 10 || lc.MaxBackups != 3 || lc.Level != "info" {
		t.Errorf("LoggerConfig() = %+v", lc)
	}
}
