package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/term"

	"github.com/Versifine/spacee/internal/config"
	"github.com/Versifine/spacee/internal/event"
	"github.com/Versifine/spacee/internal/frontend"
	"github.com/Versifine/spacee/internal/frontend/headless"
	"github.com/Versifine/spacee/internal/frontend/terminal"
	"github.com/Versifine/spacee/internal/frontend/window"
	"github.com/Versifine/spacee/internal/logger"
	"github.com/Versifine/spacee/internal/scene"
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		slog.Error("Failed to load config", "path", *configFlag, "error", err)
		os.Exit(1)
	}
	if levelFlag.value != "" {
		cfg.Logging.Level = levelFlag.value
	}
	if *frontendFlag != "" {
		cfg.Frontend = *frontendFlag
		if err := cfg.Validate(); err != nil {
			slog.Error("Invalid flags", "error", err)
			os.Exit(2)
		}
	}
	kind := resolveFrontend(cfg.Frontend)

	logCfg := cfg.LoggerConfig()
	if kind == config.FrontendTerminal && logCfg.File == "" {
		// The terminal frontend draws on stdout.
		logCfg.Output = io.Discard
	}
	logger.Init(logCfg)
	defer logger.Close()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := event.NewBus()
	watchEvents(bus, log)

	sc := cfg.SceneConfig()
	sc.Bus = bus
	sc.Logger = log
	game, err := scene.NewSpacee(sc)
	if err != nil {
		log.Error("Failed to create scene", "error", err)
		os.Exit(1)
	}

	params := frontend.Params{
		Sim:      game,
		Bus:      bus,
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Scale:    cfg.Window.Scale,
		MaxDelta: cfg.Loop.MaxDelta,
		TickHz:   cfg.Loop.TickHz,
		Frames:   *framesFlag,
		Logger:   log,
	}
	log.Info("Starting spacee", "frontend", kind, "seed", cfg.Game.Seed)

	switch kind {
	case config.FrontendTerminal:
		err = terminal.RunScreen(ctx, params)
	case config.FrontendWindow:
		err = window.Run(ctx, params)
	default:
		err = headless.Run(ctx, params, nil)
	}
	if err != nil {
		log.Error("Game stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("Game over", "score", game.Score())
}

// loadConfig falls back to the built-in defaults when the default config
// path does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !flagWasSet("config") {
		d := config.Default()
		return &d, nil
	}
	return cfg, err
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// resolveFrontend picks a concrete frontend for "auto": a window when a
// display is available, the terminal when attached to one, headless
// otherwise.
func resolveFrontend(kind string) string {
	if kind != config.FrontendAuto {
		return kind
	}
	if hasDisplay() {
		return config.FrontendWindow
	}
	if term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())) {
		return config.FrontendTerminal
	}
	return config.FrontendHeadless
}

func hasDisplay() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func watchEvents(bus *event.Bus, log *slog.Logger) {
	bus.Subscribe(event.EventEnemyDestroyed, func(raw any) {
		if ev, ok := raw.(event.EnemyDestroyedEvent); ok {
			log.Debug("Enemy destroyed", "x", ev.X, "y", ev.Y, "score", ev.Score)
		}
	})
	bus.Subscribe(event.EventPlayerHit, func(raw any) {
		if ev, ok := raw.(event.PlayerHitEvent); ok {
			log.Info("Ship collided", "penalty", ev.Penalty, "score", ev.Score)
		}
	})
	bus.Subscribe(event.EventLoopState, func(raw any) {
		if ev, ok := raw.(event.LoopStateEvent); ok {
			log.Info("Loop state changed", "running", ev.Running)
		}
	})
}
