package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/ground"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/Carmen-Shannon/oxy-fps/engine/stamina"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"github.com/Carmen-Shannon/oxy-fps/logger"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "oxy-fps: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// ── Configuration + Logging ─────────────────────────────────────────
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	shared := settings.NewShared()

	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("oxy-fps"),
		window.WithWidth(1280),
		window.WithHeight(720),
		window.WithLogger(logger.Named(log, "window")),
	)
	defer func() { _ = win.Close() }()

	// ── World ───────────────────────────────────────────────────────────
	// A flat floor with a raised platform on layer 1.
	world := ground.NewColliders(
		ground.Box{Min: mgl32.Vec3{-100, -1, -100}, Max: mgl32.Vec3{100, 0, 100}, Layer: 0},
		ground.Box{Min: mgl32.Vec3{10, 0, -20}, Max: mgl32.Vec3{20, 1, -10}, Layer: 1},
	)

	// ── Character ───────────────────────────────────────────────────────
	speed := &character.SpeedParameter{}
	player := character.NewCharacter(win, world,
		character.WithConfig(cfg.Character),
		character.WithSpawn(mgl32.Vec3{0, 0, 0}, 0),
		character.WithStamina(stamina.FromConfig(cfg.Stamina,
			stamina.WithLogger(logger.Named(log, "stamina")),
		)),
		character.WithAnimationSink(speed),
		character.WithShared(shared),
		character.WithLogger(logger.Named(log, "character")),
	)

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithConfig(cfg.Engine),
		engine.WithWindow(win),
		engine.WithShared(shared),
		engine.WithCharacter(player),
		engine.WithLogger(logger.Named(log, "engine")),
	)

	// The title is refreshed from the window thread a few times per second.
	lastTitle := time.Now()
	win.SetUpdateCallback(func() {
		if time.Since(lastTitle) < 250*time.Millisecond {
			return
		}
		lastTitle = time.Now()
		pos := player.Body().Position()
		look := player.Look().Current()
		win.SetTitle(fmt.Sprintf("oxy-fps | pos %.1f %.1f %.1f | speed %.2f | yaw %.0f pitch %.0f | grounded %t",
			pos.X(), pos.Y(), pos.Z(), speed.Speed(), look.Yaw, look.Pitch, player.Grounded()))
	})

	log.Info("starting", zap.Stringer("character", player.ID()))
	eng.Run()
	return nil
}
