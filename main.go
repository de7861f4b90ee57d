package main

import (
	"flag"
	"image/color"
	"log/slog"
	"os"

	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/input/ebitenpoll"
	"github.com/automoto/playermotor/logger"
	"github.com/automoto/playermotor/sim"
	"github.com/automoto/playermotor/systems"
	"github.com/automoto/playermotor/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Game is the interactive playground: one player on a level, driven by the
// keyboard or a gamepad, drawn as collision boxes.
type Game struct {
	sim    *sim.Sim
	cfg    *config.File
	tuning *config.TuningStore
	log    *slog.Logger
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.tuning.SaveTuning(g.cfg.Motor); err != nil {
			g.log.Warn("could not save tuning", "err", err)
		} else {
			g.log.Info("tuning saved")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if err := g.tuning.ClearTuning(); err != nil {
			g.log.Warn("could not clear tuning", "err", err)
		}
		if err := g.sim.Reconfigure(config.Motor); err != nil {
			g.log.Warn("could not restore defaults", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		paused := systems.TogglePause(g.sim.ECS())
		g.log.Info("pause", "paused", paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		systems.RequestStep(g.sim.ECS())
	}
	g.sim.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	g.sim.ECS().Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Playground.Width, g.cfg.Playground.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	levelPath := flag.String("level", "", "TMX level (flat arena when empty)")
	watch := flag.Bool("watch", false, "Reload the motor section when the config file changes")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *levelPath != "" {
		cfg.Sim.Level = *levelPath
	}
	// The playground always polls the window's devices.
	cfg.Sim.InputMode = config.InputPoll
	cfg.Sim.Ticks = 0

	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logger.L()

	// Saved tuning is optional; a nil store makes save and load no-ops.
	tuning, err := config.OpenTuningStore("playermotor")
	if err != nil {
		log.Warn("could not open tuning store", "err", err)
	}
	if tuned, ok, err := tuning.LoadTuning(cfg.Motor); err != nil {
		log.Warn("could not load saved tuning", "err", err)
	} else if ok {
		cfg.Motor = tuned
	}

	name, level, err := sim.LoadLevel(cfg.Sim.Level)
	if err != nil {
		log.Error("failed to load level", "err", err)
		os.Exit(1)
	}

	opts := sim.Options{
		Config:    cfg,
		LevelName: name,
		Level:     level,
		Device:    ebitenpoll.New(ebitenpoll.DefaultBindings()),
		Logger:    log,
	}
	if *watch && *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Warn("could not watch config", "err", err)
		} else {
			defer w.Close()
			opts.Updates = w.Updates
			go func() {
				for err := range w.Errors {
					log.Warn("config reload failed", "err", err)
				}
			}()
		}
	}

	s, err := sim.New(opts)
	if err != nil {
		log.Error("failed to start", "err", err)
		os.Exit(1)
	}
	factory.CreateCamera(s.ECS(), cfg.Playground.Width, cfg.Playground.Height, cfg.Playground.FollowSmoothing)
	s.ECS().AddSystem(systems.UpdateCamera)
	s.ECS().AddRenderer(ecs.LayerDefault, systems.DrawLevel)
	s.ECS().AddRenderer(ecs.LayerDefault, systems.DrawDebug)

	ebiten.SetTPS(cfg.Sim.TickRate)
	ebiten.SetWindowSize(cfg.Playground.Width*2, cfg.Playground.Height*2)
	ebiten.SetWindowTitle(cfg.Playground.Title)

	if err := ebiten.RunGame(&Game{sim: s, cfg: cfg, tuning: tuning, log: log}); err != nil {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}
