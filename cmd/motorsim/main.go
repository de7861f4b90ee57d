package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/input"
	"github.com/automoto/playermotor/logger"
	"github.com/automoto/playermotor/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	levelPath := flag.String("level", "", "TMX level (flat arena when empty)")
	scriptPath := flag.String("script", "", "YAML input script")
	ticks := flag.Int("ticks", -1, "Stop after this many ticks (0 runs until the script ends)")
	tickRate := flag.Int("tickrate", 0, "Simulation tick rate (updates per second)")
	mode := flag.String("mode", "", "Input delivery mode: poll or push")
	realtime := flag.Bool("realtime", false, "Pace ticks in real time")
	watch := flag.Bool("watch", false, "Reload the motor section when the config file changes")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	tuningApp := flag.String("tuning-app", "", "Load saved tuning from this app's data dir")
	saveTuning := flag.Bool("save-tuning", false, "Save the active tuning under -tuning-app and exit")
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
	if err := applyFlags(cfg, *ticks, *tickRate, *mode, *realtime, *logLevel, *levelPath, *scriptPath); err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logger.L()

	if err := run(cfg, *configPath, *watch, *tuningApp, *saveTuning, log); err != nil {
		log.Error("motorsim failed", "err", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.File, ticks, tickRate int, mode string, realtime bool, logLevel, level, script string) error {
	if ticks >= 0 {
		cfg.Sim.Ticks = ticks
	}
	if tickRate > 0 {
		cfg.Sim.TickRate = tickRate
	}
	if mode != "" {
		m, err := config.ParseInputMode(mode)
		if err != nil {
			return err
		}
		cfg.Sim.InputMode = m
	}
	if realtime {
		cfg.Sim.Realtime = true
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if level != "" {
		cfg.Sim.Level = level
	}
	if script != "" {
		cfg.Sim.Script = script
	}
	return nil
}

func run(cfg *config.File, configPath string, watch bool, tuningApp string, saveTuning bool, log *slog.Logger) error {
	if tuningApp != "" {
		store, err := config.OpenTuningStore(tuningApp)
		if err != nil {
			return err
		}
		if saveTuning {
			if err := store.SaveTuning(cfg.Motor); err != nil {
				return err
			}
			log.Info("tuning saved", "app", tuningApp)
			return nil
		}
		tuned, ok, err := store.LoadTuning(cfg.Motor)
		if err != nil {
			return err
		}
		if ok {
			cfg.Motor = tuned
			log.Info("tuning loaded", "app", tuningApp)
		}
	} else if saveTuning {
		return errors.New("-save-tuning needs -tuning-app")
	}

	name, level, err := sim.LoadLevel(cfg.Sim.Level)
	if err != nil {
		return err
	}

	var script *input.Script
	if cfg.Sim.Script != "" {
		if script, err = input.LoadScript(cfg.Sim.Script); err != nil {
			return err
		}
	} else if cfg.Sim.Ticks == 0 {
		return errors.New("nothing bounds the run: pass -script or -ticks")
	}

	opts := sim.Options{
		Config:    cfg,
		LevelName: name,
		Level:     level,
		Script:    script,
		Logger:    log,
	}
	if watch {
		if configPath == "" {
			return errors.New("-watch needs -config")
		}
		w, err := config.NewWatcher(configPath)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer w.Close()
		opts.Updates = w.Updates
		go func() {
			for err := range w.Errors {
				log.Warn("config reload failed", "err", err)
			}
		}()
	}

	s, err := sim.New(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = s.Run(ctx)
	log.Info("run finished", "summary", s.Summary())
	if errors.Is(err, context.Canceled) {
		log.Info("shutting down")
		return nil
	}
	return err
}
