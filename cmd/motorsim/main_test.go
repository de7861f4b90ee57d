package main

import (
	"bytes"
	"testing"

	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.Defaults()
	cfg.Sim.Ticks = 7
	require.NoError(t, applyFlags(cfg, -1, 0, "", false, "", "", ""))
	assert.Equal(t, 7, cfg.Sim.Ticks, "negative ticks keep the file value")
	assert.Equal(t, 60, cfg.Sim.TickRate)

	require.NoError(t, applyFlags(cfg, 0, 120, "push", true, "debug", "steps", "a.yaml"))
	assert.Equal(t, 0, cfg.Sim.Ticks)
	assert.Equal(t, 120, cfg.Sim.TickRate)
	assert.Equal(t, config.InputPush, cfg.Sim.InputMode)
	assert.True(t, cfg.Sim.Realtime)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "steps", cfg.Sim.Level)
	assert.Equal(t, "a.yaml", cfg.Sim.Script)

	assert.Error(t, applyFlags(cfg, -1, 0, "shout", false, "", "", ""))
}

func TestRunTour(t *testing.T) {
	cfg, err := config.Load("testdata/motorsim.yaml")
	require.NoError(t, err)
	cfg.Sim.Script = "testdata/tour.yaml"

	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Output: &buf})
	require.NoError(t, run(cfg, "", false, "", false, log))

	out := buf.String()
	assert.Contains(t, out, "level loaded")
	assert.Contains(t, out, "level=steps")
	assert.Contains(t, out, "summary.ticks=300")
	assert.Contains(t, out, "summary.jumps=1")
}

func TestRunNeedsBound(t *testing.T) {
	cfg := config.Defaults()
	log := logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}})
	assert.Error(t, run(cfg, "", false, "", false, log))
}

func TestRunFlagConflicts(t *testing.T) {
	cfg := config.Defaults()
	cfg.Sim.Ticks = 1
	log := logger.New(logger.Config{Level: "error", Output: &bytes.Buffer{}})

	assert.Error(t, run(cfg, "", false, "", true, log), "save needs an app")
	assert.Error(t, run(cfg, "", true, "", false, log), "watch needs a config path")
}
