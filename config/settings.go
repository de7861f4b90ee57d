package config

import "fmt"

// InputMode selects how a host delivers input to the motor.
type InputMode string

const (
	// InputPoll reads a device once per tick.
	InputPoll InputMode = "poll"
	// InputPush buffers callbacks that arrive between ticks.
	InputPush InputMode = "push"
)

// ParseInputMode accepts "poll" or "push". Empty means poll.
func ParseInputMode(s string) (InputMode, error) {
	switch InputMode(s) {
	case "", InputPoll:
		return InputPoll, nil
	case InputPush:
		return InputPush, nil
	}
	return "", fmt.Errorf("unknown input mode %q", s)
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, text, json
}

// SimConfig drives the simulation hosts.
type SimConfig struct {
	TickRate      int       `yaml:"tick_rate"` // ticks per second
	Ticks         int       `yaml:"ticks"`     // 0 runs until the script ends
	Realtime      bool      `yaml:"realtime"`
	InputMode     InputMode `yaml:"input_mode"`
	Level         string    `yaml:"level"`  // TMX path, empty for a flat floor
	Script        string    `yaml:"script"` // input script path
	PixelsPerUnit float64   `yaml:"pixels_per_unit"`
	LogEvery      int       `yaml:"log_every"` // per-tick state log interval, 0 disables
}

// PlaygroundConfig sizes the interactive window.
type PlaygroundConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// FollowSmoothing is the fraction of the gap to the player the camera
	// closes each tick. 1 locks the camera to the player.
	FollowSmoothing float64 `yaml:"follow_smoothing"`
}

// Sim is the global simulation configuration
var Sim SimConfig

// Playground is the global window configuration
var Playground PlaygroundConfig

func init() {
	Sim = SimConfig{
		TickRate:      60,
		InputMode:     InputPoll,
		PixelsPerUnit: 16,
		LogEvery:      0,
	}
	Playground = PlaygroundConfig{
		Width:  640,
		Height: 360,
		Title:  "playermotor",

		FollowSmoothing: 0.15,
	}
}

// Step returns the fixed tick duration in seconds.
func (s SimConfig) Step() float64 {
	if s.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(s.TickRate)
}
