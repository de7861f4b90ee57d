package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a motor config. Missing keys keep their defaults.
type File struct {
	Motor      MotorConfig      `yaml:"motor"`
	Logging    LoggingConfig    `yaml:"logging"`
	Sim        SimConfig        `yaml:"sim"`
	Playground PlaygroundConfig `yaml:"playground"`
}

// Defaults returns a File populated from the package globals.
func Defaults() *File {
	return &File{
		Motor:      Motor,
		Logging:    LoggingConfig{Level: "info", Format: "console"},
		Sim:        Sim,
		Playground: Playground,
	}
}

// Load reads a YAML file over the defaults and validates the motor section.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*File, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Motor.Validate(); err != nil {
		return nil, err
	}
	mode, err := ParseInputMode(string(cfg.Sim.InputMode))
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	cfg.Sim.InputMode = mode
	return cfg, nil
}
