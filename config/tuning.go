package config

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const tuningKey = "motor-tuning"

// ItemStore is the subset of gdata.Manager used for persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// TuningStore persists designer overrides of MotorConfig between sessions.
type TuningStore struct {
	items ItemStore
}

// OpenTuningStore opens the per-user gdata storage for appName.
func OpenTuningStore(appName string) (*TuningStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open tuning storage: %w", err)
	}
	return NewTuningStore(m), nil
}

// NewTuningStore wraps an existing item store.
func NewTuningStore(items ItemStore) *TuningStore {
	return &TuningStore{items: items}
}

// LoadTuning overlays the saved tuning on base. ok is false when nothing was saved.
func (s *TuningStore) LoadTuning(base MotorConfig) (cfg MotorConfig, ok bool, err error) {
	if s == nil || s.items == nil {
		return base, false, nil
	}

	data, err := s.items.LoadItem(tuningKey)
	if err != nil {
		return base, false, fmt.Errorf("load tuning: %w", err)
	}
	if len(data) == 0 {
		return base, false, nil
	}

	cfg = base
	if err := json.Unmarshal(data, &cfg); err != nil {
		return base, false, fmt.Errorf("parse saved tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, false, fmt.Errorf("saved tuning: %w", err)
	}
	return cfg, true, nil
}

// SaveTuning writes cfg after validating it.
func (s *TuningStore) SaveTuning(cfg MotorConfig) error {
	if s == nil || s.items == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := s.items.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

// ClearTuning drops any saved overrides.
func (s *TuningStore) ClearTuning() error {
	if s == nil || s.items == nil {
		return nil
	}
	if err := s.items.SaveItem(tuningKey, nil); err != nil {
		return fmt.Errorf("clear tuning: %w", err)
	}
	return nil
}
