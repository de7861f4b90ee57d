package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data    map[string][]byte
	loadErr error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = data
	return nil
}

func TestTuningRoundTrip(t *testing.T) {
	store := NewTuningStore(&memItems{})

	_, ok, err := store.LoadTuning(DefaultMotor())
	require.NoError(t, err)
	assert.False(t, ok)

	tuned := DefaultMotor()
	tuned.DodgeSpeed = 14
	tuned.LockedMoveMultiplier = 0.25
	require.NoError(t, store.SaveTuning(tuned))

	got, ok, err := store.LoadTuning(DefaultMotor())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tuned, got)

	require.NoError(t, store.ClearTuning())
	got, ok, err = store.LoadTuning(DefaultMotor())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, DefaultMotor(), got)
}

func TestTuningPartialOverlay(t *testing.T) {
	items := &memItems{data: map[string][]byte{tuningKey: []byte(`{"walkSpeed": 3}`)}}
	got, ok, err := NewTuningStore(items).LoadTuning(DefaultMotor())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, got.WalkSpeed)
	assert.Equal(t, DefaultMotor().SprintSpeed, got.SprintSpeed)
}

func TestTuningRejectsInvalid(t *testing.T) {
	store := NewTuningStore(&memItems{})
	bad := DefaultMotor()
	bad.Gravity = -1
	assert.True(t, errors.Is(store.SaveTuning(bad), ErrInvalidConfig))

	items := &memItems{data: map[string][]byte{tuningKey: []byte(`{"gravity": -4}`)}}
	got, ok, err := NewTuningStore(items).LoadTuning(DefaultMotor())
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, DefaultMotor(), got)
}

func TestTuningLoadError(t *testing.T) {
	items := &memItems{loadErr: errors.New("disk gone")}
	_, _, err := NewTuningStore(items).LoadTuning(DefaultMotor())
	assert.Error(t, err)
}

func TestNilTuningStoreIsNoop(t *testing.T) {
	var store *TuningStore
	got, ok, err := store.LoadTuning(DefaultMotor())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, DefaultMotor(), got)
	assert.NoError(t, store.SaveTuning(DefaultMotor()))
}
