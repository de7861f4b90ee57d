package animation

import (
	"sort"

	"github.com/automoto/playermotor/motor"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// floatParam blends toward its latest target with a tween.
type floatParam struct {
	value  float32
	target float32
	tween  *gween.Tween
}

// ParamStore is an in-process animation target. Bool and int parameters are
// stored as set, float parameters blend over BlendTime, and triggers queue
// until consumed by the renderer.
type ParamStore struct {
	blendTime float32
	bools     map[string]bool
	ints      map[string]int
	floats    map[string]*floatParam
	triggers  []string
}

// NewParamStore blends floats over blendTime seconds. Zero disables blending.
func NewParamStore(blendTime float64) *ParamStore {
	return &ParamStore{
		blendTime: float32(max(blendTime, 0)),
		bools:     map[string]bool{},
		ints:      map[string]int{},
		floats:    map[string]*floatParam{},
	}
}

var _ motor.AnimationTarget = (*ParamStore)(nil)

// SetBool writes a bool parameter.
func (s *ParamStore) SetBool(name string, v bool) { s.bools[name] = v }

// SetInt writes an int parameter.
func (s *ParamStore) SetInt(name string, v int) { s.ints[name] = v }

// SetTrigger queues a trigger until ConsumeTriggers.
func (s *ParamStore) SetTrigger(name string) { s.triggers = append(s.triggers, name) }

// SetFloat retargets a float parameter. The first write snaps.
func (s *ParamStore) SetFloat(name string, v float64) {
	target := float32(v)
	p, ok := s.floats[name]
	if !ok {
		s.floats[name] = &floatParam{value: target, target: target}
		return
	}
	if p.target == target {
		return
	}
	p.target = target
	if s.blendTime <= 0 {
		p.value = target
		p.tween = nil
		return
	}
	p.tween = gween.New(p.value, target, s.blendTime, ease.OutQuad)
}

// Update advances float blends by dt seconds.
func (s *ParamStore) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for _, p := range s.floats {
		if p.tween == nil {
			continue
		}
		value, done := p.tween.Update(float32(dt))
		p.value = value
		if done {
			p.value = p.target
			p.tween = nil
		}
	}
}

// Bool returns a bool parameter, false if unset.
func (s *ParamStore) Bool(name string) bool { return s.bools[name] }

// Int returns an int parameter, 0 if unset.
func (s *ParamStore) Int(name string) int { return s.ints[name] }

// Float returns the blended value.
func (s *ParamStore) Float(name string) float64 {
	if p, ok := s.floats[name]; ok {
		return float64(p.value)
	}
	return 0
}

// Target returns the value a float parameter is blending toward.
func (s *ParamStore) Target(name string) float64 {
	if p, ok := s.floats[name]; ok {
		return float64(p.target)
	}
	return 0
}

// ConsumeTriggers returns queued triggers in the order they fired and clears them.
func (s *ParamStore) ConsumeTriggers() []string {
	out := s.triggers
	s.triggers = nil
	return out
}

// Names lists every parameter that has been written, sorted.
func (s *ParamStore) Names() []string {
	names := make([]string, 0, len(s.bools)+len(s.ints)+len(s.floats))
	for n := range s.bools {
		names = append(names, n)
	}
	for n := range s.ints {
		names = append(names, n)
	}
	for n := range s.floats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
