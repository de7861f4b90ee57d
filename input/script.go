package input

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Script is a timed list of input events used for deterministic runs.
//
//	name: hop
//	steps:
//	  - at: 0
//	    move: [0, 1]
//	  - at: 0.5
//	    press: [jump]
//	  - at: 0.6
//	    release: [jump]
type Script struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"` // seconds; 0 ends at the last step
	Steps    []Step  `yaml:"steps"`
}

// Step is applied once the script clock reaches At.
type Step struct {
	At      float64     `yaml:"at"`
	Move    *[2]float64 `yaml:"move"`
	Press   []Action    `yaml:"press"`
	Release []Action    `yaml:"release"`
}

// End is the time after which the script has nothing left to do.
func (s *Script) End() float64 {
	end := s.Duration
	for _, st := range s.Steps {
		end = max(end, st.At)
	}
	return end
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script and orders its steps by time.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	for i, st := range s.Steps {
		if st.At < 0 {
			return nil, fmt.Errorf("step %d: negative time %v", i, st.At)
		}
	}
	sort.SliceStable(s.Steps, func(i, j int) bool { return s.Steps[i].At < s.Steps[j].At })
	return &s, nil
}

// scriptEpsilon keeps a step at 0.5s from slipping a tick when the clock is
// accumulated from 1/60 increments.
const scriptEpsilon = 1e-9

// ScriptDevice replays a Script. It is a pollable Device and can also forward
// each event to a Receiver, so one script drives either delivery mode.
type ScriptDevice struct {
	script  *Script
	next    int
	move    mgl64.Vec2
	held    [ActionCount]bool
	pulse   [ActionCount]bool // pressed during the last Advance
	forward Receiver
}

// NewScriptDevice starts s at time zero.
func NewScriptDevice(s *Script) *ScriptDevice {
	if s == nil {
		s = &Script{}
	}
	return &ScriptDevice{script: s}
}

// Forward sends every applied event to r as well.
func (d *ScriptDevice) Forward(r Receiver) {
	d.forward = r
}

// Advance applies every step due at or before now. A button pressed and
// released within one Advance still reads as held until the next Advance.
func (d *ScriptDevice) Advance(now float64) {
	d.pulse = [ActionCount]bool{}
	for d.next < len(d.script.Steps) && d.script.Steps[d.next].At <= now+scriptEpsilon {
		d.apply(d.script.Steps[d.next])
		d.next++
	}
}

// Done reports whether now is past the end of the script.
func (d *ScriptDevice) Done(now float64) bool {
	return d.next >= len(d.script.Steps) && now+scriptEpsilon >= d.script.End()
}

func (d *ScriptDevice) apply(st Step) {
	if st.Move != nil {
		d.move = mgl64.Vec2{st.Move[0], st.Move[1]}
		if d.forward != nil {
			d.forward.OnMove(d.move)
		}
	}
	for _, a := range st.Press {
		d.held[a] = true
		d.pulse[a] = true
		if d.forward != nil {
			d.forward.OnPress(a)
		}
	}
	for _, a := range st.Release {
		d.held[a] = false
		if d.forward != nil {
			d.forward.OnRelease(a)
		}
	}
}

// MoveAxis returns the last scripted move vector.
func (d *ScriptDevice) MoveAxis() mgl64.Vec2 { return d.move }

// Held reports whether a is down, or was pressed during the last Advance.
func (d *ScriptDevice) Held(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return d.held[a] || d.pulse[a]
}

// UnmarshalYAML decodes an action written by name.
func (a *Action) UnmarshalYAML(n *yaml.Node) error {
	return a.UnmarshalText([]byte(n.Value))
}
