package input

import (
	"fmt"
	"strings"
)

// Action is a logical button the motor reacts to.
type Action int

const (
	ActionJump Action = iota
	ActionDodge
	ActionSprint
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionJump:   "jump",
	ActionDodge:  "dodge",
	ActionSprint: "sprint",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves an action by name, ignoring case.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// UnmarshalText lets actions be written by name in YAML scripts.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
