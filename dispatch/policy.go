// Package dispatch holds the policies that turn a restricted view into one action per elevator.
// Policies are pure: everything they remember lives in the elevators' action history,
// surfaced through view.ElevatorView.
package dispatch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"elevsim/elevator"
	"elevsim/view"
)

var ErrUnknownPolicy = errors.New("unknown dispatch policy")

// Policy decides one action per elevator, in the order of v.Elevators.
type Policy interface {
	Decide(v view.View) ([]elevator.Action, error)
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(v view.View) ([]elevator.Action, error)

func (f PolicyFunc) Decide(v view.View) ([]elevator.Action, error) {
	return f(v)
}

// perElevator lifts a single-elevator rule into a Policy. Elevators are decided independently.
type perElevator func(v view.View, ev view.ElevatorView) elevator.Action

func (rule perElevator) Decide(v view.View) ([]elevator.Action, error) {
	actions := make([]elevator.Action, len(v.Elevators))
	for i, ev := range v.Elevators {
		actions[i] = rule(v, ev)
	}
	return actions, nil
}

var registry = map[string]func() Policy{
	"scan":  func() Policy { return Scan() },
	"look":  func() Policy { return Look() },
	"clook": func() Policy { return CLook() },
	"idle":  func() Policy { return Idle() },
}

// ByName returns a built-in policy. Names are case-insensitive; "c-look" is accepted for clook.
func ByName(name string) (Policy, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "-", "")
	mk, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return mk(), nil
}

// Names lists the built-in policies in a stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Idle keeps every elevator where it is.
func Idle() Policy {
	return perElevator(func(view.View, view.ElevatorView) elevator.Action {
		return elevator.Dwell
	})
}
