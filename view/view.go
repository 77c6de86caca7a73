// Package view defines the restricted snapshot a dispatch policy perceives each tick.
// It carries hall-call direction flags and each elevator's own destinations and
// location, never floor occupancy or passenger identities.
package view

import (
	"elevsim/elevator"
	"elevsim/util"
)

// HallCall holds the two hall buttons of one floor.
type HallCall struct {
	Up   bool `json:"up"`
	Down bool `json:"down"`
}

// Wants reports whether the button for dir is lit.
func (h HallCall) Wants(dir elevator.MotorDirection) bool {
	switch dir {
	case elevator.DirectionUp:
		return h.Up
	case elevator.DirectionDown:
		return h.Down
	default:
		return false
	}
}

func (h HallCall) Any() bool {
	return h.Up || h.Down
}

// ElevatorView is what a policy knows about one elevator. The action-history
// derived fields are the only memory a policy has between ticks.
type ElevatorView struct {
	Location     int                     `json:"location"`
	Destinations []bool                  `json:"destinations"`
	LastAction   elevator.Action         `json:"last_action"`
	LastActive   elevator.Action         `json:"last_active"` // latest non-dwell action
	Heading      elevator.MotorDirection `json:"heading"`   // sign of the latest non-zero action, up before any
	LastOpen     elevator.MotorDirection `json:"last_open"` // direction of the latest door-open, stop if none
	Bounds       elevator.Bounds         `json:"-"`
}

// Check validates a against the same rules the building enforces.
func (ev ElevatorView) Check(a elevator.Action) error {
	return ev.Bounds.Check(ev.Location, ev.LastAction, a)
}

func (ev ElevatorView) HasDestinations() bool {
	return util.AnyTrue(ev.Destinations)
}

// View is the complete restricted snapshot for one tick.
type View struct {
	Time      int            `json:"time"`
	NumFloors int            `json:"num_floors"`
	MaxSpeed  int            `json:"max_speed"`
	Halls     []HallCall     `json:"halls"`
	Elevators []ElevatorView `json:"elevators"`
}

func (v View) MaxFloor() int {
	return v.NumFloors - 1
}

// Flatten encodes the view as a fixed-length vector for learned policies:
// per floor [up, down], then per elevator its destination flags followed by its location.
// Length is 2*NumFloors + len(Elevators)*(NumFloors+1).
func (v View) Flatten() []float64 {
	out := make([]float64, 0, FlatLen(v.NumFloors, len(v.Elevators)))
	for _, h := range v.Halls {
		out = append(out, util.BoolToFloat(h.Up), util.BoolToFloat(h.Down))
	}
	for _, ev := range v.Elevators {
		for _, d := range ev.Destinations {
			out = append(out, util.BoolToFloat(d))
		}
		out = append(out, float64(ev.Location))
	}
	return out
}

func FlatLen(numFloors, numElevators int) int {
	return 2*numFloors + numElevators*(numFloors+1)
}
