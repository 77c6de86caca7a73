package elevator

import (
	"fmt"
	"slices"
	"strings"

	"elevsim/person"
	"elevsim/util"
)

// Elevator owns its boarded passengers and knows only its own state.
type Elevator struct {
	ID       int
	Capacity int
	Bounds   Bounds

	location   int
	passengers []*person.Person
	history    []Action

	lastActive Action         // latest action other than a dwell
	lastOpen   MotorDirection // direction of the latest door-open, stop if none yet
}

func NewElevator(id int, maxFloor, maxSpeed, capacity int) *Elevator {
	return &Elevator{
		ID:       id,
		Capacity: capacity,
		Bounds:   Bounds{MaxFloor: maxFloor, MaxSpeed: maxSpeed},
		lastOpen: DirectionStop,
	}
}

func (e *Elevator) Location() int { return e.location }

func (e *Elevator) Count() int { return len(e.passengers) }

func (e *Elevator) Full() bool { return len(e.passengers) >= e.Capacity }

// Passengers returns the boarded people in boarding order. The slice is a copy.
func (e *Elevator) Passengers() []*person.Person {
	return slices.Clone(e.passengers)
}

// History returns a copy of every action applied so far.
func (e *Elevator) History() []Action {
	return slices.Clone(e.history)
}

func (e *Elevator) LastAction() Action {
	if len(e.history) == 0 {
		return Dwell
	}
	return e.history[len(e.history)-1]
}

// LastActive is the latest action that was not a dwell. Since dwells never move the
// elevator, a door-open returned here happened on the current floor.
func (e *Elevator) LastActive() Action {
	return e.lastActive
}

// Heading is the current direction of travel: the sign of the latest non-zero action, up before any.
func (e *Elevator) Heading() MotorDirection {
	if dir := e.lastActive.Direction(); dir != DirectionStop {
		return dir
	}
	return DirectionUp
}

// LastOpen is the direction of the latest door-open, DirectionStop before the first one.
func (e *Elevator) LastOpen() MotorDirection {
	return e.lastOpen
}

// AddPassengers boards up to min(free seats, len(candidates), limit) people in FIFO order.
// It returns the boarded people and the candidates left behind; neither aliases candidates.
func (e *Elevator) AddPassengers(candidates []*person.Person, limit int) (added, rest []*person.Person) {
	n := min(e.Capacity-len(e.passengers), len(candidates), limit)
	if n < 0 {
		n = 0
	}
	added = slices.Clone(candidates[:n])
	rest = slices.Clone(candidates[n:])
	e.passengers = append(e.passengers, added...)
	return added, rest
}

// Release lets off everyone whose destination is the current floor and returns the sum of their costs.
func (e *Elevator) Release() (float64, []*person.Person) {
	leaving, staying := util.Partition(e.passengers, func(p *person.Person) bool {
		return p.Destination == e.location
	})
	e.passengers = staying

	cost := 0.0
	for _, p := range leaving {
		cost += p.Cost()
	}
	return cost, leaving
}

func (e *Elevator) AgePassengers() {
	for _, p := range e.passengers {
		p.AdvanceTick()
	}
}

func (e *Elevator) ValidMoves() []Action {
	return e.Bounds.Valid(e.location, e.LastAction())
}

// Check reports whether a would be accepted right now without applying it.
func (e *Elevator) Check(a Action) error {
	return e.Bounds.Check(e.location, e.LastAction(), a)
}

func (e *Elevator) MoveBy(delta int) error {
	a := MoveAction(delta)
	if err := e.Check(a); err != nil {
		return err
	}
	e.location += delta
	e.record(a)
	return nil
}

// OpenDoors records a door-open sentinel. Boarding and alighting are resolved by the building.
func (e *Elevator) OpenDoors(a Action) error {
	if !a.IsOpen() {
		return &InvalidDoorError{Location: e.location, Action: a}
	}
	if err := e.Check(a); err != nil {
		return err
	}
	e.record(a)
	return nil
}

// Apply dispatches a to MoveBy or OpenDoors.
func (e *Elevator) Apply(a Action) error {
	if a.Kind == Move {
		return e.MoveBy(a.Delta)
	}
	return e.OpenDoors(a)
}

func (e *Elevator) record(a Action) {
	e.history = append(e.history, a)
	if a != Dwell {
		e.lastActive = a
	}
	if a.IsOpen() {
		e.lastOpen = a.Direction()
	}
}

// Destinations returns the distinct destination floors of the passengers, ascending.
func (e *Elevator) Destinations() []int {
	floors := make([]int, 0, len(e.passengers))
	for _, p := range e.passengers {
		floors = append(floors, p.Destination)
	}
	slices.Sort(floors)
	return slices.Compact(floors)
}

// DestinationFlags marks every floor in [0, numFloors) that some passenger is headed to.
func (e *Elevator) DestinationFlags(numFloors int) []bool {
	flags := make([]bool, numFloors)
	for _, p := range e.passengers {
		flags[p.Destination] = true
	}
	return flags
}

func (e *Elevator) String() string {
	var b strings.Builder
	b.WriteString("elevator | ")
	if len(e.passengers) == 0 {
		b.WriteString("(empty) ")
	}
	for _, p := range e.passengers {
		b.WriteString(p.String())
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "@ floor %02d", e.location)
	return b.String()
}
