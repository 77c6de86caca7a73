package dispatch

import (
	"elevsim/elevator"
	"elevsim/view"
)

// requestAt reports whether anything is pending at floor for this elevator:
// one of its passengers gets off there, or a hall button is lit there.
func requestAt(v view.View, ev view.ElevatorView, floor int) bool {
	return ev.Destinations[floor] || v.Halls[floor].Any()
}

// stopAt reports whether an elevator travelling dir should serve floor.
func stopAt(v view.View, ev view.ElevatorView, floor int, dir elevator.MotorDirection) bool {
	return ev.Destinations[floor] || v.Halls[floor].Wants(dir)
}

// floorsAhead lists the floors strictly beyond loc in dir, nearest first.
func floorsAhead(v view.View, loc int, dir elevator.MotorDirection) []int {
	var floors []int
	switch dir {
	case elevator.DirectionUp:
		for f := loc + 1; f < v.NumFloors; f++ {
			floors = append(floors, f)
		}
	case elevator.DirectionDown:
		for f := loc - 1; f >= 0; f-- {
			floors = append(floors, f)
		}
	}
	return floors
}

func RequestsAbove(v view.View, ev view.ElevatorView) bool {
	return RequestsAhead(v, ev, elevator.DirectionUp)
}

func RequestsBelow(v view.View, ev view.ElevatorView) bool {
	return RequestsAhead(v, ev, elevator.DirectionDown)
}

func RequestsHere(v view.View, ev view.ElevatorView) bool {
	return requestAt(v, ev, ev.Location)
}

func RequestsAhead(v view.View, ev view.ElevatorView, dir elevator.MotorDirection) bool {
	_, ok := farthestRequest(v, ev, dir)
	return ok
}

// nearestStop is the closest floor beyond the elevator in dir that it should serve on the way.
func nearestStop(v view.View, ev view.ElevatorView, dir elevator.MotorDirection) (int, bool) {
	for _, f := range floorsAhead(v, ev.Location, dir) {
		if stopAt(v, ev, f, dir) {
			return f, true
		}
	}
	return 0, false
}

// farthestRequest is the most distant floor beyond the elevator in dir with anything pending.
func farthestRequest(v view.View, ev view.ElevatorView, dir elevator.MotorDirection) (int, bool) {
	floor, found := 0, false
	for _, f := range floorsAhead(v, ev.Location, dir) {
		if requestAt(v, ev, f) {
			floor, found = f, true
		}
	}
	return floor, found
}

// boundary is the last floor reachable travelling dir.
func boundary(v view.View, dir elevator.MotorDirection) int {
	if dir == elevator.DirectionDown {
		return 0
	}
	return v.MaxFloor()
}

// departure forces dir toward the only legal way out of a boundary floor.
func departure(v view.View, loc int, dir elevator.MotorDirection) elevator.MotorDirection {
	switch loc {
	case v.MaxFloor():
		return elevator.DirectionDown
	case 0:
		return elevator.DirectionUp
	}
	if dir == elevator.DirectionStop {
		return elevator.DirectionUp
	}
	return dir
}

// openHere returns the door-open that serves the current floor travelling dir, if anything
// here wants it. The sentinel is forced at boundary floors. A loaded elevator does not reopen
// the way it already opened on this floor: whoever could board has boarded, and a lit call
// means it is full. An empty one always has room.
func openHere(v view.View, ev view.ElevatorView, dir elevator.MotorDirection) (elevator.Action, bool) {
	if !stopAt(v, ev, ev.Location, dir) {
		return elevator.Dwell, false
	}
	a := elevator.OpenAction(departure(v, ev.Location, dir))
	if ev.LastActive == a && ev.HasDestinations() {
		return elevator.Dwell, false
	}
	if ev.Check(a) != nil {
		return elevator.Dwell, false
	}
	return a, true
}

// moveToward steps toward target as far as one tick allows. A move the elevator may not
// make yet (reversing right after a door-open) becomes a dwell.
func moveToward(ev view.ElevatorView, target int) elevator.Action {
	a := elevator.MoveAction(ev.Bounds.Clamp(ev.Location, target))
	if ev.Check(a) != nil {
		return elevator.Dwell
	}
	return a
}
