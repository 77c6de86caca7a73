package dispatch

import (
	"elevsim/elevator"
	"elevsim/view"
)

// Scan sweeps every elevator from boundary to boundary, serving calls and destinations in
// its path and reversing only at floor 0 or the top floor, like a disk head visiting every cylinder.
func Scan() Policy {
	return perElevator(scanStep)
}

func scanStep(v view.View, ev view.ElevatorView) elevator.Action {
	dir := departure(v, ev.Location, ev.Heading)

	if a, ok := openHere(v, ev, dir); ok {
		return a
	}
	target := boundary(v, dir)
	if f, ok := nearestStop(v, ev, dir); ok {
		target = f
	}
	return moveToward(ev, target)
}
