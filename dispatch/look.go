package dispatch

import (
	"elevsim/elevator"
	"elevsim/view"
)

// Look behaves like Scan but reverses as soon as nothing is pending further along the
// current direction, and rests when nothing is pending at all.
func Look() Policy {
	return perElevator(lookStep)
}

func lookStep(v view.View, ev view.ElevatorView) elevator.Action {
	dir := departure(v, ev.Location, ev.Heading)

	for _, d := range []elevator.MotorDirection{dir, dir.Opposite()} {
		if a, ok := openHere(v, ev, d); ok {
			return a
		}
		if target, ok := lookTarget(v, ev, d); ok {
			return moveToward(ev, target)
		}
	}
	return elevator.Dwell
}

// lookTarget is the next floor to head for in dir: the nearest stop on the way, or failing
// that the farthest pending request, which can only be a call against dir.
func lookTarget(v view.View, ev view.ElevatorView, dir elevator.MotorDirection) (int, bool) {
	if f, ok := nearestStop(v, ev, dir); ok {
		return f, true
	}
	return farthestRequest(v, ev, dir)
}
