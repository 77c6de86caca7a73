package dispatch

import (
	"elevsim/elevator"
	"elevsim/view"
)

// CLook serves a single service direction until nothing is left ahead, then jumps straight
// to the farthest pending request behind without stopping on the way, and resumes serving
// from there. The service direction is the direction of the latest door-open.
func CLook() Policy {
	return perElevator(clookStep)
}

func clookStep(v view.View, ev view.ElevatorView) elevator.Action {
	service := ev.LastOpen
	if service == elevator.DirectionStop {
		service = ev.Heading
	}
	back := service.Opposite()

	// a jump is a run of moves against the service direction
	jumping := ev.LastActive.Kind == elevator.Move && ev.Heading == back
	if jumping {
		if f, ok := farthestRequest(v, ev, back); ok {
			return moveToward(ev, f)
		}
		for _, d := range []elevator.MotorDirection{service, back} {
			if a, ok := openHere(v, ev, d); ok {
				return a
			}
		}
	}

	if a, ok := openHere(v, ev, service); ok {
		return a
	}
	if f, ok := nearestStop(v, ev, service); ok {
		return moveToward(ev, f)
	}
	if f, ok := farthestRequest(v, ev, back); ok {
		return moveToward(ev, f)
	}
	// only calls against the service direction remain, here or ahead
	if a, ok := openHere(v, ev, back); ok {
		return a
	}
	if f, ok := farthestRequest(v, ev, service); ok {
		return moveToward(ev, f)
	}
	return elevator.Dwell
}
