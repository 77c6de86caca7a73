package elevator

// Bounds are the movement limits shared by an elevator and its restricted view.
type Bounds struct {
	MaxFloor int
	MaxSpeed int
}

// Check validates action a for an elevator at loc whose previous action was last.
//   - moves are limited to [-MaxSpeed, MaxSpeed] and must land in [0, MaxFloor]
//   - right after a door-open, a non-zero move must continue in the announced direction
//   - no open-up at MaxFloor, no open-down at floor 0
func (b Bounds) Check(loc int, last, a Action) error {
	switch a.Kind {
	case Move:
		d := a.Delta
		if d < -b.MaxSpeed || d > b.MaxSpeed || loc+d < 0 || loc+d > b.MaxFloor {
			return &InvalidMoveError{Location: loc, Delta: d}
		}
		if last.IsOpen() && d != 0 && DirectionOf(d) != last.Direction() {
			return &InvalidMoveError{Location: loc, Delta: d}
		}
		return nil
	case OpenUp:
		if loc >= b.MaxFloor {
			return &InvalidDoorError{Location: loc, Action: a}
		}
		return nil
	case OpenDown:
		if loc <= 0 {
			return &InvalidDoorError{Location: loc, Action: a}
		}
		return nil
	default:
		return &InvalidDoorError{Location: loc, Action: a}
	}
}

// Valid lists every action Check accepts: deltas in ascending order, then the door sentinels.
func (b Bounds) Valid(loc int, last Action) []Action {
	var moves []Action
	for d := -b.MaxSpeed; d <= b.MaxSpeed; d++ {
		if b.Check(loc, last, MoveAction(d)) == nil {
			moves = append(moves, MoveAction(d))
		}
	}
	for _, open := range []Action{OpenDownAction, OpenUpAction} {
		if b.Check(loc, last, open) == nil {
			moves = append(moves, open)
		}
	}
	return moves
}

// Clamp shortens a move toward target so it stays within one tick's reach.
func (b Bounds) Clamp(loc, target int) int {
	d := target - loc
	if d > b.MaxSpeed {
		d = b.MaxSpeed
	}
	if d < -b.MaxSpeed {
		d = -b.MaxSpeed
	}
	return d
}
