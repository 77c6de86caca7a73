package elevator

import "fmt"

// InvalidMoveError is returned for a delta outside the elevator's valid moves.
type InvalidMoveError struct {
	Location int
	Delta    int
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %+d from floor %d", e.Delta, e.Location)
}

// InvalidDoorError is returned when doors are opened in a direction the floor does not allow.
type InvalidDoorError struct {
	Location int
	Action   Action
}

func (e *InvalidDoorError) Error() string {
	return fmt.Sprintf("invalid door action %s at floor %d", e.Action, e.Location)
}
