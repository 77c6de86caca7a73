package elevator

import (
	"encoding/json"
	"fmt"
)

type MotorDirection int

const (
	DirectionUp   MotorDirection = 1
	DirectionDown MotorDirection = -1
	DirectionStop MotorDirection = 0
)

// String returns a string representation of the MotorDirection
func (md MotorDirection) String() string {
	switch md {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionStop:
		return "stop"
	default:
		return fmt.Sprintf("unknown(%d)", int(md))
	}
}

func (md MotorDirection) Opposite() MotorDirection {
	return -md
}

func DirectionOf(delta int) MotorDirection {
	switch {
	case delta > 0:
		return DirectionUp
	case delta < 0:
		return DirectionDown
	default:
		return DirectionStop
	}
}

type ActionKind int

const (
	Move ActionKind = iota
	OpenUp
	OpenDown
)

func (k ActionKind) String() string {
	switch k {
	case Move:
		return "move"
	case OpenUp:
		return "open_up"
	case OpenDown:
		return "open_down"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Action is what a dispatch policy asks one elevator to do for one tick:
// either move by a signed number of floors, or open its doors announcing a direction.
// The zero value is a dwell (move by 0).
type Action struct {
	Kind  ActionKind
	Delta int // only meaningful for Move
}

func MoveAction(delta int) Action {
	return Action{Kind: Move, Delta: delta}
}

var (
	OpenUpAction   = Action{Kind: OpenUp}
	OpenDownAction = Action{Kind: OpenDown}
	Dwell          = Action{Kind: Move}
)

// OpenAction returns the door-open sentinel announcing dir. DirectionStop maps to up.
func OpenAction(dir MotorDirection) Action {
	if dir == DirectionDown {
		return OpenDownAction
	}
	return OpenUpAction
}

func (a Action) IsOpen() bool {
	return a.Kind == OpenUp || a.Kind == OpenDown
}

// Direction is the sign of a move, or the direction announced by a door-open.
func (a Action) Direction() MotorDirection {
	switch a.Kind {
	case OpenUp:
		return DirectionUp
	case OpenDown:
		return DirectionDown
	default:
		return DirectionOf(a.Delta)
	}
}

func (a Action) String() string {
	if a.Kind == Move {
		return fmt.Sprintf("%+d", a.Delta)
	}
	return a.Kind.String()
}

// MarshalJSON encodes moves as plain integers and door-opens as "open_up"/"open_down".
func (a Action) MarshalJSON() ([]byte, error) {
	if a.Kind == Move {
		return json.Marshal(a.Delta)
	}
	return json.Marshal(a.Kind.String())
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var delta int
	if err := json.Unmarshal(data, &delta); err == nil {
		*a = MoveAction(delta)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("action must be an integer delta or a door sentinel: %s", string(data))
	}
	switch name {
	case "open_up":
		*a = OpenUpAction
	case "open_down":
		*a = OpenDownAction
	default:
		return fmt.Errorf("unknown action %q", name)
	}
	return nil
}
