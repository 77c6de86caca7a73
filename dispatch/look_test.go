package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"elevsim/elevator"
	"elevsim/view"
)

func TestLookReversesWhenNothingAhead(t *testing.T) {
	// up call at floor 0 while climbing through floor 3
	ev := testElevator(5, 3, elevator.MoveAction(1), elevator.MoveAction(1), elevator.DirectionStop)
	v := testView(5, map[int]view.HallCall{0: {Up: true}}, ev)

	assert.Equal(t, elevator.MoveAction(-1), decideOne(t, Look(), v))
	assert.Equal(t, elevator.MoveAction(1), decideOne(t, Scan(), v))
}

func TestLookRestsWithoutRequests(t *testing.T) {
	v := testView(5, nil, testElevator(5, 2, elevator.MoveAction(1), elevator.MoveAction(1), elevator.DirectionStop))
	assert.Equal(t, elevator.Dwell, decideOne(t, Look(), v))
}

func TestLookHeadsForFarthestCallAgainstDirection(t *testing.T) {
	// down calls at 3 and 4 while going up from 1: go to 4 first
	ev := testElevator(5, 1, elevator.MoveAction(1), elevator.MoveAction(1), elevator.DirectionStop)
	v := testView(5, map[int]view.HallCall{3: {Down: true}, 4: {Down: true}}, ev)

	var actions []elevator.Action
	for i := 0; i < 5; i++ {
		a := decideOne(t, Look(), v)
		actions = append(actions, a)
		step(&v, []elevator.Action{a})
		if a.IsOpen() {
			v.Halls[v.Elevators[0].Location] = view.HallCall{}
		}
	}
	assert.Equal(t, []elevator.Action{
		elevator.MoveAction(1),
		elevator.MoveAction(1),
		elevator.MoveAction(1),
		elevator.OpenDownAction,
		elevator.MoveAction(-1),
	}, actions)
	assert.Equal(t, elevator.OpenDownAction, decideOne(t, Look(), v))
}

func TestLookPrefersCurrentDirectionOnTie(t *testing.T) {
	ev := testElevator(5, 2, elevator.MoveAction(-1), elevator.MoveAction(-1), elevator.DirectionStop, 1, 3)
	v := testView(5, nil, ev)
	assert.Equal(t, elevator.MoveAction(-1), decideOne(t, Look(), v))

	v.Elevators[0].Heading = elevator.DirectionUp
	v.Elevators[0].LastAction = elevator.MoveAction(1)
	v.Elevators[0].LastActive = elevator.MoveAction(1)
	assert.Equal(t, elevator.MoveAction(1), decideOne(t, Look(), v))
}

func TestLookOpensForDestinationHere(t *testing.T) {
	ev := testElevator(5, 2, elevator.MoveAction(-1), elevator.MoveAction(-1), elevator.DirectionStop, 2)
	v := testView(5, nil, ev)
	assert.Equal(t, elevator.OpenDownAction, decideOne(t, Look(), v))
}
