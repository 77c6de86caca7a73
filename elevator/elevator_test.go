package elevator

import (
	"encoding/json"
	"testing"

	"elevsim/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people(t *testing.T, origin int, destinations ...int) []*person.Person {
	t.Helper()
	var out []*person.Person
	for _, d := range destinations {
		p, err := person.New(origin, d)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestAddPassengersRespectsCapacityAndLimit(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		candidates int
		limit      int
		wantAdded  int
	}{
		{"limited by capacity", 2, 5, 10, 2},
		{"limited by candidates", 10, 3, 10, 3},
		{"limited by limit", 10, 5, 1, 1},
		{"zero limit", 10, 5, 0, 0},
		{"negative limit", 10, 5, -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewElevator(0, 4, 1, tt.capacity)
			candidates := people(t, 0, 1, 2, 3, 4, 1)[:tt.candidates]

			added, rest := e.AddPassengers(candidates, tt.limit)
			assert.Len(t, added, tt.wantAdded)
			assert.Len(t, rest, tt.candidates-tt.wantAdded)
			assert.Equal(t, tt.wantAdded, e.Count())
			assert.LessOrEqual(t, e.Count(), e.Capacity)
			assert.Equal(t, candidates[:tt.wantAdded], added, "FIFO order")
		})
	}
}

func TestAddPassengersNeverExceedsCapacityAcrossCalls(t *testing.T) {
	e := NewElevator(0, 4, 1, 3)
	_, rest := e.AddPassengers(people(t, 0, 1, 2), 10)
	assert.Empty(t, rest)
	added, rest := e.AddPassengers(people(t, 0, 3, 4, 1), 10)
	assert.Len(t, added, 1)
	assert.Len(t, rest, 2)
	assert.True(t, e.Full())
}

func TestReleaseOnlyAtDestination(t *testing.T) {
	e := NewElevator(0, 4, 1, 10)
	e.AddPassengers(people(t, 0, 1, 2, 1), 10)
	e.AgePassengers()
	e.AgePassengers()

	cost, released := e.Release()
	assert.Zero(t, cost, "nobody lives on floor 0")
	assert.Empty(t, released)

	require.NoError(t, e.MoveBy(1))
	cost, released = e.Release()
	assert.Len(t, released, 2)
	assert.Equal(t, 8.0, cost, "two people with wait 2 cost 4 each")
	assert.Equal(t, 1, e.Count())
	assert.Equal(t, []int{2}, e.Destinations())
}

func TestValidMovesAtBoundaries(t *testing.T) {
	e := NewElevator(0, 4, 2, 10)
	moves := e.ValidMoves()
	assert.Equal(t, []Action{MoveAction(0), MoveAction(1), MoveAction(2), OpenUpAction}, moves)
	assert.NotContains(t, moves, OpenDownAction)

	require.NoError(t, e.MoveBy(2))
	require.NoError(t, e.MoveBy(2))
	assert.Equal(t, 4, e.Location())
	moves = e.ValidMoves()
	assert.Equal(t, []Action{MoveAction(-2), MoveAction(-1), MoveAction(0), OpenDownAction}, moves)
	assert.NotContains(t, moves, OpenUpAction)
}

func TestMoveByRejectsOutOfRange(t *testing.T) {
	e := NewElevator(0, 4, 1, 10)
	for _, d := range []int{-1, 2, 5} {
		err := e.MoveBy(d)
		var moveErr *InvalidMoveError
		require.ErrorAs(t, err, &moveErr, "delta %d", d)
		assert.Equal(t, d, moveErr.Delta)
	}
	assert.Equal(t, 0, e.Location())
	assert.Empty(t, e.History())
}

func TestNoReversalRightAfterDoorOpen(t *testing.T) {
	e := NewElevator(0, 4, 1, 10)
	require.NoError(t, e.MoveBy(1))
	require.NoError(t, e.MoveBy(1))
	require.NoError(t, e.OpenDoors(OpenUpAction))

	var moveErr *InvalidMoveError
	require.ErrorAs(t, e.MoveBy(-1), &moveErr)
	assert.NotContains(t, e.ValidMoves(), MoveAction(-1))

	// doors may still open the other way, and dwelling is always allowed
	require.NoError(t, e.Check(OpenDownAction))
	require.NoError(t, e.MoveBy(0))
	require.NoError(t, e.MoveBy(-1))
	assert.Equal(t, 1, e.Location())
}

func TestOpenDoorsBoundaryErrors(t *testing.T) {
	e := NewElevator(0, 1, 1, 10)
	var doorErr *InvalidDoorError
	require.ErrorAs(t, e.OpenDoors(OpenDownAction), &doorErr)
	require.NoError(t, e.OpenDoors(OpenUpAction))
	require.NoError(t, e.MoveBy(1))
	require.ErrorAs(t, e.OpenDoors(OpenUpAction), &doorErr)
	require.ErrorAs(t, e.OpenDoors(MoveAction(0)), &doorErr)
}

func TestHeadingAndLastOpen(t *testing.T) {
	e := NewElevator(0, 4, 1, 10)
	assert.Equal(t, DirectionUp, e.Heading(), "defaults to up")
	assert.Equal(t, DirectionStop, e.LastOpen())

	require.NoError(t, e.MoveBy(1))
	require.NoError(t, e.OpenDoors(OpenDownAction))
	assert.Equal(t, DirectionDown, e.Heading())
	require.NoError(t, e.MoveBy(0))
	assert.Equal(t, DirectionDown, e.Heading(), "dwelling keeps the heading")
	assert.Equal(t, DirectionDown, e.LastOpen())
	assert.Equal(t, []Action{MoveAction(1), OpenDownAction, MoveAction(0)}, e.History())
}

func TestDestinationFlags(t *testing.T) {
	e := NewElevator(0, 4, 1, 10)
	e.AddPassengers(people(t, 0, 3, 1, 3), 10)
	assert.Equal(t, []bool{false, true, false, true, false}, e.DestinationFlags(5))
	assert.Equal(t, []int{1, 3}, e.Destinations())
}

func TestActionJSON(t *testing.T) {
	actions := []Action{MoveAction(-2), OpenUpAction, Dwell, OpenDownAction}
	data, err := json.Marshal(actions)
	require.NoError(t, err)
	assert.JSONEq(t, `[-2,"open_up",0,"open_down"]`, string(data))

	var decoded []Action
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, actions, decoded)

	var bad Action
	assert.Error(t, json.Unmarshal([]byte(`"sideways"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &bad))
}

func TestClamp(t *testing.T) {
	b := Bounds{MaxFloor: 9, MaxSpeed: 2}
	assert.Equal(t, 2, b.Clamp(0, 9))
	assert.Equal(t, 1, b.Clamp(0, 1))
	assert.Equal(t, -2, b.Clamp(5, 0))
	assert.Equal(t, 0, b.Clamp(5, 5))
}

func TestString(t *testing.T) {
	e := NewElevator(0, 4, 1, 10)
	assert.Equal(t, "elevator | (empty) @ floor 00", e.String())
	assert.Equal(t, "+1", MoveAction(1).String())
	assert.Equal(t, "open_down", OpenDownAction.String())
	assert.Equal(t, "down", DirectionDown.String())
}

func TestLastActiveSkipsDwells(t *testing.T) {
	e := NewElevator(0, 4, 1, 10)
	assert.Equal(t, Dwell, e.LastActive())
	require.NoError(t, e.OpenDoors(OpenUpAction))
	require.NoError(t, e.MoveBy(0))
	require.NoError(t, e.MoveBy(0))
	assert.Equal(t, OpenUpAction, e.LastActive())
	assert.Equal(t, Dwell, e.LastAction())
}
