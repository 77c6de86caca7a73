package view

import (
	"encoding/json"
	"testing"

	"elevsim/elevator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() View {
	return View{
		Time:      3,
		NumFloors: 3,
		MaxSpeed:  1,
		Halls:     []HallCall{{Up: true}, {Up: true, Down: true}, {Down: false}},
		Elevators: []ElevatorView{
			{Location: 2, Destinations: []bool{true, false, false}, Heading: elevator.DirectionDown},
			{Location: 0, Destinations: []bool{false, false, false}, Heading: elevator.DirectionUp},
		},
	}
}

func TestFlatten(t *testing.T) {
	v := sample()
	flat := v.Flatten()
	assert.Len(t, flat, FlatLen(3, 2))
	assert.Equal(t, []float64{
		1, 0, 1, 1, 0, 0,
		1, 0, 0, 2,
		0, 0, 0, 0,
	}, flat)
}

func TestHallCallWants(t *testing.T) {
	h := HallCall{Down: true}
	assert.False(t, h.Wants(elevator.DirectionUp))
	assert.True(t, h.Wants(elevator.DirectionDown))
	assert.False(t, h.Wants(elevator.DirectionStop))
	assert.True(t, h.Any())
	assert.False(t, HallCall{}.Any())
}

func TestElevatorViewCheckMirrorsBounds(t *testing.T) {
	ev := ElevatorView{
		Location:   0,
		LastAction: elevator.Dwell,
		Bounds:     elevator.Bounds{MaxFloor: 2, MaxSpeed: 1},
	}
	assert.NoError(t, ev.Check(elevator.OpenUpAction))
	assert.Error(t, ev.Check(elevator.OpenDownAction))
	assert.Error(t, ev.Check(elevator.MoveAction(-1)))
	assert.False(t, ev.HasDestinations())
}

func TestJSONShape(t *testing.T) {
	data, err := json.Marshal(sample())
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.Contains(t, generic, "halls")
	assert.Contains(t, generic, "elevators")
	assert.EqualValues(t, 3, generic["num_floors"])
	assert.NotContains(t, string(data), "Bounds")
}
