package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRng struct{ values []int }

func (r *fixedRng) Intn(n int) int {
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func TestNewRejectsSameFloor(t *testing.T) {
	p, err := New(3, 3)
	assert.Nil(t, p)
	var routeErr *InvalidRouteError
	require.ErrorAs(t, err, &routeErr)
	assert.Equal(t, 3, routeErr.Floor)
}

func TestNewRandomSkipsOrigin(t *testing.T) {
	// 5 floors, origin 2: draws 0..3 map to 0,1,3,4
	rng := &fixedRng{values: []int{0, 1, 2, 3}}
	var got []int
	for i := 0; i < 4; i++ {
		p, err := NewRandom(2, 5, rng)
		require.NoError(t, err)
		got = append(got, p.Destination)
		assert.Equal(t, 2, p.Origin)
	}
	assert.Equal(t, []int{0, 1, 3, 4}, got)
}

func TestNewRandomNeedsTwoFloors(t *testing.T) {
	_, err := NewRandom(0, 1, &fixedRng{values: []int{0}})
	assert.Error(t, err)
}

func TestCostIsSquaredWait(t *testing.T) {
	p, err := New(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Cost())

	prev := p.Cost()
	for i := 1; i <= 5; i++ {
		p.AdvanceTick()
		assert.Equal(t, i, p.WaitTime)
		assert.GreaterOrEqual(t, p.Cost(), prev)
		prev = p.Cost()
	}
	assert.Equal(t, 25.0, p.Cost())
}

func TestIDsAreDistinct(t *testing.T) {
	a, _ := New(0, 1)
	b, _ := New(0, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGoingUp(t *testing.T) {
	p, _ := New(1, 3)
	assert.True(t, p.GoingUp(1))
	assert.False(t, p.GoingUp(3))
	assert.Equal(t, "(dst=3, t=0)", p.String())
}
