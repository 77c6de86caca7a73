// Package person holds the passenger record tracked by the simulation.
package person

import (
	"fmt"

	"github.com/google/uuid"
)

// Person waits on a floor or rides an elevator until it alights at Destination.
type Person struct {
	ID          uuid.UUID
	Origin      int
	Destination int
	WaitTime    int // ticks spent in the system so far
}

// InvalidRouteError is returned when a person would travel to the floor it is already on.
type InvalidRouteError struct {
	Floor int
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("invalid route: origin and destination are both floor %d", e.Floor)
}

// Intner is the slice of an RNG NewRandom needs.
type Intner interface {
	Intn(n int) int
}

func New(origin, destination int) (*Person, error) {
	if origin == destination {
		return nil, &InvalidRouteError{Floor: origin}
	}
	return &Person{
		ID:          uuid.New(),
		Origin:      origin,
		Destination: destination,
	}, nil
}

// NewRandom draws a destination uniformly from [0, numFloors) excluding origin.
func NewRandom(origin, numFloors int, rng Intner) (*Person, error) {
	if numFloors < 2 {
		return nil, &InvalidRouteError{Floor: origin}
	}
	dst := rng.Intn(numFloors - 1)
	if dst >= origin {
		dst++
	}
	return New(origin, dst)
}

func (p *Person) AdvanceTick() {
	p.WaitTime++
}

// Cost punishes long waits quadratically.
func (p *Person) Cost() float64 {
	w := float64(p.WaitTime)
	return w * w
}

// GoingUp reports whether the person's destination lies above floor.
func (p *Person) GoingUp(floor int) bool {
	return p.Destination > floor
}

func (p *Person) String() string {
	return fmt.Sprintf("(dst=%d, t=%d)", p.Destination, p.WaitTime)
}
