package building

import (
	"gonum.org/v1/gonum/floats"

	"elevsim/person"
)

// CumulativeCost is the accumulated cost plus what every person still tracked would cost if
// they were delivered right now.
func (b *Building) CumulativeCost() float64 {
	cost := b.accumulatedCost
	b.eachActive(func(p *person.Person) {
		cost += p.Cost()
	})
	return cost
}

func (b *Building) AccumulatedCost() float64 {
	return b.accumulatedCost
}

// distributionCost convolves the number of people waiting per floor with each elevator's
// distance to that floor. Elevators parked far from crowds make it grow.
func (b *Building) distributionCost() float64 {
	waiting := make([]float64, len(b.floors))
	for floor, queue := range b.floors {
		waiting[floor] = float64(len(queue))
	}

	total := 0.0
	distance := make([]float64, len(b.floors))
	for _, e := range b.elevators {
		for floor := range distance {
			d := floor - e.Location()
			if d < 0 {
				d = -d
			}
			distance[floor] = float64(d)
		}
		total += floats.Dot(waiting, distance)
	}
	return total
}

func (b *Building) eachActive(fn func(p *person.Person)) {
	for _, queue := range b.floors {
		for _, p := range queue {
			fn(p)
		}
	}
	for _, e := range b.elevators {
		for _, p := range e.Passengers() {
			fn(p)
		}
	}
}
