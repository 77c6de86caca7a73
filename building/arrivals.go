package building

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"elevsim/person"
)

// arrivalProcess draws Poisson arrivals per floor. Floors with rate 0 never draw, so a
// silent floor does not consume randomness.
type arrivalProcess struct {
	floors []distuv.Poisson
	rng    *rand.Rand
}

func newArrivalProcess(rates []float64, rng *rand.Rand) *arrivalProcess {
	ap := &arrivalProcess{floors: make([]distuv.Poisson, len(rates)), rng: rng}
	for floor, rate := range rates {
		ap.floors[floor] = distuv.Poisson{Lambda: rate, Src: rng}
	}
	return ap
}

// draw returns the people arriving on each floor this tick. Nothing is queued yet.
func (ap *arrivalProcess) draw(numFloors int) [][]*person.Person {
	pending := make([][]*person.Person, numFloors)
	for floor, dist := range ap.floors {
		if dist.Lambda <= 0 {
			continue
		}
		n := int(dist.Rand())
		for i := 0; i < n; i++ {
			p, err := person.NewRandom(floor, numFloors, ap.rng)
			if err != nil {
				// validated configs always have at least two floors
				continue
			}
			pending[floor] = append(pending[floor], p)
		}
	}
	return pending
}
