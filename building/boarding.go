package building

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"elevsim/elevator"
	"elevsim/person"
	"elevsim/util"
	"elevsim/util/logger"
)

// Distributor boards a direction group of waiting people onto the elevators that opened in
// that direction and returns whoever is left behind, in their original order.
type Distributor func(group []*person.Person, open []*elevator.Elevator) []*person.Person

var ErrUnknownBoarding = errors.New("unknown boarding distributor")

var distributors = map[string]Distributor{
	"least-loaded": LeastLoaded,
	"round-robin":  RoundRobin,
	"fill-first":   FillFirst,
}

// DistributorByName resolves a boarding distributor. The empty name is least-loaded.
func DistributorByName(name string) (Distributor, error) {
	if name == "" {
		return LeastLoaded, nil
	}
	d, ok := distributors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoarding, name)
	}
	return d, nil
}

// LeastLoaded repeatedly offers the next person to the opening elevator holding the fewest
// passengers, lowest index first on ties, until the group is empty or every elevator is full.
func LeastLoaded(group []*person.Person, open []*elevator.Elevator) []*person.Person {
	for len(group) > 0 {
		room := util.Filter(open, func(e *elevator.Elevator) bool { return !e.Full() })
		if len(room) == 0 {
			break
		}
		target := room[0]
		for _, e := range room[1:] {
			if e.Count() < target.Count() {
				target = e
			}
		}
		group = boardOne(target, group)
	}
	return group
}

// RoundRobin offers one person at a time to each opening elevator in turn, skipping full ones.
func RoundRobin(group []*person.Person, open []*elevator.Elevator) []*person.Person {
	for len(group) > 0 {
		boarded := false
		for _, e := range open {
			if len(group) == 0 {
				break
			}
			if e.Full() {
				continue
			}
			group = boardOne(e, group)
			boarded = true
		}
		if !boarded {
			break
		}
	}
	return group
}

// FillFirst fills the fullest opening elevator before moving on to the next.
func FillFirst(group []*person.Person, open []*elevator.Elevator) []*person.Person {
	order := slices.Clone(open)
	slices.SortStableFunc(order, func(x, y *elevator.Elevator) int {
		return y.Count() - x.Count()
	})
	for _, e := range order {
		if len(group) == 0 {
			break
		}
		added, rest := e.AddPassengers(group, len(group))
		for _, p := range added {
			traceBoarding(e, p)
		}
		group = rest
	}
	return group
}

func boardOne(e *elevator.Elevator, group []*person.Person) []*person.Person {
	added, rest := e.AddPassengers(group, 1)
	for _, p := range added {
		traceBoarding(e, p)
	}
	return rest
}

func traceBoarding(e *elevator.Elevator, p *person.Person) {
	logger.GetLogger().Trace().
		Int("elevator", e.ID).
		Int("floor", e.Location()).
		Str("person", p.ID.String()).
		Int("destination", p.Destination).
		Msg("boarded")
}
