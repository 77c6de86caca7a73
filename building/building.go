// Package building runs the simulation: it owns every floor queue and elevator, advances time
// one tick at a time and asks a dispatch policy what each elevator should do next.
package building

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"elevsim/config"
	"elevsim/dispatch"
	"elevsim/elevator"
	"elevsim/person"
	"elevsim/util/logger"
	"elevsim/view"
)

var (
	ErrTickInProgress = errors.New("a tick is already in progress")
	ErrActionCount    = errors.New("policy returned the wrong number of actions")
)

// Building is a single simulation instance. It is not safe for concurrent use beyond the
// tick guard: independent instances share nothing and may run in parallel.
type Building struct {
	cfg        config.SimConfig
	policy     dispatch.Policy
	distribute Distributor

	rng      *rand.Rand
	arrivals *arrivalProcess

	floors    [][]*person.Person
	elevators []*elevator.Elevator

	time            int
	totalArrivals   int
	delivered       int
	accumulatedCost float64

	state *fsm.FSM
	log   zerolog.Logger
}

// New validates cfg and builds an empty building with every elevator parked at floor 0.
func New(cfg config.SimConfig, policy dispatch.Policy) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, &config.ConfigurationError{Field: "policy", Reason: "no dispatch policy given"}
	}
	distribute, err := DistributorByName(cfg.Boarding)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	b := &Building{
		cfg:        cfg,
		policy:     policy,
		distribute: distribute,
		rng:        rng,
		arrivals:   newArrivalProcess(cfg.Rates(), rng),
		floors:     make([][]*person.Person, cfg.Floors),
		elevators:  make([]*elevator.Elevator, cfg.Elevators),
		log:        logger.GetLogger().With().Str("component", "building").Logger(),
	}
	for i := range b.elevators {
		b.elevators[i] = elevator.NewElevator(i, cfg.MaxFloor(), cfg.Speed, cfg.Capacity)
	}

	b.state = fsm.NewFSM(
		"idle",
		fsm.Events{
			{Name: "step", Src: []string{"idle"}, Dst: "stepping"},
			{Name: "settle", Src: []string{"stepping"}, Dst: "idle"},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				b.log.Trace().Int("time", b.time).Msgf("tick state %s -> %s", e.Src, e.Dst)
			},
		},
	)
	return b, nil
}

func (b *Building) Config() config.SimConfig {
	return b.cfg
}

func (b *Building) Time() int {
	return b.time
}

func (b *Building) NumFloors() int {
	return len(b.floors)
}

// Waiting is the number of people queued on floor.
func (b *Building) Waiting(floor int) int {
	return len(b.floors[floor])
}

// Locations lists the floor of every elevator.
func (b *Building) Locations() []int {
	locs := make([]int, len(b.elevators))
	for i, e := range b.elevators {
		locs[i] = e.Location()
	}
	return locs
}

// Loads lists the number of passengers in every elevator.
func (b *Building) Loads() []int {
	loads := make([]int, len(b.elevators))
	for i, e := range b.elevators {
		loads[i] = e.Count()
	}
	return loads
}

// Enqueue places a new person on origin's queue. It counts as an arrival.
func (b *Building) Enqueue(origin, destination int) (*person.Person, error) {
	if !b.state.Is("idle") {
		return nil, ErrTickInProgress
	}
	if origin < 0 || origin >= len(b.floors) || destination < 0 || destination >= len(b.floors) {
		return nil, &person.InvalidRouteError{Floor: origin}
	}
	p, err := person.New(origin, destination)
	if err != nil {
		return nil, err
	}
	b.floors[origin] = append(b.floors[origin], p)
	b.totalArrivals++
	return p, nil
}

// View is the restricted snapshot a policy would receive right now.
func (b *Building) View() view.View {
	return b.viewOf(nil)
}

// FlattenView encodes View as a fixed-length vector, see view.View.Flatten.
func (b *Building) FlattenView() []float64 {
	return b.View().Flatten()
}

// viewOf builds the view as if pending were already queued on their floors.
func (b *Building) viewOf(pending [][]*person.Person) view.View {
	v := view.View{
		Time:      b.time,
		NumFloors: len(b.floors),
		MaxSpeed:  b.cfg.Speed,
		Halls:     make([]view.HallCall, len(b.floors)),
		Elevators: make([]view.ElevatorView, len(b.elevators)),
	}
	for floor, queue := range b.floors {
		markHalls(&v.Halls[floor], floor, queue)
		if pending != nil {
			markHalls(&v.Halls[floor], floor, pending[floor])
		}
	}
	for i, e := range b.elevators {
		v.Elevators[i] = view.ElevatorView{
			Location:     e.Location(),
			Destinations: e.DestinationFlags(len(b.floors)),
			LastAction:   e.LastAction(),
			LastActive:   e.LastActive(),
			Heading:      e.Heading(),
			LastOpen:     e.LastOpen(),
			Bounds:       e.Bounds,
		}
	}
	return v
}

func markHalls(h *view.HallCall, floor int, queue []*person.Person) {
	for _, p := range queue {
		if p.GoingUp(floor) {
			h.Up = true
		} else {
			h.Down = true
		}
		if h.Up && h.Down {
			return
		}
	}
}
