package building

import (
	"context"
	"fmt"
	"slices"

	"elevsim/elevator"
	"elevsim/person"
	"elevsim/util"
)

// Tick reports what happened during one call to Step.
type Tick struct {
	Time     int
	Arrivals int
	Boarded  int
	Released int
	Cost     float64 // added to the accumulated cost this tick
	Actions  []elevator.Action
}

// Step advances the simulation by one tick. With arrivals false no new people appear.
//
// The policy's actions are validated before anything changes: when Step returns an error the
// building is exactly as it was before the call.
func (b *Building) Step(arrivals bool) (Tick, error) {
	if err := b.state.Event(context.Background(), "step"); err != nil {
		return Tick{}, fmt.Errorf("%w: %v", ErrTickInProgress, err)
	}
	defer func() {
		if err := b.state.Event(context.Background(), "settle"); err != nil {
			b.log.Error().Err(err).Msg("could not settle tick")
		}
	}()

	var pending [][]*person.Person
	if arrivals {
		pending = b.arrivals.draw(len(b.floors))
	}

	v := b.viewOf(pending)
	v.Time = b.time + 1
	actions, err := b.policy.Decide(v)
	if err != nil {
		b.log.Warn().Err(err).Int("time", v.Time).Msg("policy failed, tick rejected")
		return Tick{}, fmt.Errorf("tick %d: %w", v.Time, err)
	}
	if err := b.check(actions); err != nil {
		b.log.Warn().Err(err).Int("time", v.Time).Msg("tick rejected")
		return Tick{}, fmt.Errorf("tick %d: %w", v.Time, err)
	}

	tick := b.commit(pending, actions)
	b.log.Debug().
		Int("time", tick.Time).
		Int("arrivals", tick.Arrivals).
		Int("boarded", tick.Boarded).
		Int("released", tick.Released).
		Float64("cost", tick.Cost).
		Stringer("actions", actionList(tick.Actions)).
		Msg("tick")
	return tick, nil
}

func (b *Building) check(actions []elevator.Action) error {
	if len(actions) != len(b.elevators) {
		return fmt.Errorf("%w: got %d, want %d", ErrActionCount, len(actions), len(b.elevators))
	}
	for i, a := range actions {
		if err := b.elevators[i].Check(a); err != nil {
			return fmt.Errorf("elevator %d: %w", i, err)
		}
	}
	return nil
}

// commit applies a tick whose actions were already checked, so nothing here can fail.
func (b *Building) commit(pending [][]*person.Person, actions []elevator.Action) Tick {
	b.time++
	tick := Tick{Time: b.time, Actions: slices.Clone(actions)}

	for _, queue := range b.floors {
		for _, p := range queue {
			p.AdvanceTick()
		}
	}
	for _, e := range b.elevators {
		e.AgePassengers()
	}

	for floor, arrived := range pending {
		b.floors[floor] = append(b.floors[floor], arrived...)
		tick.Arrivals += len(arrived)
	}
	b.totalArrivals += tick.Arrivals

	opening := make(map[int][]int)
	for i, a := range actions {
		if a.IsOpen() {
			opening[b.elevators[i].Location()] = append(opening[b.elevators[i].Location()], i)
			continue
		}
		if err := b.elevators[i].MoveBy(a.Delta); err != nil {
			b.log.Error().Err(err).Int("elevator", i).Msg("checked move failed")
		}
	}

	for floor := range b.floors {
		if idx, ok := opening[floor]; ok {
			b.resolveDoors(floor, idx, actions, &tick)
		}
	}

	if b.cfg.DistributionWeight > 0 {
		extra := b.cfg.DistributionWeight * b.distributionCost()
		b.accumulatedCost += extra
		tick.Cost += extra
	}
	return tick
}

// resolveDoors lets passengers off every elevator opening on floor, then boards the people
// waiting there onto the elevators announcing their direction.
func (b *Building) resolveDoors(floor int, idx []int, actions []elevator.Action, tick *Tick) {
	var up, down []*elevator.Elevator
	for _, i := range idx {
		e := b.elevators[i]
		if err := e.OpenDoors(actions[i]); err != nil {
			b.log.Error().Err(err).Int("elevator", i).Msg("checked door-open failed")
			continue
		}
		cost, released := e.Release()
		b.accumulatedCost += cost
		b.delivered += len(released)
		tick.Cost += cost
		tick.Released += len(released)

		if actions[i].Direction() == elevator.DirectionUp {
			up = append(up, e)
		} else {
			down = append(down, e)
		}
	}

	goingUp, goingDown := util.Partition(b.floors[floor], func(p *person.Person) bool {
		return p.GoingUp(floor)
	})
	restUp := b.board(goingUp, up)
	restDown := b.board(goingDown, down)
	tick.Boarded += len(goingUp) - len(restUp) + len(goingDown) - len(restDown)

	rest := append(restUp, restDown...)
	slices.SortStableFunc(rest, func(x, y *person.Person) int {
		return y.WaitTime - x.WaitTime
	})
	b.floors[floor] = rest
}

func (b *Building) board(group []*person.Person, open []*elevator.Elevator) []*person.Person {
	if len(group) == 0 || len(open) == 0 {
		return group
	}
	return b.distribute(group, open)
}

type actionList []elevator.Action

func (l actionList) String() string {
	return fmt.Sprint([]elevator.Action(l))
}
