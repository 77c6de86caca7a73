package building

import (
	"fmt"
	"io"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"elevsim/person"
)

// Summary condenses a run so far.
type Summary struct {
	Ticks           int     `json:"ticks" yaml:"ticks"`
	TotalArrivals   int     `json:"total_arrivals" yaml:"total_arrivals"`
	Delivered       int     `json:"delivered" yaml:"delivered"`
	Active          int     `json:"active" yaml:"active"`
	AccumulatedCost float64 `json:"accumulated_cost" yaml:"accumulated_cost"`
	CumulativeCost  float64 `json:"cumulative_cost" yaml:"cumulative_cost"`
	AverageCost     float64 `json:"average_cost" yaml:"average_cost"` // cumulative cost per arrival
}

func (b *Building) Summary() Summary {
	s := Summary{
		Ticks:           b.time,
		TotalArrivals:   b.totalArrivals,
		Delivered:       b.delivered,
		AccumulatedCost: b.accumulatedCost,
		CumulativeCost:  b.CumulativeCost(),
	}
	b.eachActive(func(*person.Person) { s.Active++ })
	if s.TotalArrivals > 0 {
		s.AverageCost = s.CumulativeCost / float64(s.TotalArrivals)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("ticks=%d arrivals=%d delivered=%d active=%d cost=%.1f cumulative=%.1f average=%.3f",
		s.Ticks, s.TotalArrivals, s.Delivered, s.Active, s.AccumulatedCost, s.CumulativeCost, s.AverageCost)
}

// ActivePeople returns a detached copy of everyone still tracked: floor queues first, from
// floor 0 up, then elevator passengers in elevator order.
func (b *Building) ActivePeople() ([]*person.Person, error) {
	var live []*person.Person
	b.eachActive(func(p *person.Person) {
		live = append(live, p)
	})

	var snapshot []*person.Person
	if err := deepcopy.Copy(&snapshot, live); err != nil {
		return nil, fmt.Errorf("snapshot active people: %w", err)
	}
	return snapshot, nil
}

// Drain steps without arrivals until nobody is left or maxTicks ticks have run.
// It returns the number of ticks it ran.
func (b *Building) Drain(maxTicks int) (int, error) {
	ticks := 0
	for ticks < maxTicks && b.activeCount() > 0 {
		if _, err := b.Step(false); err != nil {
			return ticks, err
		}
		ticks++
	}
	return ticks, nil
}

func (b *Building) activeCount() int {
	n := 0
	b.eachActive(func(*person.Person) { n++ })
	return n
}

// Print renders one row per floor, from floor 0 up, with the people waiting there and any
// elevator parked there, followed by the time and cumulative cost.
func Print(w io.Writer, b *Building) error {
	var sb strings.Builder
	sb.WriteString("========\n")
	for floor, queue := range b.floors {
		row := fmt.Sprintf("floor %02d | %s", floor, people(queue))
		fmt.Fprintf(&sb, "%-50s| ", row)
		for i, e := range b.elevators {
			if e.Location() == floor {
				fmt.Fprintf(&sb, "[E%d] %s ", i, people(e.Passengers()))
			}
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "(time=%d, cost=%g)\n", b.time, b.CumulativeCost())
	sb.WriteString("========\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func people(ps []*person.Person) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
