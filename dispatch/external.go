package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"elevsim/elevator"
	"elevsim/view"
)

// External drives a policy living in another executable, such as a trained network.
// The view is passed as JSON after "-i"; the program must print a JSON array holding one
// action per elevator: an integer delta, "open_up" or "open_down".
type External struct {
	Path    string
	Args    []string      // extra arguments placed before "-i"
	Timeout time.Duration // zero means no limit
}

func (x External) Decide(v view.View) ([]elevator.Action, error) {
	input, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("external policy: marshal view: %w", err)
	}

	ctx := context.Background()
	if x.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.Timeout)
		defer cancel()
	}
	args := append(append([]string{}, x.Args...), "-i", string(input))
	out, err := exec.CommandContext(ctx, x.Path, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("external policy %s: %w", x.Path, err)
	}

	var actions []elevator.Action
	if err := json.Unmarshal(out, &actions); err != nil {
		return nil, fmt.Errorf("external policy %s: decode output: %w", x.Path, err)
	}
	return actions, nil
}
