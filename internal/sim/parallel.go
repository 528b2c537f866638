package sim

import (
	"context"
	"sync"

	"github.com/san-kum/velosim/internal/vehicle"
)

// Sweep runs the same scenario once per parameter set, each on its own
// goroutine. Controllers are stateful, so a fresh one is built per run.
type Sweep struct {
	params        []vehicle.Params
	newController func() Controller
}

func NewSweep(params []vehicle.Params, newController func() Controller) *Sweep {
	return &Sweep{params: params, newController: newController}
}

func (s *Sweep) Run(ctx context.Context, start vehicle.Pose, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(s.params))
	errs := make([]error, len(s.params))

	var wg sync.WaitGroup
	for i, p := range s.params {
		wg.Add(1)
		go func(idx int, params vehicle.Params) {
			defer wg.Done()

			model, err := vehicle.New(params)
			if err != nil {
				errs[idx] = err
				return
			}

			results[idx], errs[idx] = New(model, s.newController()).Run(ctx, start, cfg)
		}(i, p)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
