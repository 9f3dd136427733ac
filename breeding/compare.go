// SPDX-License-Identifier: MIT

package breeding

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Compare runs p once per strategy, concurrently, and returns the results
// keyed by strategy. Each run gets its own generator seeded from p.Seed, so
// every entry equals the sequential Run with p.Strategy set to that key.
// An empty strategies list means Strategies. The first failure cancels the
// remaining runs.
func Compare(ctx context.Context, p Params, strategies ...Strategy) (map[Strategy]*Result, error) {
	if len(strategies) == 0 {
		strategies = Strategies
	}
	for _, s := range strategies {
		if !s.valid() {
			return nil, fmt.Errorf("%w: %w %d", ErrInvalidParams, ErrUnknownStrategy, int(s))
		}
	}

	var (
		mu  sync.Mutex
		out = make(map[Strategy]*Result, len(strategies))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range strategies {
		run := p
		run.Strategy = s
		g.Go(func() error {
			res, err := Run(run, WithContext(gctx))
			if err != nil {
				return fmt.Errorf("breeding: compare %s: %w", run.Strategy, err)
			}
			mu.Lock()
			out[run.Strategy] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
