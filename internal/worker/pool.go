package worker

import (
	"context"
	"sync"
)

// Pool runs jobs with bounded concurrency.
type Pool struct {
	workers int
}

// NewPool creates a pool with the specified number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes fn for every index in [0, n) across the pool's workers.
// fn writes its own result (index-addressed), so output order matches
// input order regardless of scheduling. Run returns early when ctx is
// cancelled; jobs not yet started are skipped.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		// select picks randomly among ready cases, so a cancelled
		// context could still launch jobs without this check.
		if ctx.Err() != nil {
			break
		}

		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(ctx, i)
		}(i)
	}

	wg.Wait()
}
