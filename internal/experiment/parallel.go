package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/models"
)

// runParallel executes tasks with at most maxParallelRuns in flight. Every
// task writes only its own slot, and results are read after all tasks join.
func (h *Harness) runParallel(ctx context.Context, inst *models.Instance, iterations int, tasks []task, slots [][]models.RunResult) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	semaphore := make(chan struct{}, h.maxParallelRuns)
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	for _, t := range tasks {
		wg.Add(1)
		go func(t task) {
			defer wg.Done()

			// Acquire semaphore
			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-semaphore }()

			res, err := h.execute(ctx, inst, iterations, t)
			if err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			slots[t.algIdx][t.run] = res
		}(t)
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	// Tasks skipped while waiting on the semaphore leave no error behind
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("experiment cancelled: %w", err)
	}
	return nil
}
