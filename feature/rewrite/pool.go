package rewrite

import (
	"context"
	"sync"
)

// Task is one unit of rewrite work owning a single output target (a full
// dataset file or a chunk set) exclusively for its duration.
type Task struct {
	// Name identifies the output target in results and logs.
	Name string
	// Run performs the write.
	Run func(ctx context.Context) error
}

// Result is the outcome of one task. Failures are isolated: a failing
// target never blocks or masks another target's write.
type Result struct {
	// Name is the task's target name.
	Name string
	// Err is the task failure, nil on success.
	Err error
}

// RunAll dispatches every task onto a fixed-size worker pool and waits for
// all of them to finish. Each task reports into its own result slot, so one
// result is returned per task, in task order.
func RunAll(ctx context.Context, workers int, tasks []Task) []Result {
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(tasks))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(i int, task Task) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = Result{Name: task.Name, Err: task.Run(ctx)}
		}(i, task)
	}
	wg.Wait()

	return results
}

// Failed filters the results down to the failing tasks.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
