// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner fans conversion tasks out across a fixed-size worker pool.
package runner

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/office-convert/pkg/types"
)

// Converter is the subset of the conversion API the runner needs. The
// production implementation is convert.Converter.
type Converter interface {
	// Do converts a single task and reports the structured outcome.
	Do(ctx context.Context, task types.Task) types.Result
}

// Summary aggregates the outcome of a batch run. Results preserves the
// input task order regardless of completion order.
type Summary struct {
	Total     int
	Converted int
	Failed    int
	Results   []types.Result
}

// HasFailures reports whether any task failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run converts tasks concurrently with at most jobs workers, writing a
// per-file status line to w as each task finishes. Concurrent calls are
// safe: every conversion owns a uniquely named work directory, so workers
// never share mutable state beyond the converter's read-only configuration.
func Run(ctx context.Context, jobs int, tasks []types.Task, c Converter, w io.Writer) Summary {
	if jobs < 1 {
		jobs = 1
	}
	if len(tasks) == 0 {
		return Summary{}
	}

	type indexed struct {
		idx int
		res types.Result
	}

	workCh := make(chan int)
	resultCh := make(chan indexed, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				resultCh <- indexed{idx: idx, res: c.Do(ctx, tasks[idx])}
			}
		}()
	}

	go func() {
		for i := range tasks {
			workCh <- i
		}
		close(workCh)
		wg.Wait()
		close(resultCh)
	}()

	summary := Summary{Total: len(tasks), Results: make([]types.Result, len(tasks))}
	for item := range resultCh {
		summary.Results[item.idx] = item.res
		if item.res.Success {
			summary.Converted++
			fmt.Fprintf(w, "converted: %s -> %s\n", item.res.Task.Source, item.res.Task.Destination)
		} else {
			summary.Failed++
			fmt.Fprintf(w, "failed:    %s (%s)\n", item.res.Task.Source, failureReason(item.res))
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		summary.Converted, summary.Failed, summary.Total)
	return summary
}

// failureReason picks the most informative short diagnostic for a failed
// result.
func failureReason(res types.Result) string {
	if res.Stderr != "" {
		return res.Stderr
	}
	if res.ExitCode > 0 {
		return fmt.Sprintf("exit status %d", res.ExitCode)
	}
	return "no output produced"
}
