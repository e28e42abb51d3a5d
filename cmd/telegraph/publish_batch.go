package main

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/config"
)

// PublishResult holds the outcome of publishing a single source file.
type PublishResult struct {
	SourcePath string
	Path       string
	URL        string
	Err        error
	Duration   time.Duration
}

// publishBatch publishes files concurrently through a bounded worker
// group. The client is safe for concurrent use, so workers share it.
func publishBatch(ctx context.Context, params *publishParams, sources []string, workers int) []PublishResult {
	if len(sources) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(sources) {
		concurrency = len(sources)
	}

	results := make([]PublishResult, len(sources))
	var wg sync.WaitGroup
	jobs := make(chan int, len(sources))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PublishResult{
						SourcePath: sources[idx],
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = publishOne(ctx, params, sources[idx])
			}
		}()
	}

	for i := range sources {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// publishOne converts and publishes a single file.
func publishOne(ctx context.Context, params *publishParams, src string) PublishResult {
	start := time.Now()
	result := PublishResult{SourcePath: src}

	title, nodes, err := sourceToPage(src, params.title)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	pageParams := telegraph.PageParams{Title: title, Content: nodes}

	var page *telegraph.Page
	if params.edit != "" {
		page, err = params.client.EditPage(ctx, params.edit, pageParams)
	} else {
		page, err = params.client.CreatePage(ctx, pageParams)
	}
	if err != nil {
		result.Err = withHint(err)
		result.Duration = time.Since(start)
		return result
	}

	result.Path = page.Path
	result.URL = page.URL
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed publishes.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed publishes.
func countResults(results []PublishResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printPublishResults outputs publish results using the provided writers.
func printPublishResults(results []PublishResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.SourcePath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.SourcePath, r.URL, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Published %s\n", r.URL)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the publish concurrency.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	// Explicit flag or config value takes priority
	if configured > 0 {
		return configured
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
