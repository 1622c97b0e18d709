// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package batch runs document analysis across many files with a bounded
// worker pool. Analysis components are stateless, so workers share one
// pipeline configuration and never contend on locks. One unreadable or
// unextractable file never fails the batch; its result carries the error
// or skip reason and the remaining files proceed.
package batch

import (
	"runtime"
	"sync"

	"casetrace/internal/core"
	"casetrace/internal/observability"
)

// FileResult is the per-file outcome of a batch run.
type FileResult struct {
	FilePath string
	Result   *core.AnalyzeResult
	Err      error
}

// Stats summarizes a batch run.
type Stats struct {
	ProcessedFiles int
	SkippedFiles   int
	FailedFiles    int
}

// Processor fans analysis out over a worker pool.
type Processor struct {
	workers  int
	observer *observability.Observer
}

// NewProcessor creates a batch processor. workers <= 0 selects one worker
// per CPU.
func NewProcessor(workers int, observer *observability.Observer) *Processor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{workers: workers, observer: observer}
}

// Process analyzes every file using cfg as the template configuration and
// returns per-file results in input order.
func (p *Processor) Process(files []string, cfg core.AnalyzeConfig) ([]FileResult, Stats) {
	// Scoring calibration writes the shared scoring table; it must finish
	// before the first worker reads a score.
	core.CalibrateScoring(cfg)

	results := make([]FileResult, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fileCfg := cfg
				fileCfg.FilePath = files[i]
				result, err := core.AnalyzeFile(fileCfg)
				results[i] = FileResult{FilePath: files[i], Result: result, Err: err}
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var stats Stats
	for _, r := range results {
		switch {
		case r.Err != nil:
			stats.FailedFiles++
			if p.observer != nil {
				p.observer.Warn("file failed", "file", r.FilePath, "error", r.Err)
			}
		case r.Result.Bundle.Skipped():
			stats.SkippedFiles++
			stats.ProcessedFiles++
			if p.observer != nil {
				p.observer.Debug("file skipped", "file", r.FilePath, "reason", r.Result.Bundle.SkippedReason)
			}
		default:
			stats.ProcessedFiles++
		}
	}

	return results, stats
}
