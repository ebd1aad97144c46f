package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/slserpent/flac-directory/internal/convert"
	"github.com/slserpent/flac-directory/internal/job"
)

type Options struct {
	Delete    bool
	Overwrite bool
	// Log receives a status line as each task settles, so the operator sees
	// progress during long batches. Defaults to io.Discard.
	Log io.Writer
}

// Run processes tasks sequentially, one file converted, post-processed and
// accounted for before the next begins. A failed task never aborts the batch.
func Run(ctx context.Context, tasks []job.Task, c convert.Converter, opts Options) Summary {
	log := opts.Log
	if log == nil {
		log = io.Discard
	}

	summary := Summary{Total: len(tasks), Results: make([]TaskResult, 0, len(tasks))}

	for _, task := range tasks {
		tr := runTask(ctx, task, c, opts, log)
		switch tr.Status {
		case StatusSkipped:
			summary.Skipped++
		case StatusConverted:
			summary.Converted++
			summary.Stats.Add(tr.OriginalBytes, tr.ConvertedBytes)
			if tr.SourceDeleted {
				summary.Deleted++
			}
		case StatusFailed:
			summary.Failed++
		}
		summary.Results = append(summary.Results, tr)
	}
	return summary
}

func runTask(ctx context.Context, task job.Task, c convert.Converter, opts Options, log io.Writer) TaskResult {
	tr := TaskResult{Task: task, Warnings: make([]string, 0)}

	// Pre-existing targets are skipped unless overwrite was requested; a skip
	// keeps the source regardless of the delete flag.
	if !opts.Overwrite {
		if _, err := os.Stat(task.TargetPath); err == nil {
			tr.Status = StatusSkipped
			fmt.Fprintf(log, "skip: %s (target exists and overwrite is disabled)\n", task.SourcePath)
			return tr
		}
	}

	srcInfo, err := os.Stat(task.SourcePath)
	if err != nil {
		tr.Status = StatusFailed
		tr.Error = fmt.Errorf("reading source: %w", err)
		fmt.Fprintf(log, "fail: %s -> %s\n", task.SourcePath, tr.Error)
		return tr
	}

	fmt.Fprintf(log, "converting %s to %s\n", task.SourcePath, task.TargetPath)
	res := c.Convert(ctx, task)
	tr.Warnings = append(tr.Warnings, res.Warnings...)
	if res.Error != nil {
		tr.Status = StatusFailed
		tr.Error = res.Error
		fmt.Fprintf(log, "fail: %s -> %s\n", task.SourcePath, res.Error)
		return tr
	}

	dstInfo, err := os.Stat(task.TargetPath)
	if err != nil {
		tr.Status = StatusFailed
		tr.Error = fmt.Errorf("output missing after conversion: %s", task.TargetPath)
		fmt.Fprintf(log, "fail: %s -> %s\n", task.SourcePath, tr.Error)
		return tr
	}

	tr.Status = StatusConverted
	tr.OriginalBytes = srcInfo.Size()
	tr.ConvertedBytes = dstInfo.Size()

	if opts.Delete {
		if err := os.Remove(task.SourcePath); err != nil {
			warn := fmt.Sprintf("could not delete %s: %v", task.SourcePath, err)
			tr.Warnings = append(tr.Warnings, warn)
			fmt.Fprintf(log, "warn: %s\n", warn)
		} else {
			tr.SourceDeleted = true
			fmt.Fprintf(log, "deleted original file: %s\n", task.SourcePath)
		}
	}
	return tr
}
