package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/slserpent/flac-directory/internal/convert"
	"github.com/slserpent/flac-directory/internal/input"
	"github.com/slserpent/flac-directory/internal/job"
	"github.com/slserpent/flac-directory/internal/plan"
	"github.com/slserpent/flac-directory/internal/runner"
)

func Run(opts Options) (Result, error) {
	if strings.TrimSpace(opts.InputDir) == "" {
		return Result{}, fmt.Errorf("an input directory is required")
	}

	start := time.Now()

	conv := opts.Converter
	ffmpegInfo := convert.FFmpegInfo{}
	if conv == nil {
		info, err := convert.EnsureFFmpegAvailable(opts.FFmpegPath)
		if err != nil {
			return Result{}, err
		}
		ffmpegInfo = info
		conv = convert.NewFFmpegConverter(opts.FFmpegPath, opts.Overwrite, opts.Verbose)
	}

	direction := job.ToFLAC
	if opts.ToWAV {
		direction = job.ToWAV
	}

	paths, discoverWarns, err := input.Discover(opts.InputDir, opts.Recursive, direction.SourceExt())
	if err != nil {
		return Result{}, err
	}

	tasks := plan.BuildTasks(paths, direction)

	log := opts.Log
	if log == nil {
		log = io.Discard
	}
	if len(tasks) > 0 {
		fmt.Fprintf(log, "converting %d %s files to %s\n", len(tasks), direction.SourceExt(), direction.TargetExt())
	}

	summary := runner.Run(context.Background(), tasks, conv, runner.Options{
		Delete:    opts.Delete,
		Overwrite: opts.Overwrite,
		Log:       log,
	})

	result := Result{
		Total:      summary.Total,
		Converted:  summary.Converted,
		Skipped:    summary.Skipped,
		Failed:     summary.Failed,
		Deleted:    summary.Deleted,
		Warnings:   make([]string, 0),
		Failures:   make([]Failure, 0),
		Stats:      summary.Stats,
		FFmpegPath: ffmpegInfo.BinaryPath,
		FFmpegVer:  ffmpegInfo.Version,
	}
	result.Warnings = append(result.Warnings, discoverWarns...)
	for _, tr := range summary.Results {
		result.Warnings = append(result.Warnings, tr.Warnings...)
		if tr.Error != nil {
			result.Failures = append(result.Failures, Failure{Source: tr.Task.SourcePath, Reason: tr.Error.Error()})
		}
	}

	if len(tasks) == 0 {
		scope := opts.InputDir
		if opts.Recursive {
			scope += " and its subdirectories"
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("no %s files found in %s", direction.SourceExt(), scope))
	}

	result.Elapsed = time.Since(start)
	return result, nil
}
