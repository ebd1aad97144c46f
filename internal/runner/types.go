package runner

import (
	"github.com/slserpent/flac-directory/internal/job"
	"github.com/slserpent/flac-directory/internal/stats"
)

// Status is the terminal state of one task. Tasks are never retried.
type Status int

const (
	StatusSkipped Status = iota
	StatusConverted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusConverted:
		return "converted"
	default:
		return "failed"
	}
}

type TaskResult struct {
	Task           job.Task
	Status         Status
	OriginalBytes  int64
	ConvertedBytes int64
	SourceDeleted  bool
	Warnings       []string
	Error          error
}

type Summary struct {
	Total     int
	Converted int
	Skipped   int
	Failed    int
	Deleted   int
	Results   []TaskResult
	Stats     stats.Stats
}
