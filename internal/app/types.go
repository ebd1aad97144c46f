package app

import (
	"io"
	"time"

	"github.com/slserpent/flac-directory/internal/convert"
	"github.com/slserpent/flac-directory/internal/stats"
)

type Options struct {
	InputDir   string
	Recursive  bool
	Delete     bool
	ToWAV      bool
	Overwrite  bool
	FFmpegPath string
	Verbose    bool
	// Log receives per-file status lines during the run. Defaults to discard.
	Log io.Writer
	// Converter overrides the ffmpeg invoker; when set, the ffmpeg preflight
	// is skipped. Used by tests.
	Converter convert.Converter
}

type Failure struct {
	Source string
	Reason string
}

type Result struct {
	Total      int
	Converted  int
	Skipped    int
	Failed     int
	Deleted    int
	Warnings   []string
	Failures   []Failure
	Stats      stats.Stats
	Elapsed    time.Duration
	FFmpegPath string
	FFmpegVer  string
}
