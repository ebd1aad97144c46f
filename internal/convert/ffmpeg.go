package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/slserpent/flac-directory/internal/job"
)

var execCommandContext = exec.CommandContext
var execLookPath = exec.LookPath

type FFmpegInfo struct {
	BinaryPath string
	Version    string
}

type FFmpegConverter struct {
	FFmpegPath string
	Overwrite  bool
	Verbose    bool
}

func NewFFmpegConverter(ffmpegPath string, overwrite, verbose bool) *FFmpegConverter {
	return &FFmpegConverter{
		FFmpegPath: ffmpegPath,
		Overwrite:  overwrite,
		Verbose:    verbose,
	}
}

func EnsureFFmpegAvailable(ffmpegPath string) (FFmpegInfo, error) {
	bin := strings.TrimSpace(ffmpegPath)
	if bin == "" {
		bin = "ffmpeg"
	}
	resolved, err := execLookPath(bin)
	if err != nil {
		return FFmpegInfo{}, fmt.Errorf("ffmpeg not found (%s). %s; or point --ffmpeg-path at the binary", bin, installHint(runtime.GOOS))
	}

	version, err := detectFFmpegVersion(resolved)
	if err != nil {
		// A failed version probe is not worth blocking the run over.
		version = ""
	}
	return FFmpegInfo{BinaryPath: resolved, Version: version}, nil
}

func (f *FFmpegConverter) Convert(ctx context.Context, task job.Task) job.Result {
	res := job.Result{Task: task, Warnings: make([]string, 0)}

	bin := strings.TrimSpace(f.FFmpegPath)
	if bin == "" {
		bin = "ffmpeg"
	}

	args := []string{"-i", task.SourcePath}
	if task.Direction == job.ToFLAC {
		args = append(args, "-c:a", "flac")
	}
	args = append(args, task.TargetPath)
	// The caller already decided skip-vs-replace, but the guard still goes on
	// the command line so a target appearing mid-run cannot be clobbered.
	if f.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}

	cmd := execCommandContext(ctx, bin, args...)
	stderr := bytes.NewBuffer(nil)
	cmd.Stderr = stderr
	if f.Verbose {
		cmd.Stdout = os.Stdout
	}

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = err.Error()
		}
		res.Error = fmt.Errorf("ffmpeg conversion failed: %s", reason)
		return res
	}

	if _, err := os.Stat(task.TargetPath); err != nil {
		res.Error = fmt.Errorf("ffmpeg exited cleanly but produced no output: %s", task.TargetPath)
	}
	return res
}

func detectFFmpegVersion(binPath string) (string, error) {
	cmd := execCommandContext(context.Background(), binPath, "-version")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running ffmpeg -version: %w", err)
	}
	line := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	if line == "" {
		return "", fmt.Errorf("reading ffmpeg version: empty output")
	}
	ver, ok := extractVersionToken(line)
	if !ok {
		return "", fmt.Errorf("unrecognized ffmpeg version line: %s", line)
	}
	return ver, nil
}

// extractVersionToken pulls the token after "version" out of a banner line
// such as "ffmpeg version 6.1.1 Copyright (c) 2000-2023 ...".
func extractVersionToken(line string) (string, bool) {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f != "version" || i+1 >= len(fields) {
			continue
		}
		tok := strings.TrimPrefix(fields[i+1], "n")
		if tok == "" || tok[0] < '0' || tok[0] > '9' {
			return "", false
		}
		return tok, true
	}
	return "", false
}

func installHint(goos string) string {
	switch goos {
	case "darwin":
		return "try: brew install ffmpeg"
	case "windows":
		return "try: scoop install ffmpeg (or choco install ffmpeg)"
	default:
		return "try: sudo apt-get install ffmpeg (or your system package manager)"
	}
}
