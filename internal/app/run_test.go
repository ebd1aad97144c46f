package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/slserpent/flac-directory/internal/input"
	"github.com/slserpent/flac-directory/internal/job"
	"github.com/stretchr/testify/require"
)

type stubConverter struct{}

func (s *stubConverter) Convert(ctx context.Context, task job.Task) job.Result {
	if filepath.Base(task.SourcePath) == "bad.wav" {
		return job.Result{Task: task, Error: fmt.Errorf("boom")}
	}
	if err := os.WriteFile(task.TargetPath, []byte("fla"), 0o644); err != nil {
		return job.Result{Task: task, Error: err}
	}
	return job.Result{Task: task}
}

func writeWAV(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("w"), size), 0o644))
}

func TestRunNonRecursiveConvertsDirectChildrenOnly(t *testing.T) {
	tmp := t.TempDir()
	writeWAV(t, filepath.Join(tmp, "a.wav"), 10)
	writeWAV(t, filepath.Join(tmp, "sub", "b.wav"), 5)

	res, err := Run(Options{InputDir: tmp, Converter: &stubConverter{}})
	require.NoError(t, err)
	require.Equal(t, 1, res.Converted)
	require.Equal(t, int64(10), res.Stats.OriginalBytes)

	_, statErr := os.Stat(filepath.Join(tmp, "a.flac"))
	require.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(tmp, "sub", "b.flac"))
	require.True(t, os.IsNotExist(statErr))
}

func TestRunRecursiveConvertsEveryDepth(t *testing.T) {
	tmp := t.TempDir()
	writeWAV(t, filepath.Join(tmp, "a.wav"), 10)
	writeWAV(t, filepath.Join(tmp, "sub", "b.wav"), 5)

	res, err := Run(Options{InputDir: tmp, Recursive: true, Converter: &stubConverter{}})
	require.NoError(t, err)
	require.Equal(t, 2, res.Converted)
	require.Equal(t, int64(15), res.Stats.OriginalBytes)
	require.Equal(t, int64(6), res.Stats.ConvertedBytes)
}

func TestRunCollectsFailuresAndContinues(t *testing.T) {
	tmp := t.TempDir()
	writeWAV(t, filepath.Join(tmp, "a.wav"), 10)
	writeWAV(t, filepath.Join(tmp, "bad.wav"), 5)

	res, err := Run(Options{InputDir: tmp, Converter: &stubConverter{}})
	require.NoError(t, err)
	require.Equal(t, 1, res.Converted)
	require.Equal(t, 1, res.Failed)
	require.Len(t, res.Failures, 1)
	require.Equal(t, filepath.Join(tmp, "bad.wav"), res.Failures[0].Source)
}

func TestRunToWAVDirection(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.flac"), []byte("fl"), 0o644))
	writeWAV(t, filepath.Join(tmp, "ignored.wav"), 4)

	res, err := Run(Options{InputDir: tmp, ToWAV: true, Converter: &stubConverter{}})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	_, statErr := os.Stat(filepath.Join(tmp, "a.wav"))
	require.NoError(t, statErr)
}

func TestRunInvalidDirectoryIsFatal(t *testing.T) {
	_, err := Run(Options{
		InputDir:  filepath.Join(t.TempDir(), "missing"),
		Converter: &stubConverter{},
	})
	require.ErrorIs(t, err, input.ErrNotDirectory)
}

func TestRunRequiresInputDir(t *testing.T) {
	_, err := Run(Options{Converter: &stubConverter{}})
	require.Error(t, err)
}

func TestRunEmptyDirectoryWarnsWithoutStats(t *testing.T) {
	res, err := Run(Options{InputDir: t.TempDir(), Converter: &stubConverter{}})
	require.NoError(t, err)
	require.Equal(t, 0, res.Total)
	require.Equal(t, 0, res.Stats.Files)
	require.Len(t, res.Warnings, 1)
	require.Contains(t, res.Warnings[0], "no .wav files found")
}

func TestRunSkipReportedWithoutStatisticsEntry(t *testing.T) {
	tmp := t.TempDir()
	writeWAV(t, filepath.Join(tmp, "a.wav"), 10)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.flac"), []byte("old"), 0o644))

	log := bytes.NewBuffer(nil)
	res, err := Run(Options{InputDir: tmp, Delete: true, Converter: &stubConverter{}, Log: log})
	require.NoError(t, err)
	require.Equal(t, 1, res.Skipped)
	require.Equal(t, 0, res.Stats.Files)
	require.Contains(t, log.String(), "skip: ")

	// Source retained even though delete was requested.
	_, statErr := os.Stat(filepath.Join(tmp, "a.wav"))
	require.NoError(t, statErr)
}
