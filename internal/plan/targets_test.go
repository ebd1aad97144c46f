package plan

import (
	"path/filepath"
	"testing"

	"github.com/slserpent/flac-directory/internal/job"
	"github.com/stretchr/testify/require"
)

func TestBuildTasksSwapsExtensionToFLAC(t *testing.T) {
	src := filepath.Join("music", "a.wav")
	tasks := BuildTasks([]string{src}, job.ToFLAC)
	require.Len(t, tasks, 1)
	require.Equal(t, src, tasks[0].SourcePath)
	require.Equal(t, filepath.Join("music", "a.flac"), tasks[0].TargetPath)
	require.Equal(t, job.ToFLAC, tasks[0].Direction)
}

func TestBuildTasksSwapsExtensionToWAV(t *testing.T) {
	tasks := BuildTasks([]string{filepath.Join("m", "b.flac")}, job.ToWAV)
	require.Len(t, tasks, 1)
	require.Equal(t, filepath.Join("m", "b.wav"), tasks[0].TargetPath)
}

func TestBuildTasksTargetNeverEqualsSource(t *testing.T) {
	srcs := []string{"a.wav", filepath.Join("x", "b.WAV"), filepath.Join("x", "y", "c.wav")}
	for _, task := range BuildTasks(srcs, job.ToFLAC) {
		require.NotEqual(t, task.SourcePath, task.TargetPath)
		require.Equal(t, ".flac", filepath.Ext(task.TargetPath))
	}
}

func TestBuildTasksKeepsDiscoveryOrder(t *testing.T) {
	srcs := []string{"a.wav", "b.wav", "c.wav"}
	tasks := BuildTasks(srcs, job.ToFLAC)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		require.Equal(t, srcs[i], task.SourcePath)
	}
}
