package plan

import (
	"path/filepath"
	"strings"

	"github.com/slserpent/flac-directory/internal/job"
)

// BuildTasks pairs each source path with a sibling target path carrying the
// direction's target extension. Sources matched the opposite extension during
// discovery, so a target never equals its source.
func BuildTasks(paths []string, direction job.Direction) []job.Task {
	tasks := make([]job.Task, 0, len(paths))
	for _, src := range paths {
		tasks = append(tasks, job.Task{
			SourcePath: src,
			TargetPath: replaceExt(src, direction.TargetExt()),
			Direction:  direction,
		})
	}
	return tasks
}

func replaceExt(name, ext string) string {
	baseExt := filepath.Ext(name)
	if baseExt == "" {
		return name + ext
	}
	return strings.TrimSuffix(name, baseExt) + ext
}
