package convert

import (
	"context"

	"github.com/slserpent/flac-directory/internal/job"
)

type Converter interface {
	Convert(ctx context.Context, task job.Task) job.Result
}
