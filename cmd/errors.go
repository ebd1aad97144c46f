package cmd

import "errors"

var errUsage = errors.New("an input directory is required")

// IsReportedError reports whether err was already shown to the user, so the
// fatal-error emitter in main should stay quiet.
func IsReportedError(err error) bool {
	return errors.Is(err, errUsage)
}
