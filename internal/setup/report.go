package setup

import (
	"fmt"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
)

// Report accumulates setup problems in the order they were found.
type Report struct {
	lines []string
}

// Addf appends a formatted problem.
func (r *Report) Addf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the collected problems.
func (r *Report) Lines() []string {
	return append([]string(nil), r.lines...)
}

// Empty reports whether no problem was collected.
func (r *Report) Empty() bool {
	return len(r.lines) == 0
}

// Err returns nil for an empty report, otherwise a *errors.SetupError
// holding every line.
func (r *Report) Err() error {
	if r.Empty() {
		return nil
	}
	return &kerrors.SetupError{Lines: r.Lines()}
}
