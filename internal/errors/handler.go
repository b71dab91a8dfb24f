package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ColorProvider supplies the escape sequences used to highlight error output.
// It keeps this package independent from the ui package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleRunError prints a message describing why a run stopped and returns
// the matching exit code. A nil error prints nothing.
func HandleRunError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	var routineErr RoutineError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimed out: %v%s\n", colors.Yellow(), err, colors.Reset())
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled: %v%s\n", colors.Yellow(), err, colors.Reset())
	case errors.As(err, &routineErr):
		fmt.Fprintf(out, "%sRoutine failed: %s(%d): %v%s\n",
			colors.Red(), routineErr.Routine, routineErr.Size, routineErr.Cause, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}
	return ExitCodeFor(err)
}
