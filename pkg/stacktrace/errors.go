package stacktrace

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/errbase"
)

// ParseErrStackTrace attempts to parse the stack trace from the provided error.
//
// Supported error types are those that implement the [github.com/cockroachdb/errors/errbase.StackTraceProvider] interface,
// anywhere in the chain of err.
func ParseErrStackTrace(err error) (*StackTrace, bool) {
	var errStack errbase.StackTraceProvider
	if !errors.As(err, &errStack) {
		return nil, false
	}
	stackTrace := errStack.StackTrace()
	pcs := make([]uintptr, len(stackTrace))
	for i, frame := range stackTrace {
		pcs[i] = uintptr(frame)
	}
	return ParsePCS(pcs), true
}
