package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an input is out of its allowed domain,
	// e.g. a negative price or a rate outside [0, 100].
	InvalidArgument = ErrorKind("Invalid Argument")

	// InvalidState is returned when a state transition is not allowed from the current state.
	InvalidState = ErrorKind("Invalid State")

	// Conflict is returned when the request collides with existing data or an in-flight request.
	Conflict = ErrorKind("Conflict")

	Unsupported = ErrorKind("Unsupported")
	Internal    = ErrorKind("Internal Error")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// WithKind annotates err with kind so that errors.Is(err, kind) holds. The message of err is kept as is.
func WithKind(err error, kind ErrorKind) error {
	if err == nil {
		return nil
	}
	return &kindError{err: err, kind: kind}
}

type kindError struct {
	err  error
	kind ErrorKind
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.kind
}

func (e *kindError) Unwrap() error {
	return e.err
}
