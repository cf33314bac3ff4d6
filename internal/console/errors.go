package console

import "errors"

var (
	ErrInit           = errors.New("console: invalid command table")
	ErrParse          = errors.New("console: failed to parse command")
	ErrUnknownCommand = errors.New("console: invalid command")
	ErrDenied         = errors.New("console: command is not allowed")
)

// OperationError carries a failure raised by the underlying store
// operation. The message is the store's own, verbatim, so the rendered
// fragment shows exactly what the operation reported.
type OperationError struct {
	Command string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
