package series

import "fmt"

// InsufficientDataError reports that a window or period exceeds the
// available samples. It indicates a request that cannot be answered
// and must reach the report assembler so missing metrics stay visible.
type InsufficientDataError struct {
	Op       string
	Required int
	Actual   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d samples, have %d", e.Op, e.Required, e.Actual)
}

// ErrInsufficientData builds an InsufficientDataError for op.
func ErrInsufficientData(op string, required, actual int) error {
	return &InsufficientDataError{Op: op, Required: required, Actual: actual}
}
