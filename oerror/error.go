package oerror

import "fmt"

// PanicError is a panic recovered while running a tick.
type PanicError struct {
	Tick  uint64
	Value any
}

// NewPanicError returns a PanicError for the value recovered during the tick passed.
func NewPanicError(tick uint64, v any) *PanicError {
	return &PanicError{Tick: tick, Value: v}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("tick %d panicked: %v", e.Tick, e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
