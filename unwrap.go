package optres

import "fmt"

// UnwrapError is the panic value raised by the unchecked extraction
// operations (Unwrap, Expect, UnwrapErr, ExpectErr) when the container
// is in the state that cannot satisfy them. It carries the payload that
// was actually present: the error value when unwrapping a failed
// Result, the success value when unwrapping the error of an ok Result,
// or nil when unwrapping an empty Option.
type UnwrapError struct {
	Message string
	Payload any
}

// Error implements the error interface.
func (e *UnwrapError) Error() string {
	if e.Payload == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Payload)
}

func unwrapFailed(message string, payload any) {
	panic(&UnwrapError{Message: message, Payload: payload})
}
