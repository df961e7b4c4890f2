package hands

import "errors"

var (
	// ErrInvalidInput is returned when a card collection is empty or holds a
	// card outside the rank/suit enumerations.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPreconditionViolation is returned by the resolver when it is called
	// without any active seat. It is a caller bug and must not be retried.
	ErrPreconditionViolation = errors.New("precondition violation")
)
