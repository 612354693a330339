package stick

import "errors"

// Fatal simulation errors. Neither is recoverable: the session that hit one
// stops advancing.
var (
	// ErrInvalidPhase means the state machine holds a phase it does not know.
	ErrInvalidPhase = errors.New("stick: invalid phase")

	// ErrInvariantViolation means a rule the machine relies on did not hold,
	// such as evaluating a landing before the stick lies flat.
	ErrInvariantViolation = errors.New("stick: invariant violation")
)
