package hybridkem

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation indicates resource exhaustion while preparing an
	// operation, for example an output buffer that could not be sized.
	ErrAllocation = errors.New("hybridkem: allocation failure")

	// ErrInvalidKeyState indicates an operation was invoked with no bound
	// key, with a key handle that has already been destroyed, or on a
	// context bound for the opposite role.
	ErrInvalidKeyState = errors.New("hybridkem: invalid key state")

	// ErrEncodingMismatch indicates a declared length does not match the
	// actual length in a composite key or ciphertext layout.
	ErrEncodingMismatch = errors.New("hybridkem: encoding mismatch")

	// ErrPrimitiveFailure indicates the underlying KEM or key-exchange
	// primitive reported failure.
	ErrPrimitiveFailure = errors.New("hybridkem: primitive failure")

	// ErrParameterCopy indicates re-encoding an ephemeral public key
	// produced an unexpected length.
	ErrParameterCopy = errors.New("hybridkem: parameter copy failure")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hybridkem.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opErrf attaches a detail message to a sentinel from the taxonomy.
// Sentinel identity is preserved through Unwrap so errors.Is keeps working.
func opErrf(op string, sentinel error, format string, args ...any) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}
