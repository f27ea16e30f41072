package hashtrace

import "fmt"

type constError string

const (
	// ErrInvalidOperations may be returned from [Config.Validate].
	ErrInvalidOperations = constError("invalid operation count")
	// ErrInvalidKeyMax may be returned from [Config.Validate].
	ErrInvalidKeyMax = constError("invalid key maximum")
	// ErrInvalidLookupCap may be returned from [Config.Validate].
	ErrInvalidLookupCap = constError("invalid lookup cap")
	// ErrInvalidOp may be returned from [ParseOp].
	ErrInvalidOp = constError("invalid operation")
)

func (errStr constError) Error() string { return string(errStr) }

func boundError(err constError, minimum, requested int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		err, minimum, requested)
}
