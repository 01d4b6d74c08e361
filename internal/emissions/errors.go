package emissions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors reported by the validation helpers.
// Compute itself never returns an error.
var (
	// ErrNegativeValue indicates a negative input or factor.
	ErrNegativeValue = constError("value cannot be negative")

	// ErrNonFinite indicates a NaN or infinite input or factor.
	ErrNonFinite = constError("value must be a finite number")
)
