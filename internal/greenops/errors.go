package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for equivalency calculations, comparable with errors.Is.
var (
	// ErrNegativeValue indicates a negative annual total. Equivalencies are
	// only meaningful for net emissions.
	ErrNegativeValue = constError("negative carbon total")

	// ErrCalculationOverflow indicates a NaN or infinite input or result.
	ErrCalculationOverflow = constError("calculation overflow")
)
