package lca

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for engine calculations. Compare with errors.Is; the
// returned errors wrap these with the offending value.
var (
	// ErrUnknownFuelType indicates a fuel type outside the five recognized values.
	// It is fatal for the calculation in progress and never defaulted.
	ErrUnknownFuelType = constError("unknown fuel type")

	// ErrInvalidInput indicates a parameter that would make the arithmetic
	// meaningless: zero or negative efficiency, distance, duration or grid
	// intensity, or a non-finite number.
	ErrInvalidInput = constError("invalid input")
)
