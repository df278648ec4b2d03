package greenops

type constError string

func (e constError) Error() string { return string(e) }

// Input errors returned by Calculate.
const (
	// ErrNegativeValue rejects negative kilograms.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow rejects NaN, infinities and values past the
	// safe integer range.
	ErrCalculationOverflow = constError("calculation overflow")
)
