package analysis

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidRequest indicates a request that cannot be evaluated as given,
// such as too few vehicles to compare or an unknown usage pattern.
const ErrInvalidRequest = constError("invalid request")
