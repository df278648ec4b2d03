package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by catalog lookups and loading.
var (
	// ErrVehicleNotFound indicates an ID with no catalog entry.
	ErrVehicleNotFound = constError("vehicle not found")

	// ErrStateNotFound indicates a state with no grid intensity record.
	ErrStateNotFound = constError("state not found")

	// ErrUnsupportedSchema indicates a catalog file whose schema_version is
	// missing, malformed or outside SupportedSchema.
	ErrUnsupportedSchema = constError("unsupported catalog schema")

	// ErrInvalidCatalog indicates structurally bad catalog content such as a
	// duplicate vehicle ID.
	ErrInvalidCatalog = constError("invalid catalog")
)
