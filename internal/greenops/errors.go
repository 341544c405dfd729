package greenops

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for estimate calculations.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrQueryCountOutOfRange indicates a query count outside [MinQueries, MaxQueries].
	ErrQueryCountOutOfRange = constError("query count out of range")

	// ErrUnknownLengthTier indicates a response length that is not one of the three tiers.
	ErrUnknownLengthTier = constError("unknown response length tier")
)
