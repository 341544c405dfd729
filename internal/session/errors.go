package session

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnknownPledge indicates a pledge key outside the fixed set.
	ErrUnknownPledge = constError("unknown pledge key")

	// ErrUnknownItem indicates a usage category rank that is not in the catalog.
	ErrUnknownItem = constError("unknown usage category")

	// ErrUnknownTip indicates a tip number that is not in the catalog.
	ErrUnknownTip = constError("unknown tip")

	// ErrInvalidParam indicates a malformed query-string value.
	ErrInvalidParam = constError("invalid parameter")
)
