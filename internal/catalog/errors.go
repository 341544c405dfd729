package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Content validation errors.
var (
	ErrNoCategories       = constError("content has no usage categories")
	ErrRankSequence       = constError("usage category ranks are not dense from 1")
	ErrMissingTitle       = constError("usage category has no title")
	ErrImpactOutOfRange   = constError("impact score out of range")
	ErrTipSequence        = constError("tip numbers are not dense from 1")
	ErrPledgeSet          = constError("pledge options do not match the pledge keys")
	ErrInvalidResourceURL = constError("resource URL is not absolute")
)
