package cli

import (
	"errors"

	"github.com/rshade/mindful/internal/config"
	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/session"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

//nolint:gochecknoglobals // Fixed lookup table.
var invalidInputErrors = []error{
	greenops.ErrQueryCountOutOfRange,
	greenops.ErrUnknownLengthTier,
	session.ErrInvalidParam,
	session.ErrUnknownItem,
	session.ErrUnknownPledge,
	session.ErrUnknownTip,
	config.ErrInvalidValue,
	config.ErrUnsupportedVersion,
}

// ExitCode maps a command error to the process exit code. Rejected user
// input exits with ExitInvalidInput so scripts can tell it from failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, target := range invalidInputErrors {
		if errors.Is(err, target) {
			return ExitInvalidInput
		}
	}
	return ExitFailure
}
