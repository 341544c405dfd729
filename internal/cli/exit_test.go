package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/mindful/internal/cli"
	"github.com/rshade/mindful/internal/config"
	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/session"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitOK},
		{"generic", errors.New("disk full"), cli.ExitFailure},
		{"query range", greenops.ErrQueryCountOutOfRange, cli.ExitInvalidInput},
		{"wrapped length", fmt.Errorf("estimating: %w", greenops.ErrUnknownLengthTier), cli.ExitInvalidInput},
		{"unknown pledge", fmt.Errorf("invalid page state: %w", session.ErrUnknownPledge), cli.ExitInvalidInput},
		{"config value", fmt.Errorf("validation: %w", config.ErrInvalidValue), cli.ExitInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestExitCode_FromCommand(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "estimate", "--queries", "0")
	assert.Equal(t, cli.ExitInvalidInput, cli.ExitCode(err))
}
