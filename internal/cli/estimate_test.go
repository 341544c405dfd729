package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/mindful/internal/greenops"
)

func TestEstimate_Table(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "estimate", "--queries", "100", "--length", "long")
	require.NoError(t, err)

	assert.Contains(t, out, "AI Carbon Estimate")
	assert.Contains(t, out, "Queries per day:  100")
	assert.Contains(t, out, "Response length:  Long (×1.5)")
	assert.Contains(t, out, "CO₂ per day:      750g (≈ 3.0 mi, 94 charges)")
	assert.Contains(t, out, "Driving:          3.0 miles")
	assert.Contains(t, out, "Phone charges:    94")
	assert.Contains(t, out, "That's like driving 3.0 miles or charging your phone 94 times")
}

func TestEstimate_Formats(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		co2   int
		lines int
	}{
		{"json defaults", []string{"estimate", "--output", "json"}, 50, 0},
		{"json short", []string{"estimate", "-q", "100", "-l", "1", "-o", "json"}, 350, 0},
		{"ndjson", []string{"estimate", "-q", "20", "-o", "ndjson"}, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)

			var est greenops.DerivedEstimate
			require.NoError(t, json.Unmarshal([]byte(out), &est))
			assert.Equal(t, tt.co2, est.CO2Grams)
			if tt.lines > 0 {
				assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), tt.lines)
			}
		})
	}
}

func TestEstimate_OutputFormatFromEnv(t *testing.T) {
	setupCLITest(t)
	t.Setenv("MINDFUL_OUTPUT_FORMAT", "json")

	out, _, err := execute(t, "estimate")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestEstimate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"zero queries", []string{"estimate", "--queries", "0"}, greenops.ErrQueryCountOutOfRange, ""},
		{"too many queries", []string{"estimate", "--queries", "101"}, greenops.ErrQueryCountOutOfRange, ""},
		{"unknown length", []string{"estimate", "--length", "huge"}, greenops.ErrUnknownLengthTier, ""},
		{"unknown format", []string{"estimate", "--output", "xml"}, nil, "unsupported output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
