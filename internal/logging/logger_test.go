package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mindful.log")

	result := NewLoggerWithPath(Config{Level: "debug", Format: FormatJSON, Output: OutputFile, File: path})
	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Debug().Str("component", "test").Msg("hello")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
}

func TestNewLoggerWithPath_FallbackWithoutPath(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputFile})
	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
}

func TestNewLogger_Discard(t *testing.T) {
	l := NewLogger(Config{Level: "info", Output: OutputDiscard})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestFromContext(t *testing.T) {
	t.Run("no logger is disabled", func(t *testing.T) {
		l := FromContext(context.Background())
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})

	t.Run("trace id attached", func(t *testing.T) {
		var buf bytes.Buffer
		base := ComponentLogger(zerolog.New(&buf), "web")
		ctx := base.WithContext(context.Background())
		ctx = ContextWithTraceID(ctx, "trace-1")

		FromContext(ctx).Info().Msg("x")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "trace-1", entry["trace_id"])
		assert.Equal(t, "web", entry["component"])
	})
}

func TestTraceIDs(t *testing.T) {
	t.Setenv(EnvTraceID, "")

	ctx := ContextWithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", GetOrGenerateTraceID(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))

	generated := GetOrGenerateTraceID(context.Background())
	_, err := ulid.Parse(generated)
	require.NoError(t, err)

	t.Setenv(EnvTraceID, "pinned")
	assert.Equal(t, "pinned", GetOrGenerateTraceID(context.Background()))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "denied")
	assert.Contains(t, buf.String(), "/tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}
