package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/mindful/internal/config"
)

// outputFormat resolves --output against the configured default.
func outputFormat(flagValue string, cfg *config.Config) (string, error) {
	format := flagValue
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	format = strings.ToLower(format)
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want table, json or ndjson)", format)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
