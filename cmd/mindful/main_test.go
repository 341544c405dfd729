package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/mindful/internal/cli"
	"github.com/rshade/mindful/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
		assert.Contains(t, version.GetFullVersion(), version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetFullVersion())
		require.NotNil(t, root)
		assert.Equal(t, "mindful", root.Use)

		names := make([]string, 0, len(root.Commands()))
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		for _, want := range []string{"estimate", "catalog", "render", "serve", "config"} {
			assert.Contains(t, names, want)
		}
	})
}
