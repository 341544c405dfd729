package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion_LinkerValueWins(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", GetVersion())
}

func TestGetVersion_NeverEmpty(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = ""
	assert.NotEmpty(t, GetVersion())
}

func TestGetFullVersion(t *testing.T) {
	tests := []struct {
		name      string
		gitCommit string
		buildDate string
		want      string
	}{
		{"version only", "", "", "v1.2.3"},
		{"commit", "abc1234", "", "v1.2.3 (commit abc1234)"},
		{"date", "", "2026-01-02", "v1.2.3 (built 2026-01-02)"},
		{"commit and date", "abc1234", "2026-01-02", "v1.2.3 (commit abc1234, built 2026-01-02)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := version, gitCommit, buildDate
			t.Cleanup(func() { version, gitCommit, buildDate = oldVersion, oldCommit, oldDate })

			version, gitCommit, buildDate = "v1.2.3", tt.gitCommit, tt.buildDate
			assert.Equal(t, tt.want, GetFullVersion())
			assert.Equal(t, tt.gitCommit, GetGitCommit())
			assert.Equal(t, tt.buildDate, GetBuildDate())
		})
	}
}
