package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2025-12-04", expected: 0},
		{name: "next day after epoch", date: "2025-12-05", expected: 1},
		{name: "one year later", date: "2026-12-04", expected: 365},
		{name: "date with leap years included", date: "2032-12-04", expected: 2557},
		{name: "invalid format", date: "invalid", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-03", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := CalculateBuildID(tt.date)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{
		BuildID:   10,
		Date:      "2025-12-14",
		Commit:    "0123456789abcdef",
		GoVersion: "go1.22.0",
		Modified:  true,
	}
	assert.Equal(t, "build 10 (2025-12-14) commit[0123456789ab+dirty] go[go1.22.0]", info.String())
	assert.Equal(t, "build 0 (unknown) commit[unknown] go[unknown]", Info{}.String())
}

func TestRead_PrefersLdflags(t *testing.T) {
	BuildDate, BuildCommit = "2025-12-24", "abc123"
	t.Cleanup(func() { BuildDate, BuildCommit = "", "" })

	info := Read()
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, 20, info.BuildID)
}
