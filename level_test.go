package slogtune_test

import (
	"testing"

	"github.com/apperia-de/slogtune"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    slogtune.Level
		wantErr bool
	}{
		{"critical", "CRITICAL", slogtune.LevelCritical, false},
		{"fatal alias", "FATAL", slogtune.LevelCritical, false},
		{"error", "ERROR", slogtune.LevelError, false},
		{"warning", "WARNING", slogtune.LevelWarning, false},
		{"warn alias", "WARN", slogtune.LevelWarning, false},
		{"info", "INFO", slogtune.LevelInfo, false},
		{"debug", "DEBUG", slogtune.LevelDebug, false},
		{"notset", "NOTSET", slogtune.LevelNotSet, false},
		{"positive offset", "ERROR+4", slogtune.LevelError + 4, false},
		{"negative offset", "DEBUG-2", slogtune.LevelDebug - 2, false},
		{"lower case", "info", 0, true},
		{"mixed case", "Info", 0, true},
		{"unknown name", "VERBOSE", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slogtune.ParseLevel(tt.in)
			if tt.wantErr {
				var lvlErr *slogtune.UnknownLevelError
				require.ErrorAs(t, err, &lvlErr)
				assert.Equal(t, tt.in, lvlErr.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "CRITICAL", slogtune.LevelName(slogtune.LevelCritical))
	assert.Equal(t, "ERROR", slogtune.LevelName(slogtune.LevelError))
	assert.Equal(t, "WARNING", slogtune.LevelName(slogtune.LevelWarning))
	assert.Equal(t, "INFO", slogtune.LevelName(slogtune.LevelInfo))
	assert.Equal(t, "DEBUG", slogtune.LevelName(slogtune.LevelDebug))
	assert.Equal(t, "NOTSET", slogtune.LevelName(slogtune.LevelNotSet))
	assert.Equal(t, "INFO+2", slogtune.LevelName(slogtune.LevelInfo+2))
	assert.Equal(t, "WARNING", slogtune.LevelWarning.String())
}
