package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestCreateLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		min   zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		logger, err := createLogger(tt.level)
		require.NoError(t, err, tt.level)

		assert.True(t, logger.Core().Enabled(tt.min), tt.level)
		if tt.min > zapcore.DebugLevel {
			assert.False(t, logger.Core().Enabled(tt.min-1), tt.level)
		}
	}
}
