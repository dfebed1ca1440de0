package logger_test

import (
	"testing"

	"github.com/nikolayk812/shopcart/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantLevel   zapcore.Level
		wantError   string
	}{
		{
			name:        "production info: ok",
			environment: "production",
			level:       "info",
			wantLevel:   zapcore.InfoLevel,
		},
		{
			name:        "development debug: ok",
			environment: "development",
			level:       "debug",
			wantLevel:   zapcore.DebugLevel,
		},
		{
			name:        "unknown level: error",
			environment: "development",
			level:       "loud",
			wantError:   "zapcore.ParseLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.environment, tt.level)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tt.wantLevel))
			assert.False(t, log.Core().Enabled(tt.wantLevel-1))
		})
	}
}
