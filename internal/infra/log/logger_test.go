package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"userhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSONCarriesServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "userhub"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")
	logger.Debug("dropped")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "userhub", record["service"])
}
