package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "travel-planner"}, &buf)

	log.Info().Str("key", "value").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "travel-planner", entry["service"])
	assert.Equal(t, "info", entry["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json", ServiceName: "test"}, &buf)

	log.Info().Msg("should be filtered")
	assert.Empty(t, buf.String())

	log.Warn().Msg("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "chatty", Format: "json", ServiceName: "test"}, &buf)

	log.Debug().Msg("debug filtered at info level")
	assert.Empty(t, buf.String())

	log.Info().Msg("info passes")
	assert.Contains(t, buf.String(), "info passes")
}

func TestContextHelpers(t *testing.T) {
	tests := []struct {
		name      string
		build     func(*Logger) *Logger
		wantField string
		wantValue string
	}{
		{
			name:      "request id",
			build:     func(l *Logger) *Logger { return l.WithRequestID("req-123") },
			wantField: "request_id",
			wantValue: "req-123",
		},
		{
			name:      "generator backend",
			build:     func(l *Logger) *Logger { return l.WithGenerator("gemini") },
			wantField: "generator",
			wantValue: "gemini",
		},
		{
			name:      "flight provider",
			build:     func(l *Logger) *Logger { return l.WithProvider("amadeus") },
			wantField: "provider",
			wantValue: "amadeus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

			tt.build(log).Info().Msg("with context")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantValue, entry[tt.wantField])
		})
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	// Must not panic and must not write anywhere.
	log.Error().Msg("discarded")
}
