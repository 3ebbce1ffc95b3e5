package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "legacy", cfg.Mode)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 90, cfg.HistoryDays)
	assert.Empty(t, cfg.GoogleAPIKey)
	assert.Equal(t, 5*time.Second, cfg.GoogleTimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "ddpm-risk-documents", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SCORING_MODE", "corrected")
	t.Setenv("SEED", "42")
	t.Setenv("HISTORY_DAYS", "30")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GOOGLE_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "risk-docs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "corrected", cfg.Mode)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.HistoryDays)
	assert.Equal(t, "test-key", cfg.GoogleAPIKey)
	assert.Equal(t, 2*time.Second, cfg.GoogleTimeout)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "risk-docs", cfg.KafkaTopic)
}

func TestLoad_KafkaDisabledByDefault(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092")
	t.Setenv("KAFKA_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "bad shutdown timeout", key: "SHUTDOWN_TIMEOUT", value: "soon", wantErr: "SHUTDOWN_TIMEOUT"},
		{name: "negative shutdown timeout", key: "SHUTDOWN_TIMEOUT", value: "-5s", wantErr: "SHUTDOWN_TIMEOUT"},
		{name: "bad google timeout", key: "GOOGLE_TIMEOUT", value: "fast", wantErr: "GOOGLE_TIMEOUT"},
		{name: "bad seed", key: "SEED", value: "abc", wantErr: "SEED"},
		{name: "bad history days", key: "HISTORY_DAYS", value: "ninety", wantErr: "HISTORY_DAYS"},
		{name: "zero history days", key: "HISTORY_DAYS", value: "0", wantErr: "HISTORY_DAYS must be positive"},
		{name: "unknown mode", key: "SCORING_MODE", value: "strict", wantErr: "SCORING_MODE"},
		{name: "kafka enabled without brokers", key: "KAFKA_ENABLED", value: "true", wantErr: "KAFKA_BROKERS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
