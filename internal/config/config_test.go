package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("PORT", "")
	t.Setenv("PROJECTION_MONTHS", "")
	t.Setenv("S3_BUCKET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12, cfg.ProjectionMonths)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/kasboek")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://kasboek.example.nl")
	t.Setenv("PROJECTION_MONTHS", "24")
	t.Setenv("ENV", "production")
	t.Setenv("S3_BUCKET", "backups")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/kasboek", cfg.DataDir)
	assert.Equal(t, []string{"http://localhost:3000", "https://kasboek.example.nl"}, cfg.CORSOrigins)
	assert.Equal(t, 24, cfg.ProjectionMonths)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.S3.Enabled())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"projection months too large", "PROJECTION_MONTHS", "500"},
		{"projection months not a number", "PROJECTION_MONTHS", "twelve"},
		{"rate limit zero", "RATE_LIMIT_PER_MINUTE", "0"},
		{"bad cron spec", "SNAPSHOT_SCHEDULE", "every month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
