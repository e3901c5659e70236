package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8111", cfg.Port)
	assert.False(t, cfg.UseMemoryStore)
	assert.False(t, cfg.SkipAuth)
	assert.Equal(t, 3, cfg.ReminderDays)
	assert.Equal(t, "movements", cfg.AlgoliaIndex)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Location.String())
	assert.False(t, cfg.AlgoliaEnabled())
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":            "9000",
		"ENV":             "local",
		"SKIP_AUTH":       "true",
		"REMINDER_DAYS":   "5",
		"ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"TIMEZONE":        "UTC",
		"ALGOLIA_APP_ID":  "app",
		"ALGOLIA_API_KEY": "key",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.UseMemoryStore)
	assert.True(t, cfg.SkipAuth)
	assert.Equal(t, 5, cfg.ReminderDays)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.True(t, cfg.AlgoliaEnabled())
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"REMINDER_DAYS": "soon"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"TIMEZONE": "Mars/Olympus"}))
	assert.Error(t, err)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7000\nEXPORT_BUCKET=from-file\n"), 0o600))

	t.Setenv("PORT", "7100")
	t.Setenv("EXPORT_BUCKET", "")
	require.NoError(t, os.Unsetenv("EXPORT_BUCKET"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.Port)
	assert.Equal(t, "from-file", cfg.ExportBucket)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
