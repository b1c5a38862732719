/* config_test.go
 * Contains unit tests for config.go
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	for _, key := range []string{"DISCORD_TOKEN", "HTTP_ADDR", "BOT_RATE_LIMIT", "BOT_RATE_BURST", "ROSTER", "ORDERING", "SORT_CRITERION"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// TestLoad_Defaults tests that defaults apply when neither the environment nor a .env file set a value
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 0.5, cfg.RateLimit)
	assert.Equal(t, 3, cfg.RateBurst)
	assert.Equal(t, "front", cfg.Ordering)
	assert.Equal(t, "level", cfg.SortCriterion)
	assert.Empty(t, cfg.DiscordToken)
}

// TestLoad_EnvFile tests that values in a .env file are picked up
func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "DISCORD_TOKEN=abc\nROSTER=Roark:0,2,1,1,1\nORDERING=sorted\nSORT_CRITERION=hp\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.DiscordToken)
	assert.Equal(t, "Roark:0,2,1,1,1", cfg.Roster)
	assert.Equal(t, "sorted", cfg.Ordering)
	assert.Equal(t, "hp", cfg.SortCriterion)
}

// TestLoad_EnvOverridesFile tests that variables already in the environment win over the .env file
func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9000\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":7000")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
}

// TestLoad_InvalidNumber tests that an unparseable value is reported
func TestLoad_InvalidNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_RATE_BURST", "lots")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse env")
}

// TestLoad_NonPositiveRate tests that a zero rate limit is rejected
func TestLoad_NonPositiveRate(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_RATE_LIMIT", "0")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.ErrorContains(t, err, "must be positive")
}
