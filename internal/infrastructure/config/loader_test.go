package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("PORT", "")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("ANNOUNCE_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, 30*time.Second, cfg.AnnounceInterval)
	assert.Equal(t, 300*time.Second, cfg.StartCooldown)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POLL_INTERVAL", "2m")
	t.Setenv("START_COOLDOWN", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.StartCooldown)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.PollInterval)
}
