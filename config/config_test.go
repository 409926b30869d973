package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.SettleDelay)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, "0 0 */6 * * *", cfg.CheckSchedule)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SETTLE_DELAY", "500ms")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("SETTLE_DELAY", "soon")
	t.Setenv("RATE_LIMIT_RPS", "many")

	cfg := Load()

	assert.Equal(t, 3*time.Second, cfg.SettleDelay)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
}
