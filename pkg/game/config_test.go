package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero base", func(c *Config) { c.BaseFallInterval = 0 }},
		{"zero min", func(c *Config) { c.MinFallInterval = 0 }},
		{"min above base", func(c *Config) { c.MinFallInterval = 2 * time.Second }},
		{"negative step", func(c *Config) { c.FallIntervalStep = -time.Millisecond }},
		{"negative soft drop", func(c *Config) { c.SoftDropScore = -1 }},
		{"negative hard drop", func(c *Config) { c.HardDropScore = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "over", StateOver.String())
}
