package game

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunable rules of a session.
type Config struct {
	Seed int64 // Piece generator seed, zero picks one from the clock

	BaseFallInterval time.Duration // Fall interval at level 1
	FallIntervalStep time.Duration // Reduction per level gained
	MinFallInterval  time.Duration // Floor of the fall interval

	SoftDropScore int // Points per soft drop press
	HardDropScore int // Points per row fallen during a hard drop
}

func DefaultConfig() Config {
	return Config{
		BaseFallInterval: time.Second,
		FallIntervalStep: 100 * time.Millisecond,
		MinFallInterval:  100 * time.Millisecond,
		SoftDropScore:    1,
		HardDropScore:    2,
	}
}

func (c Config) Validate() error {
	switch {
	case c.BaseFallInterval <= 0:
		return fmt.Errorf("%w: base fall interval must be positive, got %s", ErrInvalidConfig, c.BaseFallInterval)
	case c.MinFallInterval <= 0:
		return fmt.Errorf("%w: minimum fall interval must be positive, got %s", ErrInvalidConfig, c.MinFallInterval)
	case c.MinFallInterval > c.BaseFallInterval:
		return fmt.Errorf("%w: minimum fall interval %s exceeds base %s", ErrInvalidConfig, c.MinFallInterval, c.BaseFallInterval)
	case c.FallIntervalStep < 0:
		return fmt.Errorf("%w: fall interval step must not be negative, got %s", ErrInvalidConfig, c.FallIntervalStep)
	case c.SoftDropScore < 0 || c.HardDropScore < 0:
		return fmt.Errorf("%w: drop scores must not be negative", ErrInvalidConfig)
	}

	return nil
}

// FallInterval returns the interval used at the given level.
func (c Config) FallInterval(level int) time.Duration {
	interval := c.BaseFallInterval - time.Duration(level-1)*c.FallIntervalStep
	if interval < c.MinFallInterval {
		return c.MinFallInterval
	}

	return interval
}
