package pkg

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/qnkhuat/tetterm/pkg/game"
)

const EnvPrefix = "TETTERM"

type LogConf struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

type FallConf struct {
	Base time.Duration `mapstructure:"base"`
	Step time.Duration `mapstructure:"step"`
	Min  time.Duration `mapstructure:"min"`
}

// Config is everything tetterm reads at start up.
type Config struct {
	Log  LogConf       `mapstructure:"log"`
	Nick string        `mapstructure:"nick"`
	Seed int64         `mapstructure:"seed"`
	Tick time.Duration `mapstructure:"tick"`
	Fall FallConf      `mapstructure:"fall"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"log":       "log.path",
	"log-level": "log.level",
	"nick":      "nick",
	"seed":      "seed",
	"tick":      "tick",
	"fall-base": "fall.base",
	"fall-step": "fall.step",
	"fall-min":  "fall.min",
}

func setDefaults(v *viper.Viper) {
	defaults := game.DefaultConfig()

	v.SetDefault("log.path", "./log")
	v.SetDefault("log.level", "info")
	v.SetDefault("nick", "")
	v.SetDefault("seed", 0)
	v.SetDefault("tick", 16*time.Millisecond)
	v.SetDefault("fall.base", defaults.BaseFallInterval)
	v.SetDefault("fall.step", defaults.FallIntervalStep)
	v.SetDefault("fall.min", defaults.MinFallInterval)
}

// Flags returns the command line flags Load understands.
func Flags(name string) *pflag.FlagSet {
	defaults := game.DefaultConfig()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a yaml, json or toml config file")
	fs.String("log", "./log", "path to log file")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("nick", "", "nickname shown under the board, random when empty")
	fs.Int64("seed", 0, "piece generator seed, random when 0")
	fs.Duration("tick", 16*time.Millisecond, "game loop period")
	fs.Duration("fall-base", defaults.BaseFallInterval, "fall interval at level 1")
	fs.Duration("fall-step", defaults.FallIntervalStep, "fall interval reduction per level")
	fs.Duration("fall-min", defaults.MinFallInterval, "shortest fall interval")

	return fs
}

// Load merges, from highest precedence: flags explicitly set, TETTERM_*
// environment variables (a .env file in the working directory included),
// the config file if any, then defaults.
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", game.ErrInvalidConfig, c.Tick)
	}

	return c.Game().Validate()
}

// Game returns the engine rules described by c.
func (c *Config) Game() game.Config {
	cfg := game.DefaultConfig()
	cfg.Seed = c.Seed
	cfg.BaseFallInterval = c.Fall.Base
	cfg.FallIntervalStep = c.Fall.Step
	cfg.MinFallInterval = c.Fall.Min

	return cfg
}
