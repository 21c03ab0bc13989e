// Package config holds the settings shared by the binaries. Values come
// from, in increasing priority: defaults, an optional config.yaml in the
// working directory, ISOLATION_* environment variables, and flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug            = "debug"
	ConfigSearchDepth      = "search-depth"
	ConfigMaxDepth         = "max-depth"
	ConfigIterative        = "iterative"
	ConfigSearchMethod     = "search-method"
	ConfigEvaluator        = "evaluator"
	ConfigTimerThresholdMS = "timer-threshold-ms"
	ConfigTurnTimeLimitMS  = "turn-time-limit-ms"
	ConfigBoardWidth       = "board-width"
	ConfigBoardHeight      = "board-height"
	ConfigAutoplayGames    = "autoplay-games"
	ConfigAutoplayThreads  = "autoplay-threads"
	ConfigAutoplayLogfile  = "autoplay-logfile"
	ConfigAutoplaySeedFile = "autoplay-seed-file"
	ConfigCPUProfile       = "cpu-profile"
)

const envPrefix = "ISOLATION"

var ErrBadSetting = errors.New("bad setting")

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every key at its default value. It
// does not read flags, files or the environment.
func DefaultConfig() Config {
	c := Config{viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigSearchDepth, 3)
	c.SetDefault(ConfigMaxDepth, 0)
	c.SetDefault(ConfigIterative, true)
	c.SetDefault(ConfigSearchMethod, "alphabeta")
	c.SetDefault(ConfigEvaluator, "custom")
	c.SetDefault(ConfigTimerThresholdMS, 10)
	c.SetDefault(ConfigTurnTimeLimitMS, 150)
	c.SetDefault(ConfigBoardWidth, 7)
	c.SetDefault(ConfigBoardHeight, 7)
	c.SetDefault(ConfigAutoplayGames, 20)
	c.SetDefault(ConfigAutoplayThreads, runtime.NumCPU())
	c.SetDefault(ConfigAutoplayLogfile, "/tmp/autoplay.csv")
	c.SetDefault(ConfigAutoplaySeedFile, "")
	c.SetDefault(ConfigCPUProfile, "")
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("isolation", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigSearchDepth, 3, "search depth when not deepening iteratively")
	fs.Int(ConfigMaxDepth, 0, "deepest iteration to try; 0 for no limit")
	fs.Bool(ConfigIterative, true, "deepen iteratively until the turn clock runs out")
	fs.String(ConfigSearchMethod, "alphabeta", "search method: minimax or alphabeta")
	fs.String(ConfigEvaluator, "custom",
		"evaluator: improved, pro-self, anti-opponent, free-space or custom")
	fs.Int(ConfigTimerThresholdMS, 10, "abandon the search when fewer than this many ms are left")
	fs.Int(ConfigTurnTimeLimitMS, 150, "time each player gets per turn, in ms")
	fs.Int(ConfigBoardWidth, 7, "board width")
	fs.Int(ConfigBoardHeight, 7, "board height")
	fs.Int(ConfigAutoplayGames, 20, "number of games to autoplay")
	fs.Int(ConfigAutoplayThreads, runtime.NumCPU(), "number of games to play at once")
	fs.String(ConfigAutoplayLogfile, "/tmp/autoplay.csv", "where to write the autoplay game log")
	fs.String(ConfigAutoplaySeedFile, "", "file of seeds for the random openings of autoplay games")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	return fs
}

// Load reads settings from args, the environment and config.yaml, in that
// order of priority.
func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	c.setDefaults()

	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("config")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return c.Validate()
}

// Validate checks the numeric settings. Names of evaluators and search
// methods are checked where they are used.
func (c *Config) Validate() error {
	for _, k := range []string{ConfigBoardWidth, ConfigBoardHeight, ConfigAutoplayThreads} {
		if c.GetInt(k) < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrBadSetting, k, c.GetInt(k))
		}
	}
	for _, k := range []string{ConfigMaxDepth, ConfigTimerThresholdMS, ConfigTurnTimeLimitMS,
		ConfigAutoplayGames} {
		if c.GetInt(k) < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrBadSetting, k, c.GetInt(k))
		}
	}
	return nil
}

// Copy returns an independent config holding c's current settings. A
// Config must not be read and written from different goroutines.
func (c *Config) Copy() *Config {
	cp := DefaultConfig()
	for k, v := range c.AllSettings() {
		cp.Set(k, v)
	}
	return &cp
}

// SanitizedSettings returns all settings, suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
