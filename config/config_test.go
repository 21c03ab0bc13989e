package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigSearchDepth), 3)
	is.Equal(cfg.GetBool(ConfigIterative), true)
	is.Equal(cfg.GetString(ConfigSearchMethod), "alphabeta")
	is.Equal(cfg.GetString(ConfigEvaluator), "custom")
	is.Equal(cfg.GetInt(ConfigTurnTimeLimitMS), 150)
	is.Equal(cfg.GetInt(ConfigBoardWidth), 7)
	is.NoErr(cfg.Validate())
}

func TestCopy(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Set(ConfigBoardWidth, 5)
	cfg.Set(ConfigSearchMethod, "minimax")
	cp := cfg.Copy()
	is.Equal(cp.GetInt(ConfigBoardWidth), 5)
	is.Equal(cp.GetString(ConfigSearchMethod), "minimax")
	is.Equal(cp.GetInt(ConfigTurnTimeLimitMS), 150)

	cfg.Set(ConfigBoardWidth, 9)
	is.Equal(cp.GetInt(ConfigBoardWidth), 5) // the copy is unaffected
	cp.Set(ConfigBoardHeight, 4)
	is.Equal(cfg.GetInt(ConfigBoardHeight), 7)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	chdir(t, t.TempDir())
	cfg := &Config{}
	err := cfg.Load([]string{"--search-depth", "5", "--iterative=false", "--evaluator", "improved"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigSearchDepth), 5)
	is.Equal(cfg.GetBool(ConfigIterative), false)
	is.Equal(cfg.GetString(ConfigEvaluator), "improved")
	// Untouched keys keep their defaults.
	is.Equal(cfg.GetInt(ConfigTimerThresholdMS), 10)
	is.Equal(cfg.SanitizedSettings()[ConfigSearchDepth], 5)
}

func TestLoadEnvAndFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	chdir(t, dir)
	is.NoErr(os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("board-width: 5\nboard-height: 6\nsearch-method: minimax\n"), 0o644))
	t.Setenv("ISOLATION_TURN_TIME_LIMIT_MS", "500")
	t.Setenv("ISOLATION_SEARCH_METHOD", "alphabeta")

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--board-height", "4"}))
	is.Equal(cfg.GetInt(ConfigBoardWidth), 5)
	// Flags beat the file, and so does the environment.
	is.Equal(cfg.GetInt(ConfigBoardHeight), 4)
	is.Equal(cfg.GetString(ConfigSearchMethod), "alphabeta")
	is.Equal(cfg.GetInt(ConfigTurnTimeLimitMS), 500)
}

func TestLoadErrors(t *testing.T) {
	is := is.New(t)
	chdir(t, t.TempDir())
	cfg := &Config{}
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)

	cfg = &Config{}
	err := cfg.Load([]string{"--board-width", "0"})
	is.True(errors.Is(err, ErrBadSetting))

	cfg = &Config{}
	err = cfg.Load([]string{"--max-depth=-2"})
	is.True(errors.Is(err, ErrBadSetting))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
