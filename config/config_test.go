package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unoplusplus/uno/uno/game"
)

func TestLoad(t *testing.T) {
	clear1 := setEnv("UNO_CONFIG_FILE", "testdata/uno.yaml")
	defer clear1()
	clear2 := setEnv("UNO_DELAY_MS", "0")
	defer clear2()

	a := assert.New(t)
	cfg, err := Load()
	a.NoError(err)
	a.Equal(3, cfg.Players)
	a.Equal(5, cfg.HandSize)
	a.Equal(int64(42), cfg.Seed)
	a.Equal("Grace", cfg.HumanName)
	a.Equal("first-match", cfg.Strategy)
	a.Equal(0, cfg.DelayMs, "environment wins over the file")
	a.NoError(cfg.Validate())
}

func TestDefaults(t *testing.T) {
	clear1 := setEnv("UNO_CONFIG_FILE", "")
	defer clear1()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	clear1 := setEnv("UNO_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	_, err := Load()
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	a := assert.New(t)

	cfg := Default()
	cfg.Players = 1
	a.Equal(game.PlayerCountError(1), cfg.Validate())

	cfg = Default()
	cfg.HandSize = 0
	a.EqualError(cfg.Validate(), "hand size must be positive, got 0")

	cfg = Default()
	cfg.Players, cfg.HandSize = 10, 50
	a.Equal(game.DealError{Players: 10, HandSize: 50, Available: game.StandardDeckSize}, cfg.Validate())

	cfg = Default()
	cfg.Players, cfg.HandSize = 2, 52
	a.Error(cfg.Validate(), "dealing the whole deck leaves no first card")

	cfg = Default()
	cfg.Players, cfg.HandSize = 2, 51
	a.NoError(cfg.Validate())

	cfg = Default()
	cfg.DelayMs = -1
	a.EqualError(cfg.Validate(), "delay must not be negative, got -1")

	cfg = Default()
	cfg.Strategy = "random"
	a.EqualError(cfg.Validate(), "unknown strategy 'random'")
}

func setEnv(key, val string) func() {
	orig, ok := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if !ok {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
