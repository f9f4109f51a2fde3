package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/unoplusplus/uno/uno/game"
	"github.com/unoplusplus/uno/uno/player"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for a table of Uno++
type Config struct {
	Players   int    `yaml:"players" envconfig:"players"`
	HandSize  int    `yaml:"handSize" envconfig:"hand_size"`
	Seed      int64  `yaml:"seed" envconfig:"seed"`
	HumanName string `yaml:"humanName" envconfig:"human_name"`
	Strategy  string `yaml:"strategy" envconfig:"strategy"`
	DelayMs   int    `yaml:"delayMs" envconfig:"delay_ms"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		Players:   4,
		HandSize:  7,
		HumanName: "You",
		Strategy:  player.StrategyLastMatch.String(),
		DelayMs:   1000,
	}
}

// Load reads the optional YAML file named by UNO_CONFIG_FILE (uno.yaml by
// default) on top of the defaults, then applies UNO_* environment overrides
func Load() (Config, error) {
	cfg := Default()

	configFile := os.Getenv("UNO_CONFIG_FILE")
	required := configFile != ""
	if !required {
		configFile = "uno.yaml"
	}

	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := envconfig.Process("uno", &cfg); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}

	return cfg, nil
}

// Validate reports the first setting a game cannot be started with
func (c Config) Validate() error {
	if c.Players < game.MinPlayers || c.Players > game.MaxPlayers {
		return game.PlayerCountError(c.Players)
	}
	if c.HandSize < 1 {
		return fmt.Errorf("hand size must be positive, got %d", c.HandSize)
	}
	if c.Players*c.HandSize >= game.StandardDeckSize {
		return game.DealError{Players: c.Players, HandSize: c.HandSize, Available: game.StandardDeckSize}
	}
	if c.DelayMs < 0 {
		return fmt.Errorf("delay must not be negative, got %d", c.DelayMs)
	}
	if _, err := player.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}
