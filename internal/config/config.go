package config

import (
	"os"

	"dinogames-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Dino Games
type Config struct {
	loaded bool
	Poker  struct {
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		MinPlayers    int `yaml:"minPlayers" envconfig:"min_players"`
		MaxPlayers    int `yaml:"maxPlayers" envconfig:"max_players"`
	}
	Simulate struct {
		Tables        int   `yaml:"tables" envconfig:"tables"`
		Hands         int   `yaml:"hands" envconfig:"hands"`
		PlayersAtSeat int   `yaml:"playersAtSeat" envconfig:"players_at_seat"`
		Seed          int64 `yaml:"seed" envconfig:"seed"`
	}
	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
}

func defaultConfig() Config {
	var c Config
	c.Poker.StartingChips = 1000
	c.Poker.SmallBlind = 10
	c.Poker.BigBlind = 20
	c.Poker.MinPlayers = 2
	c.Poker.MaxPlayers = 8
	c.Simulate.Tables = 4
	c.Simulate.Hands = 100
	c.Simulate.PlayersAtSeat = 4
	c.LogLevel = "info"

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Defaults are applied first, then the yaml file (if present), then the environment
func Load() error {
	config = defaultConfig()

	configFile := util.Getenv("DINO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("dino", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
