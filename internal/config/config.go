package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env-default:"info"`
	HTTPPort  string `yaml:"http-port" env-default:"8080"`
	StaticDir string `yaml:"static-dir" env-default:""`

	// RejectedMoveCostsTurn keeps the historical behavior where an
	// out-of-bounds or conflicting move still hands the turn to the other
	// participant.
	RejectedMoveCostsTurn bool `yaml:"rejected-move-costs-turn" env-default:"true"`

	Redis Redis `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:""`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetRedisAddr returns an empty string when no Redis host is configured, in
// which case the in-memory archive is used.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
