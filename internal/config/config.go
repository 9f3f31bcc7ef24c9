package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Game       Game   `yaml:"game"`
	Replay     Replay `yaml:"replay"`
	Redis      Redis  `yaml:"redis"`
}

type Game struct {
	DefaultSize int    `yaml:"default-size" env:"GAME_DEFAULT_SIZE" env-default:"3"`
	DefaultMode string `yaml:"default-mode" env:"GAME_DEFAULT_MODE" env-default:"simple"`
	// ComputerStrategy is one of "first-empty", "sequence-seeker" or "random".
	ComputerStrategy string `yaml:"computer-strategy" env:"GAME_COMPUTER_STRATEGY" env-default:"first-empty"`
}

type Replay struct {
	Interval time.Duration `yaml:"interval" env:"REPLAY_INTERVAL" env-default:"750ms"`
	TTL      time.Duration `yaml:"ttl" env:"REPLAY_TTL" env-default:"168h"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
