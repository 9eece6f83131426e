package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	HumanMark  string `yaml:"human-mark" env-default:"X"`
	BotDelayMS int    `yaml:"bot-delay-ms" env-default:"400"`
	NoColor    bool   `yaml:"no-color" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file is fine, the defaults carry a playable game.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// BotDelay - how long the bot pretends to think before it moves.
func (that *Game) BotDelay() time.Duration {
	return time.Duration(that.BotDelayMS) * time.Millisecond
}
