package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	API struct {
		BaseURL     string `yaml:"base_url"`
		SearchLimit int    `yaml:"search_limit"`
		UserAgent   string `yaml:"user_agent"`
	} `yaml:"api"`
	QueryLog struct {
		Backend     string `yaml:"backend"`
		Path        string `yaml:"path"`
		RedisPrefix string `yaml:"redis_prefix"`
	} `yaml:"query_log"`
	Bot struct {
		RichMessages   bool   `yaml:"rich_messages"`
		FixedSubjectID int    `yaml:"fixed_subject_id"`
		Status         string `yaml:"status"`
	} `yaml:"bot"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Secrets come from the environment only, never from config.yml.
type Secrets struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	RedisURL     string `env:"REDIS_URL"`
}

// StoreSecrets is the subset of Secrets needed to open the query log without
// connecting to Discord.
type StoreSecrets struct {
	RedisURL string `env:"REDIS_URL"`
}

func defaults() *Config {
	config := &Config{}
	config.API.BaseURL = "https://api.jikan.moe/v4"
	config.API.SearchLimit = 5
	config.API.UserAgent = "animebot"
	config.QueryLog.Backend = BackendFile
	config.QueryLog.Path = "data/user_queries.json"
	config.QueryLog.RedisPrefix = "animebot"
	config.Bot.RichMessages = true
	config.Bot.FixedSubjectID = 339
	config.Bot.Status = "!help for commands"
	config.Log.Level = "info"
	return config
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaults()

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.API.SearchLimit < 1 || c.API.SearchLimit > 25 {
		return fmt.Errorf("api.search_limit must be between 1 and 25, got %d", c.API.SearchLimit)
	}
	switch c.QueryLog.Backend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("query_log.backend must be %q or %q, got %q", BackendFile, BackendRedis, c.QueryLog.Backend)
	}
	if c.Bot.FixedSubjectID <= 0 {
		return fmt.Errorf("bot.fixed_subject_id must be positive, got %d", c.Bot.FixedSubjectID)
	}
	return nil
}

// LoadSecrets parses the environment. A missing DISCORD_TOKEN is an error.
func LoadSecrets() (*Secrets, error) {
	secrets := &Secrets{}
	if err := env.Parse(secrets); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if secrets.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN is set but empty")
	}
	return secrets, nil
}

func LoadStoreSecrets() (*StoreSecrets, error) {
	secrets := &StoreSecrets{}
	if err := env.Parse(secrets); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return secrets, nil
}
