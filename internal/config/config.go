package config

import (
	"errors"
	"os"
)

type Config struct {
	SlackBotToken string
	DatabasePath  string
	Port          string
}

// Load reads configuration from the environment. The Slack bot token has no
// default and no fallback: without it every channel sync would fail, so
// startup fails instead.
func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken: getEnv("SLACK_BOT_TOKEN", ""),
		DatabasePath:  getEnv("DATABASE_PATH", "./shows.db"),
		Port:          getEnv("PORT", "3000"),
	}

	if cfg.SlackBotToken == "" {
		return nil, errors.New("SLACK_BOT_TOKEN must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
