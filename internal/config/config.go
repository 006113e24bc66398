package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackChannelID     string
	DatabasePath       string
	Port               string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./bossalert.db"),
		Port:               getEnv("PORT", "3001"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
