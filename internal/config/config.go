package config

import (
	"os"
	"strconv"
)

type Config struct {
	SlackBotToken  string
	SlackAppToken  string
	CommandPrefix  string
	ReserveChannel string
	PostChannel    string
	StorageDriver  string
	DatabasePath   string
	StorePath      string
	BootstrapAdmin string
	RetentionDays  int
	CleanupCron    string
}

func Load() *Config {
	return &Config{
		SlackBotToken:  getEnv("SLACK_BOT_TOKEN", ""),
		SlackAppToken:  getEnv("SLACK_APP_TOKEN", ""),
		CommandPrefix:  getEnv("COMMAND_PREFIX", "!reservebot"),
		ReserveChannel: getEnv("RESERVE_CHANNEL", "reservations"),
		PostChannel:    getEnv("POST_CHANNEL", "general"),
		StorageDriver:  getEnv("STORAGE_DRIVER", "sqlite"),
		DatabasePath:   getEnv("DATABASE_PATH", "./reservations.db"),
		StorePath:      getEnv("STORE_PATH", "./reservations.json"),
		BootstrapAdmin: getEnv("BOOTSTRAP_ADMIN", ""),
		RetentionDays:  getEnvInt("RETENTION_DAYS", 0),
		CleanupCron:    getEnv("CLEANUP_CRON", "0 3 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
