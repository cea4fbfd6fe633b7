package config

import "os"

type Config struct {
	DiscordBotToken string
	ClistUsername   string
	ClistAPIKey     string
	DatabasePath    string
}

func Load() *Config {
	return &Config{
		DiscordBotToken: getEnv("DISCORD_BOT_TOKEN", ""),
		ClistUsername:   getEnv("CLIST_USERNAME", ""),
		ClistAPIKey:     getEnv("CLIST_API_KEY", ""),
		DatabasePath:    getEnv("DATABASE_PATH", "./contests.db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
