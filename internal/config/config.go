package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SQLitePath      string
	OwnerID         string // Only this sender is tracked; empty = any direct chat
	BotPhone        string
	GoalPoints      int
	DefaultUsername string
	LogLevel        string
	ReplyDelayMinMs int  // Minimum delay before reply (milliseconds)
	ReplyDelayMaxMs int  // Maximum delay before reply (milliseconds), 0 = use min as fixed
	ShowTyping      bool // Show typing indicator during delay
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	return Config{
		SQLitePath:      getenv("SQLITE_PATH", "./data/greencity.db"),
		OwnerID:         getenv("OWNER_ID", ""),
		BotPhone:        getenv("BOT_PHONE", ""),
		GoalPoints:      getenvInt("GOAL_POINTS", 200),
		DefaultUsername: getenv("DEFAULT_USERNAME", "Eco Friend"),
		LogLevel:        strings.ToUpper(getenv("LOG_LEVEL", "INFO")),
		ReplyDelayMinMs: getenvInt("REPLY_DELAY_MIN_MS", 0),
		ReplyDelayMaxMs: getenvInt("REPLY_DELAY_MAX_MS", 0),
		ShowTyping:      getenvBool("SHOW_TYPING", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
