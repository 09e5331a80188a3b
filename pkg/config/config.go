package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	ReminderChannel     string // email | sms | push
	SchedulerEnabled    bool
	ReminderInterval    time.Duration
	FirebaseCredentials string
	PushDeviceTokens    []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	reminderInterval := 1 * time.Minute
	if iv := os.Getenv("REMINDER_INTERVAL"); iv != "" {
		if parsed, err := time.ParseDuration(iv); err == nil {
			reminderInterval = parsed
		}
	}

	var tokens []string
	for _, t := range strings.Split(os.Getenv("PUSH_DEVICE_TOKENS"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		ReminderChannel:     getEnv("REMINDER_CHANNEL", "email"),
		SchedulerEnabled:    getEnv("SCHEDULER_ENABLED", "false") == "true",
		ReminderInterval:    reminderInterval,
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		PushDeviceTokens:    tokens,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
