package cli

import (
	"os"
	"strconv"
	"time"

	"github.com/ratel-online/uno/consts"
)

// Config holds the settings for one game at the terminal. Zero player or
// card counts are asked for interactively.
type Config struct {
	Players        int
	CardsPerPlayer int
	Delay          time.Duration
	NoColor        bool
}

// DefaultConfig returns a Config filled from the environment.
func DefaultConfig() *Config {
	return &Config{
		Players:        getEnvIntOrDefault("UNO_PLAYERS", 0),
		CardsPerPlayer: getEnvIntOrDefault("UNO_CARDS", 0),
		Delay:          getEnvDurationOrDefault("UNO_DELAY", consts.DefaultDelay),
		NoColor:        getEnvBoolOrDefault("UNO_NO_COLOR", false),
	}
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
