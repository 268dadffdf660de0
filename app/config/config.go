package config

import (
	"os"
	"strings"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Engine         EngineConfig
}

type EngineConfig struct {
	Difficulty string // "easy", "medium", "hard"
	Persona    string
	Color      string // side the engine plays when the request does not say
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS", "*")),
		Engine: EngineConfig{
			Difficulty: getenv("DEFAULT_DIFFICULTY", "medium"),
			Persona:    getenv("DEFAULT_PERSONA", "teacher"),
			Color:      getenv("DEFAULT_ENGINE_COLOR", "black"),
		},
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
