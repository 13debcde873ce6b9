package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port        string
	DatasetPath string

	MLBackendURL string
	MaxMapPoints int
}

// Load reads the .env file (when present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using system env vars")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatasetPath:  getEnv("DATASET_PATH", "files/tablero_riesgos.csv"),
		MLBackendURL: getEnv("ML_BACKEND_URL", ""),
		MaxMapPoints: getEnvInt("MAX_MAP_POINTS", 3000),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
