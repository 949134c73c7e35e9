package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr  string
	UploadDir   string
	DatabaseDSN string
	ModelPath   string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration, loaded from .env once.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
		config = &Config{
			ListenAddr:  getenv("LISTEN_ADDR", ":8005"),
			UploadDir:   getenv("UPLOAD_DIR", "uploads"),
			DatabaseDSN: os.Getenv("DB_DSN"),
			ModelPath:   getenv("MODEL_PATH", "best_model.json"),
		}
	})
	return config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
