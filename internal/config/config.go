package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	LogLevel         string
	Port             string
	StorageBackend   string // file | postgres | firestore
	PostgresDSN      string
	FirestoreProject string
	DaysFile         string
	PresetsFile      string
	AuthServiceURL   string
	LocalToken       string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:              getEnv("APP_ENV", "development"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			Port:             getEnv("PORT", "8090"),
			StorageBackend:   getEnv("STORAGE_BACKEND", "file"),
			PostgresDSN:      getEnv("POSTGRES_DSN", ""),
			FirestoreProject: getEnv("FIRESTORE_PROJECT", ""),
			DaysFile:         getEnv("DAYS_FILE", "data/days.json"),
			PresetsFile:      getEnv("PRESETS_FILE", "data/presets.json"),
			AuthServiceURL:   getEnv("AUTH_SERVICE_URL", ""),
			LocalToken:       getEnv("LOCAL_AUTH_TOKEN", "MOCK-TOKEN"),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "file":
		if c.DaysFile == "" || c.PresetsFile == "" {
			return errors.New("file storage requires DAYS_FILE and PRESETS_FILE to be set")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "firestore":
		if c.FirestoreProject == "" {
			return errors.New("FIRESTORE_PROJECT is required when STORAGE_BACKEND=firestore")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, postgres, firestore")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
