package main

import "os"

// Config holds all configuration for the catalog service. Postgres
// connection settings are read by the database package directly.
type Config struct {
	Port            string
	Env             string
	FeedURL         string
	FeedImportLimit int
	RedisURL        string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		FeedURL:         getEnv("FEED_URL", "https://famme.no/products.json"),
		FeedImportLimit: 10,
		RedisURL:        os.Getenv("REDIS_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
