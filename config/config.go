package config

import (
	"os"
	"strconv"
	"time"

	"image-fetcher/domain"
)

const (
	DefaultOutputDir = "Fetched_Images"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Image Fetcher - a respectful community tool"
)

type Config struct {
	OutputDir    string
	HTTPTimeout  time.Duration
	MaxImageSize int64
	UserAgent    string
}

func LoadConfig() Config {
	return Config{
		OutputDir:    getEnv("OUTPUT_DIR", DefaultOutputDir),
		HTTPTimeout:  time.Duration(getEnvInt64("HTTP_TIMEOUT_SECONDS", int64(DefaultTimeout/time.Second))) * time.Second,
		MaxImageSize: getEnvInt64("MAX_FILE_SIZE_BYTES", domain.DefaultMaxImageSize),
		UserAgent:    getEnv("USER_AGENT", DefaultUserAgent),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
