package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/giovaniif/hotel/domain/reservation"
)

const (
	GeneratorUUID = "uuid"
	GeneratorHex  = "hex"
)

type Config struct {
	ServiceName  string
	HotelName    string
	BasePrice    float64
	IdGenerator  string
	LogLevel     slog.Level
	LokiURL      string
	OTLPEndpoint string
}

// Load reads the configuration from the environment. Invalid values fall
// back to their defaults.
func Load() *Config {
	return &Config{
		ServiceName:  getEnvOrDefault("SERVICE_NAME", "hotel"),
		HotelName:    getEnvOrDefault("HOTEL_NAME", reservation.DefaultHotelName),
		BasePrice:    getEnvAsPositiveFloatOrDefault("BASE_PRICE", reservation.DefaultBasePrice),
		IdGenerator:  parseGenerator(os.Getenv("ID_GENERATOR")),
		LogLevel:     parseLevel(os.Getenv("LOG_LEVEL")),
		LokiURL:      os.Getenv("LOKI_URL"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsPositiveFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return defaultValue
	}
	return f
}

func parseGenerator(raw string) string {
	if strings.ToLower(strings.TrimSpace(raw)) == GeneratorHex {
		return GeneratorHex
	}
	return GeneratorUUID
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}
