package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// StorageBackend selects where the bell document lives: "sqlite" or "redis".
	StorageBackend string
	DatabasePath   string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// Home Assistant API used for the announce and play-media calls.
	HassBaseURL string
	HassToken   string

	// Optional MQTT broker for data-changed notifications.
	MQTTBroker   string
	MQTTClientID string
	MQTTTopic    string

	// Global TTS defaults, used when a bell carries no override.
	TTSProvider string
	TTSVoice    string
	TTSLanguage string

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		StorageBackend: getEnv("STORAGE_BACKEND", "sqlite"),
		DatabasePath:   getEnv("DATABASE_PATH", "./bells.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		HassBaseURL:    getEnv("HASS_BASE_URL", "http://localhost:8123"),
		HassToken:      getEnv("HASS_TOKEN", ""),
		MQTTBroker:     getEnv("MQTT_BROKER", ""),
		MQTTClientID:   getEnv("MQTT_CLIENT_ID", "bell-scheduler"),
		MQTTTopic:      getEnv("MQTT_TOPIC", "bell-scheduler/events"),
		TTSProvider:    getEnv("TTS_PROVIDER", ""),
		TTSVoice:       getEnv("TTS_VOICE", ""),
		TTSLanguage:    getEnv("TTS_LANGUAGE", "en"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
