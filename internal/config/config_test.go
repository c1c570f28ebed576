package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StorageBackend)
	assert.Equal(t, "./bells.db", cfg.DatabasePath)
	assert.Equal(t, "en", cfg.TTSLanguage)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.MQTTBroker)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TTS_PROVIDER", "tts.google")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "tts.google", cfg.TTSProvider)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
}
