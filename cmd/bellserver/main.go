package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/familybell/bell-scheduler/internal/config"
	"github.com/familybell/bell-scheduler/internal/database"
	"github.com/familybell/bell-scheduler/internal/delivery/homeassistant"
	"github.com/familybell/bell-scheduler/internal/domain/contract"
	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"github.com/familybell/bell-scheduler/internal/domain/service"
	"github.com/familybell/bell-scheduler/internal/events"
	mqttevents "github.com/familybell/bell-scheduler/internal/events/mqtt"
	"github.com/familybell/bell-scheduler/internal/handlers"
	"github.com/familybell/bell-scheduler/internal/logger"
	"github.com/familybell/bell-scheduler/internal/redisstore"
	sqlitemigrator "github.com/familybell/bell-scheduler/migrator/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat, "bell-scheduler")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	var store contract.DocumentStore
	switch cfg.StorageBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			cancel()
			zapLogger.Fatal("failed to connect to redis", zap.Error(err))
		}
		cancel()
		defer client.Close()

		store = redisstore.New(client, "")
		zapLogger.Info("using redis storage", zap.String("addr", cfg.RedisAddr))

	default:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			zapLogger.Fatal("failed to initialize database", zap.Error(err))
		}
		defer db.Close()

		if err := sqlitemigrator.Migrate(db.DB()); err != nil {
			zapLogger.Fatal("failed to run migrations", zap.Error(err))
		}

		store = database.NewDocumentStore(db)
		zapLogger.Info("using sqlite storage", zap.String("path", cfg.DatabasePath))
	}

	haClient := homeassistant.New(cfg.HassBaseURL, cfg.HassToken, zapLogger)

	var publisher contract.EventPublisher = events.NopPublisher{}
	if cfg.MQTTBroker != "" {
		mqttPublisher, err := mqttevents.NewPublisher(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopic, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to connect to MQTT broker", zap.Error(err))
		}
		defer mqttPublisher.Close()
		publisher = mqttPublisher
	}

	svc := service.NewInstance(store, haClient, haClient, publisher, entity.TTSDefaults{
		Provider: cfg.TTSProvider,
		Voice:    cfg.TTSVoice,
		Language: cfg.TTSLanguage,
	}, zapLogger)

	if err := svc.Bells.LoadData(context.Background()); err != nil {
		zapLogger.Fatal("failed to load bell data", zap.Error(err))
	}

	svc.Scheduler.Rebuild()
	defer svc.Scheduler.Stop()

	mux := http.NewServeMux()
	handlers.New(svc, zapLogger).Register(mux)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
