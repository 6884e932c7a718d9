package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/speakup-app/speakup-api/internal/config"
	"github.com/speakup-app/speakup-api/internal/handlers"
	"github.com/speakup-app/speakup-api/internal/services"
	"github.com/speakup-app/speakup-api/internal/store"
	"github.com/speakup-app/speakup-api/internal/utils"
)

func main() {
	// No .env file is fine; rely on the environment.
	_ = godotenv.Load()

	boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := newLogger(cfg)

	ctx := context.Background()

	// A failed connect is not fatal: the gate stays closed and every
	// request is served from the fallback dataset.
	var mongoStore *store.Mongo
	var client *mongo.Client
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	client, err = mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err == nil {
		mongoStore, err = store.NewMongo(connectCtx, client.Database(cfg.MongoDatabase))
	}
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("database connection failed, continuing with fallback data")
		if client != nil {
			_ = client.Disconnect(ctx)
		}
		mongoStore = nil
		client = nil
	} else {
		log.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")
		defer client.Disconnect(ctx)
	}

	gate := store.NewGate(client, cfg.DBPingInterval, log)
	gate.Start(ctx)

	st := store.New(gate, mongoStore, store.NewFallback())
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	generator := services.NewScriptGenerator()

	h := handlers.New(st, tokens, generator, log,
		cfg.Production(), int(cfg.TokenTTL.Seconds()))

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(h, allowedOrigins(cfg))

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.Production() {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}

func allowedOrigins(cfg *config.Config) []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return origins
}
