// @title English Learning API
// @version 1.0
// @description Backend for the English learning web app: vocabulary, grammar, topics, exercises, tests, favorites and progress.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"english_learning_backend/internal/app"
	"english_learning_backend/internal/config"
	"english_learning_backend/pkg/logger"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	seedOnly := flag.Bool("seed-only", false, "seed empty collections from fixtures and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.SeedOnly = *seedOnly

	application := app.NewApp(cfg, app.ConfigFile(*configDir))

	if *seedOnly {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		result := application.Seed(ctx)
		cancel()
		logger.Log.Info("Seeding finished", zap.Any("inserted", result))
		application.Close()
		return
	}

	application.Run()
}
