package main

import (
	"context"
	"flag"
	"log"
	"time"

	"quiz-assign/internal/config"
	"quiz-assign/internal/database"
	"quiz-assign/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 1, "number of migrations to revert with -direction=down (0 = all)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db)
	if err != nil {
		l.Fatal("Failed to load migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var count int
	switch *direction {
	case "up":
		count, err = migrator.Up(ctx)
	case "down":
		count, err = migrator.Down(ctx, *steps)
	default:
		l.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}
	if err != nil {
		l.Fatal("Migration failed", zap.String("direction", *direction), zap.Int("applied", count), zap.Error(err))
	}

	l.Info("Migrations completed successfully", zap.String("direction", *direction), zap.Int("count", count))
}
