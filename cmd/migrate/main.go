package main

import (
	"context"
	"flag"
	"log"
	"time"

	"cargo-tracker/internal/core/config"
	"cargo-tracker/internal/core/database"
	"cargo-tracker/internal/core/logger"
	orderadapter "cargo-tracker/internal/features/orders/adapters"
	orderservice "cargo-tracker/internal/features/orders/service"

	"go.uber.org/zap"
)

func main() {
	var (
		seedCount = flag.Int("seed", 0, "number of demo orders to insert after migrating")
		batchSize = flag.Int("batch", 500, "orders per insert transaction")
	)
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	l := logger.Get()

	db, err := database.Open(cfg.Database)
	if err != nil {
		l.Fatal("Database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	ctx := context.Background()
	repo := orderadapter.NewGormOrderRepository(db)

	start := time.Now()
	if err := repo.Migrate(ctx); err != nil {
		l.Fatal("Schema migration failed", zap.Error(err))
	}
	l.Info("Schema migrated",
		zap.String("driver", cfg.Database.Driver),
		zap.Duration("took", time.Since(start)),
	)

	if *seedCount <= 0 {
		return
	}

	start = time.Now()
	seeded, err := seed(ctx, orderservice.NewOrderService(repo), seedConfig{
		Orders:    *seedCount,
		BatchSize: *batchSize,
	})
	if err != nil {
		l.Fatal("Seeding failed", zap.Int("seeded", seeded), zap.Error(err))
	}
	l.Info("Demo orders seeded", zap.Int("orders", seeded), zap.Duration("took", time.Since(start)))
}
