package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cargo-tracker/internal/core/auth"
	"cargo-tracker/internal/core/cache"
	"cargo-tracker/internal/core/config"
	"cargo-tracker/internal/core/database"
	"cargo-tracker/internal/core/logger"
	"cargo-tracker/internal/core/server"
	importhandler "cargo-tracker/internal/features/imports/handler"
	importservice "cargo-tracker/internal/features/imports/service"
	noticeadapters "cargo-tracker/internal/features/notices/adapters"
	noticehandler "cargo-tracker/internal/features/notices/handler"
	noticeservice "cargo-tracker/internal/features/notices/service"
	notifyadapters "cargo-tracker/internal/features/notifications/adapters"
	notifyservice "cargo-tracker/internal/features/notifications/service"
	orderadapter "cargo-tracker/internal/features/orders/adapters"
	orderhandler "cargo-tracker/internal/features/orders/handler"
	orderports "cargo-tracker/internal/features/orders/ports"
	orderservice "cargo-tracker/internal/features/orders/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Cargo Tracker API
// @version 1.0
// @description Order tracking, status history and back-office order management for a cargo forwarder.
// @contact.name API Support
// @contact.email support@cargo-tracker.mn
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// Database
	db, err := database.Open(cfg.Database)
	if err != nil {
		l.Fatal("Database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	orderRepo := orderadapter.NewGormOrderRepository(db)
	if err := orderRepo.Migrate(context.Background()); err != nil {
		l.Fatal("Schema migration failed", zap.Error(err))
	}
	l.Info("Database ready")

	srv := server.New(cfg)
	srv.AddHealthCheck("database", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	opts := []orderservice.Option{}

	// Redis backs the tracking cache and the notice board
	var noticeHdl *noticehandler.NoticeHandler
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Redis configuration invalid", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(context.Background()); err != nil {
			l.Warn("Redis unreachable, lookups will go to the database", zap.Error(err))
		}
		srv.AddHealthCheck("redis", redisCache.Ping)

		noticeSvc := noticeservice.NewNoticeService(noticeadapters.NewRedisNoticeRepository(redisCache))
		noticeHdl = noticehandler.NewNoticeHandler(noticeSvc)

		opts = append(opts,
			orderservice.WithTrackingCache(orderadapter.NewRedisTrackingCache(redisCache, cfg.Redis.CacheTTL())),
			orderservice.WithNotices(noticeSvc),
		)
	} else {
		l.Warn("Redis disabled, tracking cache and notices are off")
	}

	// Status change notifications
	var notifiers []orderports.Notifier
	if cfg.Kafka.Enabled {
		publisher := notifyadapters.NewKafkaPublisher(notifyadapters.NewKafkaWriter(cfg.Kafka))
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
		l.Info("Kafka status events enabled",
			zap.Strings("brokers", cfg.Kafka.BrokerList()),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}
	if cfg.SMS.Enabled {
		notifiers = append(notifiers, notifyadapters.NewSMSGateway(cfg.SMS))
		l.Info("SMS notifications enabled")
	}
	if dispatcher := notifyservice.NewDispatcher(notifiers...); dispatcher.Len() > 0 {
		opts = append(opts, orderservice.WithNotifier(dispatcher))
	}

	// Services & Handlers
	orderSvc := orderservice.NewOrderService(orderRepo, opts...)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)
	importHdl := importhandler.NewImportHandler(importservice.NewImportService(orderSvc))

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	resolver := auth.NewResolver(verifier,
		auth.CookieStrategy{CookieName: cfg.Auth.CookieName},
		auth.BearerStrategy{},
	)

	staff := auth.RequireRole(auth.RoleAdmin, auth.RoleEmployee)
	admin := auth.RequireRole(auth.RoleAdmin)

	// Register Routes
	app := srv.App
	app.Use(auth.Authenticate(resolver))

	app.Get("/track/:ref", orderHdl.Track)

	orders := app.Group("/orders")
	orders.Get("/phone/:phone", auth.RequireAuth(), orderHdl.ListByPhone)
	orders.Get("/stats", staff, orderHdl.Stats)
	orders.Get("/", staff, orderHdl.ListOrders)
	orders.Post("/", staff, orderHdl.CreateOrder)
	orders.Post("/import", staff, importHdl.ImportOrders)
	orders.Get("/:ref", auth.RequireAuth(), orderHdl.GetOrder)
	orders.Patch("/:id/status", staff, orderHdl.TransitionStatus)
	orders.Put("/:id", staff, orderHdl.UpdateOrder)
	orders.Delete("/:id", admin, orderHdl.DeleteOrder)

	if noticeHdl != nil {
		app.Get("/notices", noticeHdl.ListNotices)
		app.Post("/notices", staff, noticeHdl.PostNotice)
		app.Delete("/notices/:id", admin, noticeHdl.RemoveNotice)
	}

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down")
	if err := srv.Shutdown(shutdownTimeout); err != nil {
		l.Error("Graceful shutdown failed", zap.Error(err))
	}
}
