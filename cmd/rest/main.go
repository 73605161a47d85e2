package main

import (
	"context"
	"log"

	"feedback-forum-be/internal/bootstrap"
	"feedback-forum-be/internal/config"
	"feedback-forum-be/internal/server"
	"feedback-forum-be/internal/tracer"
	"feedback-forum-be/pkg/database"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Configuration
	cfg := config.Load()

	// 2. Databases. The admin connection falls back to the app connection for
	// single-role local setups.
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	adminDB := gormDB
	if cfg.Database.AdminConnection != "" {
		adminDB, err = database.NewGormDBFromDSN(cfg.Database.AdminConnection)
		if err != nil {
			log.Panicf("Unable to connect to admin GORM DB: %v", err)
		}
	}

	// 3. Container
	container := bootstrap.NewContainer(gormDB, adminDB, cfg)

	// 4. Background consumer
	if err := container.NotificationService.Start(context.Background()); err != nil {
		log.Printf("Background notification consumer error: %v", err)
	}

	// 5. Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
