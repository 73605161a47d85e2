package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"feedback-forum-be/internal/config"
	"feedback-forum-be/internal/pkg/logger"
	"feedback-forum-be/pkg/events"
	pktNats "feedback-forum-be/pkg/nats"
)

// The audit worker runs outside the API instances. It drains the mirrored
// event stream into the audit log, so moderation can reconstruct activity
// even across API restarts.
func main() {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		log.Fatal("Error: NATS_URL is not set")
	}

	auditLogger := logger.NewZapLogger("logs/forum_audit.log", cfg.App.Environment == "production")
	defer auditLogger.Sync()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("forum.>", "forum-audit", func(ctx context.Context, event events.Event) error {
		auditLogger.Info("Audit", event.EventType(), event.Payload())
		return nil
	})
	if err != nil {
		log.Fatalf("Error: Failed to subscribe: %v", err)
	}

	log.Println("Audit worker is consuming forum events...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Audit worker shutting down")
}
