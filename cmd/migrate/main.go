package main

import (
	"log"
	"os"

	"feedback-forum-be/internal/model"
	"feedback-forum-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	// Migration runs on the admin connection when available: it owns the
	// schema and is not subject to row-level security.
	dsn := os.Getenv("DB_ADMIN_CONNECTION_STRING")
	if dsn == "" {
		dsn = os.Getenv("DB_CONNECTION_STRING")
	}
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.User{},
		&model.Feature{},
		&model.Feedback{},
		&model.Tag{},
		&model.FeedbackTag{},
		&model.Comment{},
		&model.CommentLike{},
		&model.FeedbackReaction{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Partial unique indexes keep one ACTIVE row per pair while letting the
	// soft-deleted history accumulate. AutoMigrate cannot express these.
	postMigrationSQL := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_feedback_tags_active
		 ON feedback_tags (feedback_id, tag_id) WHERE deleted_at IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_comment_likes_active
		 ON comment_likes (comment_id, user_id) WHERE deleted_at IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_feedback_reactions_active
		 ON feedback_reactions (feedback_id, user_id) WHERE deleted_at IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_tags_name ON tags (name);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
