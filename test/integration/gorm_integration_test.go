package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/model"
	"feedback-forum-be/internal/repository/unitofwork"
	"feedback-forum-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.FeedbackRepository())
	assert.NotNil(t, uow.TagRepository())
	assert.NotNil(t, uow.FeedbackTagRepository())
	assert.NotNil(t, uow.CommentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Feedback Repository", func(t *testing.T) {
		count, err := uow.FeedbackRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Feedback count: %d", count)
	})

	t.Run("Check Tag Repository", func(t *testing.T) {
		count, err := uow.TagRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Tag count: %d", count)
	})

	t.Run("Check Transactional Feedback Tagging", func(t *testing.T) {
		ctx := context.Background()

		// Users are owned by the auth system, so seed one directly.
		userId := uuid.New()
		user := &model.User{
			Id:          userId,
			DisplayName: "Integration Test User " + uuid.New().String()[:8],
		}
		err := gormDB.WithContext(ctx).Create(user).Error
		assert.NoError(t, err)

		tagId := uuid.New()
		tag := &entity.Tag{
			Id:        tagId,
			Name:      "integration-tag-" + uuid.New().String(),
			CreatedAt: time.Now(),
		}
		err = uow.TagRepository().Create(ctx, tag)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		now := time.Now()
		feedbackId := uuid.New()
		feedback := &entity.Feedback{
			Id:        feedbackId,
			UserId:    userId,
			Title:     "Integration feedback",
			CreatedAt: now,
			UpdatedAt: &now,
		}
		err = uow.FeedbackRepository().Create(ctx, feedback)
		assert.NoError(t, err)

		links := []*entity.FeedbackTag{{
			Id:         uuid.New(),
			FeedbackId: feedbackId,
			TagId:      tagId,
			UserId:     userId,
			CreatedAt:  now,
		}}
		err = uow.FeedbackTagRepository().CreateBatch(ctx, links)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Feedback with Tag link in Transaction")

		// The active-link unique index should reject a duplicate pair.
		dup := []*entity.FeedbackTag{{
			Id:         uuid.New(),
			FeedbackId: feedbackId,
			TagId:      tagId,
			UserId:     userId,
			CreatedAt:  time.Now(),
		}}
		err = uow.FeedbackTagRepository().CreateBatch(ctx, dup)
		assert.Error(t, err)
	})
}
