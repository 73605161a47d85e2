package unitofwork

import (
	"context"

	"feedback-forum-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FeedbackRepository() contract.FeedbackRepository
	TagRepository() contract.TagRepository
	FeedbackTagRepository() contract.FeedbackTagRepository
	CommentRepository() contract.CommentRepository
	CommentLikeRepository() contract.CommentLikeRepository
	FeedbackReactionRepository() contract.FeedbackReactionRepository
	UserRepository() contract.UserRepository
	FeatureRepository() contract.FeatureRepository
	NotificationRepository() contract.NotificationRepository
}
