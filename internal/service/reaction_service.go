package service

import (
	"context"
	"time"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReactionService interface {
	// GetFeedbackReactionsBatch aggregates reactions for a whole page of
	// feedback in one round trip. Output order matches the input order.
	GetFeedbackReactionsBatch(ctx context.Context, feedbackIds []uuid.UUID, userId *uuid.UUID) ([]*dto.ReactionSummaryResponse, error)
	Toggle(ctx context.Context, feedbackId, userId uuid.UUID) (bool, error)
}

type reactionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReactionService(uowFactory unitofwork.RepositoryFactory) IReactionService {
	return &reactionService{uowFactory: uowFactory}
}

func (s *reactionService) GetFeedbackReactionsBatch(ctx context.Context, feedbackIds []uuid.UUID, userId *uuid.UUID) ([]*dto.ReactionSummaryResponse, error) {
	if len(feedbackIds) == 0 {
		return []*dto.ReactionSummaryResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	reactions, err := uow.FeedbackReactionRepository().FindActiveByFeedbackIds(ctx, feedbackIds)
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(feedbackIds))
	reacted := make(map[uuid.UUID]bool)
	for _, r := range reactions {
		counts[r.FeedbackId]++
		if userId != nil && r.UserId == *userId {
			reacted[r.FeedbackId] = true
		}
	}

	// Shape the result in the caller's order, not storage order.
	summaries := make([]*dto.ReactionSummaryResponse, len(feedbackIds))
	for i, id := range feedbackIds {
		summaries[i] = &dto.ReactionSummaryResponse{
			FeedbackId:     id,
			ReactionCount:  counts[id],
			UserHasReacted: reacted[id],
		}
	}
	return summaries, nil
}

// Toggle works like the comment-like toggle: soft-delete the active row or
// insert a fresh one, inside a transaction.
func (s *reactionService) Toggle(ctx context.Context, feedbackId, userId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	repo := uow.FeedbackReactionRepository()

	existing, err := repo.FindActive(ctx, feedbackId, userId)
	if err != nil {
		uow.Rollback()
		return false, err
	}

	if existing != nil {
		if _, err := repo.SoftDelete(ctx, existing.Id, time.Now()); err != nil {
			uow.Rollback()
			return false, err
		}
		return false, uow.Commit()
	}

	now := time.Now()
	reaction := entity.FeedbackReaction{
		Id:         uuid.New(),
		FeedbackId: feedbackId,
		UserId:     userId,
		CreatedAt:  now,
		UpdatedAt:  &now,
	}
	if err := repo.Create(ctx, &reaction); err != nil {
		uow.Rollback()
		return false, err
	}
	return true, uow.Commit()
}
