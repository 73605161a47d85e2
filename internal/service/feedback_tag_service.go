package service

import (
	"context"
	"time"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/repository/specification"
	"feedback-forum-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackTagService interface {
	AddTagsToFeedback(ctx context.Context, feedbackId uuid.UUID, tagIds []uuid.UUID, userId uuid.UUID) error
	AddTagToFeedback(ctx context.Context, feedbackId, tagId, userId uuid.UUID) error
	RemoveTagFromFeedback(ctx context.Context, feedbackId, tagId uuid.UUID) error
	GetTagsForFeedback(ctx context.Context, feedbackId uuid.UUID) ([]dto.TagResponse, error)
	GetFeedbackIdsByTagId(ctx context.Context, tagId uuid.UUID) ([]uuid.UUID, error)
	UpdateFeedbackTags(ctx context.Context, feedbackId uuid.UUID, tagIds []uuid.UUID, userId uuid.UUID) error
	GetTagCountForFeedback(ctx context.Context, feedbackId uuid.UUID) (int64, error)
	GetFeedbackCountForTag(ctx context.Context, tagId uuid.UUID) (int64, error)
	FeedbackHasTag(ctx context.Context, feedbackId, tagId uuid.UUID) (bool, error)
}

type feedbackTagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeedbackTagService(uowFactory unitofwork.RepositoryFactory) IFeedbackTagService {
	return &feedbackTagService{uowFactory: uowFactory}
}

func (s *feedbackTagService) AddTagsToFeedback(ctx context.Context, feedbackId uuid.UUID, tagIds []uuid.UUID, userId uuid.UUID) error {
	if len(tagIds) == 0 {
		// Attaching nothing is a successful no-op, not an error.
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	links := newTagLinks(feedbackId, tagIds, userId, time.Now())
	return uow.FeedbackTagRepository().CreateBatch(ctx, links)
}

func (s *feedbackTagService) AddTagToFeedback(ctx context.Context, feedbackId, tagId, userId uuid.UUID) error {
	return s.AddTagsToFeedback(ctx, feedbackId, []uuid.UUID{tagId}, userId)
}

func (s *feedbackTagService) RemoveTagFromFeedback(ctx context.Context, feedbackId, tagId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Zero affected rows means the link was already removed; removing twice
	// stays idempotent.
	_, err := uow.FeedbackTagRepository().SoftDeleteActive(ctx, feedbackId, tagId, time.Now())
	return err
}

func (s *feedbackTagService) GetTagsForFeedback(ctx context.Context, feedbackId uuid.UUID) ([]dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	links, err := uow.FeedbackTagRepository().FindActiveWithTags(ctx, []uuid.UUID{feedbackId})
	if err != nil {
		return nil, err
	}

	tags := make([]dto.TagResponse, 0, len(links))
	for _, l := range links {
		tags = append(tags, dto.TagResponse{
			Id:          l.Tag.Id,
			Name:        l.Tag.Name,
			Description: l.Tag.Description,
			CreatedAt:   l.Tag.CreatedAt,
		})
	}
	return tags, nil
}

func (s *feedbackTagService) GetFeedbackIdsByTagId(ctx context.Context, tagId uuid.UUID) ([]uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	links, err := uow.FeedbackTagRepository().FindAll(ctx, specification.ByTagID{TagID: tagId})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(links))
	for i, l := range links {
		ids[i] = l.FeedbackId
	}
	return ids, nil
}

// UpdateFeedbackTags replaces the whole tag set: every active link is
// soft-deleted, then the new set is inserted. Both steps share one
// transaction, so a failed insert cannot strand the post with zero tags.
func (s *feedbackTagService) UpdateFeedbackTags(ctx context.Context, feedbackId uuid.UUID, tagIds []uuid.UUID, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	now := time.Now()
	if _, err := uow.FeedbackTagRepository().SoftDeleteAllForFeedback(ctx, feedbackId, now); err != nil {
		uow.Rollback()
		return err
	}

	if len(tagIds) > 0 {
		links := newTagLinks(feedbackId, tagIds, userId, now)
		if err := uow.FeedbackTagRepository().CreateBatch(ctx, links); err != nil {
			uow.Rollback()
			return err
		}
	}
	return uow.Commit()
}

func (s *feedbackTagService) GetTagCountForFeedback(ctx context.Context, feedbackId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeedbackTagRepository().Count(ctx, specification.ByFeedbackID{FeedbackID: feedbackId})
}

func (s *feedbackTagService) GetFeedbackCountForTag(ctx context.Context, tagId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeedbackTagRepository().Count(ctx, specification.ByTagID{TagID: tagId})
}

func (s *feedbackTagService) FeedbackHasTag(ctx context.Context, feedbackId, tagId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.FeedbackTagRepository().Count(ctx,
		specification.ByFeedbackID{FeedbackID: feedbackId},
		specification.ByTagID{TagID: tagId},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
