package implementation

import (
	"context"
	"errors"
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/mapper"
	"feedback-forum-be/internal/model"
	"feedback-forum-be/internal/repository/contract"
	"feedback-forum-be/internal/repository/repoerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackReactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EngagementMapper
}

func NewFeedbackReactionRepository(db *gorm.DB) contract.FeedbackReactionRepository {
	return &FeedbackReactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewEngagementMapper(),
	}
}

func (r *FeedbackReactionRepositoryImpl) Create(ctx context.Context, reaction *entity.FeedbackReaction) error {
	m := r.mapper.ReactionToModel(reaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.Wrap("feedback_reaction.create", err)
	}
	*reaction = *r.mapper.ReactionToEntity(m)
	return nil
}

func (r *FeedbackReactionRepositoryImpl) FindActive(ctx context.Context, feedbackId, userId uuid.UUID) (*entity.FeedbackReaction, error) {
	var m model.FeedbackReaction
	err := r.db.WithContext(ctx).
		Where("feedback_id = ? AND user_id = ?", feedbackId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, repoerr.Wrap("feedback_reaction.find_active", err)
	}
	return r.mapper.ReactionToEntity(&m), nil
}

func (r *FeedbackReactionRepositoryImpl) FindActiveByFeedbackIds(ctx context.Context, feedbackIds []uuid.UUID) ([]*entity.FeedbackReaction, error) {
	if len(feedbackIds) == 0 {
		return []*entity.FeedbackReaction{}, nil
	}
	var models []*model.FeedbackReaction
	err := r.db.WithContext(ctx).
		Where("feedback_id IN ?", feedbackIds).
		Find(&models).Error
	if err != nil {
		return nil, repoerr.Wrap("feedback_reaction.find_active_by_feedback_ids", err)
	}
	return r.mapper.ReactionsToEntities(models), nil
}

func (r *FeedbackReactionRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.FeedbackReaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return 0, repoerr.Wrap("feedback_reaction.soft_delete", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *FeedbackReactionRepositoryImpl) CountActive(ctx context.Context, feedbackId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FeedbackReaction{}).
		Where("feedback_id = ?", feedbackId).
		Count(&count).Error
	if err != nil {
		return 0, repoerr.Wrap("feedback_reaction.count_active", err)
	}
	return count, nil
}
