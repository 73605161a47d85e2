package mapper

import (
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/model"

	"gorm.io/gorm"
)

// EngagementMapper covers the two like-shaped association rows:
// comment likes and feedback reactions.
type EngagementMapper struct{}

func NewEngagementMapper() *EngagementMapper {
	return &EngagementMapper{}
}

func (m *EngagementMapper) LikeToEntity(l *model.CommentLike) *entity.CommentLike {
	if l == nil {
		return nil
	}

	var deletedAt *time.Time
	if l.DeletedAt.Valid {
		t := l.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.CommentLike{
		Id:        l.Id,
		CommentId: l.CommentId,
		UserId:    l.UserId,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: l.DeletedAt.Valid,
	}
}

func (m *EngagementMapper) LikeToModel(l *entity.CommentLike) *model.CommentLike {
	if l == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if l.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *l.DeletedAt, Valid: true}
	} else if l.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.CommentLike{
		Id:        l.Id,
		CommentId: l.CommentId,
		UserId:    l.UserId,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *EngagementMapper) ReactionToEntity(r *model.FeedbackReaction) *entity.FeedbackReaction {
	if r == nil {
		return nil
	}

	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.FeedbackReaction{
		Id:         r.Id,
		FeedbackId: r.FeedbackId,
		UserId:     r.UserId,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  r.DeletedAt.Valid,
	}
}

func (m *EngagementMapper) ReactionToModel(r *entity.FeedbackReaction) *model.FeedbackReaction {
	if r == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if r.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *r.DeletedAt, Valid: true}
	} else if r.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.FeedbackReaction{
		Id:         r.Id,
		FeedbackId: r.FeedbackId,
		UserId:     r.UserId,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *EngagementMapper) ReactionsToEntities(reactions []*model.FeedbackReaction) []*entity.FeedbackReaction {
	entities := make([]*entity.FeedbackReaction, len(reactions))
	for i, r := range reactions {
		entities[i] = m.ReactionToEntity(r)
	}
	return entities
}
