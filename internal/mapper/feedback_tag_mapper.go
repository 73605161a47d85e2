package mapper

import (
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/model"

	"gorm.io/gorm"
)

type FeedbackTagMapper struct{}

func NewFeedbackTagMapper() *FeedbackTagMapper {
	return &FeedbackTagMapper{}
}

func (m *FeedbackTagMapper) ToEntity(l *model.FeedbackTag) *entity.FeedbackTag {
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

	return &entity.FeedbackTag{
		Id:         l.Id,
		FeedbackId: l.FeedbackId,
		TagId:      l.TagId,
		UserId:     l.UserId,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  l.DeletedAt.Valid,
	}
}

func (m *FeedbackTagMapper) ToModel(l *entity.FeedbackTag) *model.FeedbackTag {
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

	return &model.FeedbackTag{
		Id:         l.Id,
		FeedbackId: l.FeedbackId,
		TagId:      l.TagId,
		UserId:     l.UserId,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *FeedbackTagMapper) ToEntities(links []*model.FeedbackTag) []*entity.FeedbackTag {
	entities := make([]*entity.FeedbackTag, len(links))
	for i, l := range links {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

func (m *FeedbackTagMapper) ToModels(links []*entity.FeedbackTag) []*model.FeedbackTag {
	models := make([]*model.FeedbackTag, len(links))
	for i, l := range links {
		models[i] = m.ToModel(l)
	}
	return models
}
