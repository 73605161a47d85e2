package implementation

import (
	"context"
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/mapper"
	"feedback-forum-be/internal/model"
	"feedback-forum-be/internal/repository/contract"
	"feedback-forum-be/internal/repository/repoerr"
	"feedback-forum-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackTagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackTagMapper
}

func NewFeedbackTagRepository(db *gorm.DB) contract.FeedbackTagRepository {
	return &FeedbackTagRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackTagMapper(),
	}
}

func (r *FeedbackTagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeedbackTagRepositoryImpl) CreateBatch(ctx context.Context, links []*entity.FeedbackTag) error {
	if len(links) == 0 {
		return nil
	}
	models := r.mapper.ToModels(links)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return repoerr.Wrap("feedback_tag.create_batch", err)
	}
	for i, m := range models {
		*links[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *FeedbackTagRepositoryImpl) SoftDeleteActive(ctx context.Context, feedbackId, tagId uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.FeedbackTag{}).
		Where("feedback_id = ? AND tag_id = ?", feedbackId, tagId).
		Updates(map[string]interface{}{"deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return 0, repoerr.Wrap("feedback_tag.soft_delete_active", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *FeedbackTagRepositoryImpl) SoftDeleteAllForFeedback(ctx context.Context, feedbackId uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.FeedbackTag{}).
		Where("feedback_id = ?", feedbackId).
		Updates(map[string]interface{}{"deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return 0, repoerr.Wrap("feedback_tag.soft_delete_all", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *FeedbackTagRepositoryImpl) HardDeleteByTag(ctx context.Context, tagId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("tag_id = ?", tagId).
		Delete(&model.FeedbackTag{})
	if res.Error != nil {
		return 0, repoerr.Wrap("feedback_tag.hard_delete_by_tag", res.Error)
	}
	return res.RowsAffected, nil
}

// taggedLinkRow is the flat scan target of the link-to-tag join.
type taggedLinkRow struct {
	FeedbackId   uuid.UUID
	TagId        uuid.UUID
	Name         string
	Description  string
	TagCreatedAt time.Time
}

func (r *FeedbackTagRepositoryImpl) FindActiveWithTags(ctx context.Context, feedbackIds []uuid.UUID) ([]*contract.TaggedLink, error) {
	if len(feedbackIds) == 0 {
		return []*contract.TaggedLink{}, nil
	}

	var rows []taggedLinkRow
	err := r.db.WithContext(ctx).
		Table("feedback_tags").
		Select("feedback_tags.feedback_id, tags.id AS tag_id, tags.name, tags.description, tags.created_at AS tag_created_at").
		Joins("JOIN tags ON tags.id = feedback_tags.tag_id").
		Where("feedback_tags.feedback_id IN ?", feedbackIds).
		Where("feedback_tags.deleted_at IS NULL").
		Order("feedback_tags.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, repoerr.Wrap("feedback_tag.find_active_with_tags", err)
	}

	links := make([]*contract.TaggedLink, len(rows))
	for i, row := range rows {
		links[i] = &contract.TaggedLink{
			FeedbackId: row.FeedbackId,
			Tag: &entity.Tag{
				Id:          row.TagId,
				Name:        row.Name,
				Description: row.Description,
				CreatedAt:   row.TagCreatedAt,
			},
		}
	}
	return links, nil
}

func (r *FeedbackTagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackTag, error) {
	var models []*model.FeedbackTag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, repoerr.Wrap("feedback_tag.find_all", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeedbackTagRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FeedbackTag{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, repoerr.Wrap("feedback_tag.count", err)
	}
	return count, nil
}
