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
	"feedback-forum-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.Feedback) error {
	m := r.mapper.ToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.Wrap("feedback.create", err)
	}
	*feedback = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) Update(ctx context.Context, feedback *entity.Feedback) error {
	m := r.mapper.ToModel(feedback)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return repoerr.Wrap("feedback.update", err)
	}
	*feedback = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	// Default scope excludes already-deleted rows, so re-deleting affects zero.
	res := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return 0, repoerr.Wrap("feedback.soft_delete", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *FeedbackRepositoryImpl) SoftDeleteWhere(ctx context.Context, at time.Time, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feedback{}), specs...)
	res := query.Updates(map[string]interface{}{"deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return 0, repoerr.Wrap("feedback.soft_delete_where", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *FeedbackRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Unscoped().Delete(&model.Feedback{}, id).Error
	return repoerr.Wrap("feedback.hard_delete", err)
}

func (r *FeedbackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	var m model.Feedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, repoerr.Wrap("feedback.find_one", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	var models []*model.Feedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, repoerr.Wrap("feedback.find_all", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeedbackRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feedback{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, repoerr.Wrap("feedback.count", err)
	}
	return count, nil
}
