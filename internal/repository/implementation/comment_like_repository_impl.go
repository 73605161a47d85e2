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

type CommentLikeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EngagementMapper
}

func NewCommentLikeRepository(db *gorm.DB) contract.CommentLikeRepository {
	return &CommentLikeRepositoryImpl{
		db:     db,
		mapper: mapper.NewEngagementMapper(),
	}
}

func (r *CommentLikeRepositoryImpl) Create(ctx context.Context, like *entity.CommentLike) error {
	m := r.mapper.LikeToModel(like)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.Wrap("comment_like.create", err)
	}
	*like = *r.mapper.LikeToEntity(m)
	return nil
}

func (r *CommentLikeRepositoryImpl) FindActive(ctx context.Context, commentId, userId uuid.UUID) (*entity.CommentLike, error) {
	var m model.CommentLike
	err := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, repoerr.Wrap("comment_like.find_active", err)
	}
	return r.mapper.LikeToEntity(&m), nil
}

func (r *CommentLikeRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return 0, repoerr.Wrap("comment_like.soft_delete", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *CommentLikeRepositoryImpl) CountActive(ctx context.Context, commentId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentId).
		Count(&count).Error
	if err != nil {
		return 0, repoerr.Wrap("comment_like.count_active", err)
	}
	return count, nil
}
