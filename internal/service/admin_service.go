package service

import (
	"context"
	"strings"
	"time"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"
	"feedback-forum-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IAdminService covers the moderation surface. It runs on the privileged
// connection, so row visibility is not limited to the caller's own rows and
// soft-deleted data stays reachable.
type IAdminService interface {
	GetAllFeedback(ctx context.Context, limit, offset *int) (*dto.AdminFeedbackPageResponse, error)
	GetDeletedFeedback(ctx context.Context, limit, offset *int) (*dto.AdminFeedbackPageResponse, error)
	BulkSoftDeleteFeedback(ctx context.Context, req *dto.BulkSoftDeleteFeedbackRequest) (*dto.AffectedRowsResponse, error)
	HardDeleteFeedback(ctx context.Context, id uuid.UUID) error
	BulkCreateTags(ctx context.Context, req *dto.BulkCreateTagsRequest) (*dto.BulkCreateTagsResponse, error)
	ForceDeleteTag(ctx context.Context, tagId uuid.UUID) error
	GetAllFeedbackTags(ctx context.Context, feedbackId uuid.UUID) ([]*dto.FeedbackTagLinkResponse, error)
	BulkDeleteTagsForFeedback(ctx context.Context, feedbackId uuid.UUID) (*dto.AffectedRowsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

// NewAdminService takes the factory bound to the privileged connection, not
// the per-request one.
func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

func adminPageSpecs(limit, offset *int) []specification.Specification {
	specs := []specification.Specification{}
	if offset != nil {
		size := defaultPageSize
		if limit != nil {
			size = *limit
		}
		specs = append(specs, specification.Pagination{Limit: size, Offset: *offset})
	} else if limit != nil {
		specs = append(specs, specification.Limit{N: *limit})
	}
	return specs
}

func (s *adminService) GetAllFeedback(ctx context.Context, limit, offset *int) (*dto.AdminFeedbackPageResponse, error) {
	specs := append([]specification.Specification{
		specification.WithDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}, adminPageSpecs(limit, offset)...)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.FeedbackRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	count, err := uow.FeedbackRepository().Count(ctx, specification.WithDeleted{})
	if err != nil {
		return nil, err
	}
	return buildAdminPage(items, count), nil
}

// GetDeletedFeedback lists only soft-deleted rows, most recently deleted
// first. The delete re-stamps updated_at, so updated_at ordering is deletion
// ordering here.
func (s *adminService) GetDeletedFeedback(ctx context.Context, limit, offset *int) (*dto.AdminFeedbackPageResponse, error) {
	specs := append([]specification.Specification{
		specification.DeletedOnly{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	}, adminPageSpecs(limit, offset)...)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.FeedbackRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	count, err := uow.FeedbackRepository().Count(ctx, specification.DeletedOnly{})
	if err != nil {
		return nil, err
	}
	return buildAdminPage(items, count), nil
}

func (s *adminService) BulkSoftDeleteFeedback(ctx context.Context, req *dto.BulkSoftDeleteFeedbackRequest) (*dto.AffectedRowsResponse, error) {
	specs := []specification.Specification{}
	if req.UserId != nil {
		specs = append(specs, specification.OwnedBy{UserID: *req.UserId})
	}
	if req.FeatureId != nil {
		specs = append(specs, specification.ByFeature{FeatureID: *req.FeatureId})
	}
	if len(specs) == 0 {
		// Refuse an unfiltered bulk delete outright.
		return nil, ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.FeedbackRepository().SoftDeleteWhere(ctx, time.Now(), specs...)
	if err != nil {
		return nil, err
	}
	return &dto.AffectedRowsResponse{Affected: affected}, nil
}

func (s *adminService) HardDeleteFeedback(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeedbackRepository().HardDelete(ctx, id)
}

func (s *adminService) BulkCreateTags(ctx context.Context, req *dto.BulkCreateTagsRequest) (*dto.BulkCreateTagsResponse, error) {
	now := time.Now()
	tags := make([]*entity.Tag, 0, len(req.Tags))
	for _, t := range req.Tags {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, ErrTitleRequired
		}
		tags = append(tags, &entity.Tag{
			Id:          uuid.New(),
			Name:        name,
			Description: t.Description,
			CreatedAt:   now,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TagRepository().CreateBatch(ctx, tags); err != nil {
		return nil, err
	}

	responses := toTagResponseList(tags)
	return &dto.BulkCreateTagsResponse{Tags: responses, Count: len(responses)}, nil
}

// ForceDeleteTag purges the tag together with every link row pointing at it,
// in one transaction. Without the link purge the tag delete would trip the
// foreign key.
func (s *adminService) ForceDeleteTag(ctx context.Context, tagId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if _, err := uow.FeedbackTagRepository().HardDeleteByTag(ctx, tagId); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.TagRepository().Delete(ctx, tagId); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}

// GetAllFeedbackTags returns every link of a feedback, soft-deleted ones
// included, for moderation and attribution audits.
func (s *adminService) GetAllFeedbackTags(ctx context.Context, feedbackId uuid.UUID) ([]*dto.FeedbackTagLinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	links, err := uow.FeedbackTagRepository().FindAll(ctx,
		specification.WithDeleted{},
		specification.ByFeedbackID{FeedbackID: feedbackId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FeedbackTagLinkResponse, len(links))
	for i, l := range links {
		responses[i] = &dto.FeedbackTagLinkResponse{
			Id:         l.Id,
			FeedbackId: l.FeedbackId,
			TagId:      l.TagId,
			UserId:     l.UserId,
			CreatedAt:  l.CreatedAt,
			DeletedAt:  l.DeletedAt,
			IsDeleted:  l.IsDeleted,
		}
	}
	return responses, nil
}

func (s *adminService) BulkDeleteTagsForFeedback(ctx context.Context, feedbackId uuid.UUID) (*dto.AffectedRowsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.FeedbackTagRepository().SoftDeleteAllForFeedback(ctx, feedbackId, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.AffectedRowsResponse{Affected: affected}, nil
}

func buildAdminPage(items []*entity.Feedback, count int64) *dto.AdminFeedbackPageResponse {
	responses := make([]*dto.AdminFeedbackResponse, len(items))
	for i, f := range items {
		responses[i] = &dto.AdminFeedbackResponse{
			Id:          f.Id,
			UserId:      f.UserId,
			FeatureId:   f.FeatureId,
			Title:       f.Title,
			Description: f.Description,
			CreatedAt:   f.CreatedAt,
			UpdatedAt:   f.UpdatedAt,
			DeletedAt:   f.DeletedAt,
			IsDeleted:   f.IsDeleted,
		}
	}
	return &dto.AdminFeedbackPageResponse{Items: responses, Count: count}
}
