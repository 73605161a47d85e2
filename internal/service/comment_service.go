package service

import (
	"context"
	"strings"
	"time"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"
	"feedback-forum-be/internal/repository/unitofwork"
	"feedback-forum-be/pkg/events"

	"github.com/google/uuid"
)

type ICommentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListByFeedback(ctx context.Context, feedbackId uuid.UUID) ([]*dto.CommentResponse, error)
	SoftDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	CountByFeedback(ctx context.Context, feedbackId uuid.UUID) (int64, error)
	ToggleLike(ctx context.Context, commentId, userId uuid.UUID) (*dto.ToggleLikeResponse, error)
	LikeCount(ctx context.Context, commentId uuid.UUID) (int64, error)
	HasUserLiked(ctx context.Context, commentId, userId uuid.UUID) (bool, error)
}

type commentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewCommentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ICommentService {
	return &commentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *commentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrBodyRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	feedback, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: req.FeedbackId})
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	comment := entity.Comment{
		Id:         uuid.New(),
		FeedbackId: req.FeedbackId,
		UserId:     userId,
		Body:       body,
		CreatedAt:  now,
		UpdatedAt:  &now,
	}
	if err := uow.CommentRepository().Create(ctx, &comment); err != nil {
		return nil, err
	}

	_ = s.publisherService.Publish(ctx, events.NewCommentCreated(comment.Id, feedback.Id, feedback.UserId, userId))

	author, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(&comment, author), nil
}

func (s *commentService) ListByFeedback(ctx context.Context, feedbackId uuid.UUID) ([]*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.FilterBy{Field: "feedback_id", Value: feedbackId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	// One batched author lookup for the whole thread.
	seen := make(map[uuid.UUID]bool, len(comments))
	ids := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		if !seen[c.UserId] {
			seen[c.UserId] = true
			ids = append(ids, c.UserId)
		}
	}
	users, err := uow.UserRepository().FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byId[u.Id] = u
	}

	responses := make([]*dto.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = toCommentResponse(c, byId[c.UserId])
	}
	return responses, nil
}

func (s *commentService) SoftDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CommentRepository()

	comment, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.UserId != userId {
		return ErrForbidden
	}

	_, err = repo.SoftDelete(ctx, id, time.Now())
	return err
}

func (s *commentService) CountByFeedback(ctx context.Context, feedbackId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CommentRepository().Count(ctx, specification.FilterBy{Field: "feedback_id", Value: feedbackId})
}

// ToggleLike flips the like state for the (comment, user) pair. The lookup
// and the write share a transaction, which serializes concurrent toggles for
// the same pair instead of letting them race into duplicate active rows.
func (s *commentService) ToggleLike(ctx context.Context, commentId, userId uuid.UUID) (*dto.ToggleLikeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	likeRepo := uow.CommentLikeRepository()

	existing, err := likeRepo.FindActive(ctx, commentId, userId)
	if err != nil {
		uow.Rollback()
		return nil, err
	}

	if existing != nil {
		// Un-like: soft-delete the active row, do not flip it in place.
		if _, err := likeRepo.SoftDelete(ctx, existing.Id, time.Now()); err != nil {
			uow.Rollback()
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return &dto.ToggleLikeResponse{Liked: false, Like: nil}, nil
	}

	now := time.Now()
	like := entity.CommentLike{
		Id:        uuid.New(),
		CommentId: commentId,
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: &now,
	}
	if err := likeRepo.Create(ctx, &like); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if comment, err := s.uowFactory.NewUnitOfWork(ctx).CommentRepository().FindOne(ctx, specification.ByID{ID: commentId}); err == nil && comment != nil {
		_ = s.publisherService.Publish(ctx, events.NewCommentLiked(commentId, comment.UserId, userId))
	}

	return &dto.ToggleLikeResponse{
		Liked: true,
		Like: &dto.CommentLikeResponse{
			Id:        like.Id,
			CommentId: like.CommentId,
			UserId:    like.UserId,
			CreatedAt: like.CreatedAt,
		},
	}, nil
}

func (s *commentService) LikeCount(ctx context.Context, commentId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CommentLikeRepository().CountActive(ctx, commentId)
}

func (s *commentService) HasUserLiked(ctx context.Context, commentId, userId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	like, err := uow.CommentLikeRepository().FindActive(ctx, commentId, userId)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}

func toCommentResponse(c *entity.Comment, user *entity.User) *dto.CommentResponse {
	return &dto.CommentResponse{
		Id:         c.Id,
		FeedbackId: c.FeedbackId,
		UserId:     c.UserId,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
		User:       toUserResponse(user),
	}
}
