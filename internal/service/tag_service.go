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
	"github.com/patrickmn/go-cache"
)

const tagListCacheKey = "tags:all"

type ITagService interface {
	List(ctx context.Context) ([]dto.TagResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error)
	GetByName(ctx context.Context, name string) (*dto.TagResponse, error)
	Search(ctx context.Context, term string) ([]dto.TagResponse, error)
	GetByIds(ctx context.Context, ids []uuid.UUID) ([]dto.TagResponse, error)
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
	// The full tag list is small and read on every post form; cache it and
	// drop the entry on any mutation.
	listCache *cache.Cache
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
		listCache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *tagService) List(ctx context.Context) ([]dto.TagResponse, error) {
	if cached, found := s.listCache.Get(tagListCacheKey); found {
		return cached.([]dto.TagResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderByName{})
	if err != nil {
		return nil, err
	}

	responses := toTagResponseList(tags)
	s.listCache.Set(tagListCacheKey, responses, cache.DefaultExpiration)
	return responses, nil
}

func (s *tagService) GetById(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}
	res := toTagResponse(tag)
	return &res, nil
}

func (s *tagService) GetByName(ctx context.Context, name string) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByName{Name: name})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}
	res := toTagResponse(tag)
	return &res, nil
}

func (s *tagService) Search(ctx context.Context, term string) ([]dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx,
		specification.NameLike{Term: term},
		specification.OrderByName{},
	)
	if err != nil {
		return nil, err
	}
	return toTagResponseList(tags), nil
}

func (s *tagService) GetByIds(ctx context.Context, ids []uuid.UUID) ([]dto.TagResponse, error) {
	if len(ids) == 0 {
		// Empty input short-circuits without a store round trip.
		return []dto.TagResponse{}, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	return toTagResponseList(tags), nil
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrTitleRequired
	}

	tag := entity.Tag{
		Id:          uuid.New(),
		Name:        name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}
	s.listCache.Delete(tagListCacheKey)

	res := toTagResponse(&tag)
	return &res, nil
}

func (s *tagService) Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TagRepository()

	tag, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrTitleRequired
		}
		tag.Name = name
	}
	if req.Description != nil {
		tag.Description = *req.Description
	}

	if err := repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	s.listCache.Delete(tagListCacheKey)

	res := toTagResponse(tag)
	return &res, nil
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TagRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.listCache.Delete(tagListCacheKey)
	return nil
}

func toTagResponse(t *entity.Tag) dto.TagResponse {
	return dto.TagResponse{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func toTagResponseList(tags []*entity.Tag) []dto.TagResponse {
	responses := make([]dto.TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = toTagResponse(t)
	}
	return responses
}
