package service

import (
	"context"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"
	"feedback-forum-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeatureService interface {
	List(ctx context.Context) ([]dto.FeatureResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error)
}

type featureService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeatureService(uowFactory unitofwork.RepositoryFactory) IFeatureService {
	return &featureService{uowFactory: uowFactory}
}

func (s *featureService) List(ctx context.Context) ([]dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAll(ctx, specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FeatureResponse, len(features))
	for i, f := range features {
		responses[i] = toFeatureResponse(f)
	}
	return responses, nil
}

func (s *featureService) GetById(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, ErrNotFound
	}
	res := toFeatureResponse(feature)
	return &res, nil
}

func toFeatureResponse(f *entity.Feature) dto.FeatureResponse {
	return dto.FeatureResponse{
		Id:          f.Id,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
	}
}
