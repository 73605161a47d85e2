package mapper

import (
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(f *model.Feature) *entity.Feature {
	if f == nil {
		return nil
	}
	return &entity.Feature{
		Id:          f.Id,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *FeatureMapper) ToEntities(features []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, len(features))
	for i, f := range features {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
