package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy filters feedback by its author.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByFeature filters feedback attached to a specific feature.
type ByFeature struct {
	FeatureID uuid.UUID
}

func (s ByFeature) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id = ?", s.FeatureID)
}

// GeneralOnly matches feedback with no feature association. This is distinct
// from "no feature filter supplied": it explicitly selects NULL rows.
type GeneralOnly struct{}

func (s GeneralOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id IS NULL")
}

// SearchTitleOrDescription does a case-insensitive substring match across
// title and description.
type SearchTitleOrDescription struct {
	Term string
}

func (s SearchTitleOrDescription) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}
