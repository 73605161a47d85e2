package scope

import "gorm.io/gorm"

// WithSoftDelete includes soft deleted records (admin/moderation paths).
func WithSoftDelete(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// OnlySoftDeleted matches soft deleted records exclusively.
func OnlySoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Where("deleted_at IS NOT NULL")
}
