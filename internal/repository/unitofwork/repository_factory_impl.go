package unitofwork

import (
	"context"

	"gorm.io/gorm"
)

// RepositoryFactoryImpl builds short-lived per-request units of work. The
// container holds two of these: one over the application connection and one
// over the privileged connection whose role bypasses row-level security.
type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db: db,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db)
}
