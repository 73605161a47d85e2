package specification

import "gorm.io/gorm"

// ByName matches a tag by exact name.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// NameLike does a case-insensitive substring search on tag names.
type NameLike struct {
	Term string
}

func (s NameLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Term+"%")
}

// OrderByName sorts tags alphabetically.
type OrderByName struct{}

func (s OrderByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
