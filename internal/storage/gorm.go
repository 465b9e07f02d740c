package storage

import (
	"errors"

	"gorm.io/gorm"
)

// GormStore implements Storage on top of a GORM connection (sqlite or
// postgres, selected by the database package).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// translate maps GORM sentinel errors onto the storage error vocabulary so
// callers never import gorm.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateDay
	default:
		return err
	}
}
