package db

import (
	"errors"

	"gorm.io/gorm"

	"todo-tracker/internal/domain/model"
)

// OwnedBy restricts a query or write to rows owned by ownerID. Every owner-scoped gateway
// method goes through it.
func OwnedBy(ownerID uint) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID)
	}
}

// translateNotFound maps gorm's missing-row error onto the domain error.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	return err
}
