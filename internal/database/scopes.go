package database

import (
	"gorm.io/gorm"
)

// CursorPage restricts a query to rows whose id is strictly greater than the
// cursor, ordered by id ascending and capped at limit. Callers advance the
// cursor with the largest id of the returned page.
func CursorPage(cursor uint64, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id > ?", cursor).Order("id ASC").Limit(limit)
	}
}
