package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor hands out database handles to usecases. Reads use DB; every
// write runs inside WithinTransaction, which commits when fn returns nil and
// rolls back otherwise.
type Transactor interface {
	DB(ctx context.Context) *gorm.DB
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
