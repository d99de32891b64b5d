package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Find(ctx context.Context, db *gorm.DB) (*ServiceSettings, error)
	Insert(ctx context.Context, db *gorm.DB, settings *ServiceSettings) error
	Update(ctx context.Context, db *gorm.DB, settings *ServiceSettings) error
}
