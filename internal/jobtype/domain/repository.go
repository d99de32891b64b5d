package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, jobType *JobType) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*JobType, error)
	FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]JobType, error)
	Update(ctx context.Context, db *gorm.DB, jobType *JobType) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
