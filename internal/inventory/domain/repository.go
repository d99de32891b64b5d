package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows and orders a stock listing. Zero values mean no
// constraint. OrderColumn must already be validated; repositories trust
// it verbatim.
type ListFilter struct {
	Condition     string
	FeaturedOnly  bool
	MinPriceCents *int64
	MaxPriceCents *int64
	MinYear       *int
	MaxYear       *int
	MinEngineCC   *int
	MaxEngineCC   *int
	OrderColumn   string
	OrderDesc     bool
	Limit         int
	Cursor        *ListCursor
}

type ListCursor struct {
	ID        int64
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, m *Motorcycle) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Motorcycle, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Motorcycle, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*Motorcycle, error)
	Update(ctx context.Context, db *gorm.DB, m *Motorcycle) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
