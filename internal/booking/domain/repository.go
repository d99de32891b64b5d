package domain

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bwmarrin/snowflake"
)

type ListFilter struct {
	Status        string
	CustomerEmail string
	Limit         int
	Cursor        *LogCursor
}

// LogCursor marks the last row of the previous page. Logs are ordered
// newest first, so the next page starts strictly before this position.
type LogCursor struct {
	ID        snowflake.ID
	CreatedAt time.Time
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, log *RequestLog) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*RequestLog, error)
}
