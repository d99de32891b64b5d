package domain

import "time"

// JobType is a locally curated service offering. Names must match the
// gateway's job type names (case-insensitively) for descriptions to
// surface on the public catalogue.
type JobType struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:text;not null;uniqueIndex:ux_job_types_name"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Active      bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (JobType) TableName() string { return "job_types" }
