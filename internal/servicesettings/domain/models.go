package domain

import "time"

// SettingsID pins the singleton row. The table carries a CHECK
// constraint enforcing the same value.
const SettingsID int64 = 1

const (
	DefaultAdvanceNoticeDays = 2
	DefaultDropOffStartTime  = "09:00"
	DefaultDropOffEndTime    = "17:00"
)

// ServiceSettings is the single row of workshop booking policy.
type ServiceSettings struct {
	ID                   int64     `json:"id" gorm:"primaryKey"`
	BookingAdvanceNotice int       `json:"booking_advance_notice" gorm:"not null;default:2"`
	DropOffStartTime     string    `json:"drop_off_start_time" gorm:"type:text;not null;default:'09:00'"`
	DropOffEndTime       string    `json:"drop_off_end_time" gorm:"type:text;not null;default:'17:00'"`
	CreatedAt            time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ServiceSettings) TableName() string { return "service_settings" }
