package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Status records the outcome of one outbound booking submission.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// RequestLog is one append-only audit row per booking submission sent to
// the gateway. Rows are never updated or deleted by the application;
// retention is an operational concern.
type RequestLog struct {
	ID                  snowflake.ID      `gorm:"primaryKey" json:"id"`
	CustomerName        string            `gorm:"not null" json:"customer_name"`
	CustomerEmail       string            `gorm:"not null" json:"customer_email"`
	VehicleRegistration *string           `json:"vehicle_registration,omitempty"`
	RequestPayload      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"request_payload"`
	ResponseStatusCode  int               `gorm:"not null" json:"response_status_code"`
	ResponseBody        datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"response_body"`
	Status              Status            `gorm:"not null" json:"status"`
	CreatedAt           time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (RequestLog) TableName() string {
	return "booking_request_logs"
}
