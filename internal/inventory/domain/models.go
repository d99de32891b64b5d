package domain

import "time"

type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
	ConditionDemo Condition = "demo"
)

type Status string

const (
	StatusForSale     Status = "for_sale"
	StatusSold        Status = "sold"
	StatusReserved    Status = "reserved"
	StatusUnavailable Status = "unavailable"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

// Motorcycle is one unit of showroom stock.
type Motorcycle struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	Make         string       `json:"make" gorm:"type:text;not null"`
	Model        string       `json:"model" gorm:"type:text;not null"`
	Year         int          `json:"year" gorm:"not null"`
	PriceCents   int64        `json:"price_cents" gorm:"not null"`
	Condition    Condition    `json:"condition" gorm:"type:text;not null"`
	Status       Status       `json:"status" gorm:"type:text;not null;default:'for_sale'"`
	Odometer     *int         `json:"odometer,omitempty"`
	EngineSizeCC *int         `json:"engine_size_cc,omitempty" gorm:"column:engine_size_cc"`
	Transmission Transmission `json:"transmission" gorm:"type:text;not null;default:'manual'"`
	Seats        *int         `json:"seats,omitempty"`
	Description  *string      `json:"description,omitempty" gorm:"type:text"`
	YoutubeLink  *string      `json:"youtube_link,omitempty" gorm:"type:text"`
	Rego         *string      `json:"rego,omitempty" gorm:"type:text"`
	StockNumber  string       `json:"stock_number" gorm:"type:text;not null;uniqueIndex:ux_motorcycles_stock_number"`
	Featured     bool         `json:"is_featured" gorm:"column:is_featured;not null;default:false"`
	Slug         string       `json:"slug" gorm:"type:text;not null;uniqueIndex:ux_motorcycles_slug"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Motorcycle) TableName() string { return "motorcycles" }

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionDemo:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusForSale, StatusSold, StatusReserved, StatusUnavailable:
		return true
	}
	return false
}

func (t Transmission) Valid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic:
		return true
	}
	return false
}
