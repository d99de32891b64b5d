package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Get returns the configured settings or ErrNotFound when the row
	// has never been created.
	Get(ctx context.Context) (*ServiceSettings, error)
	// Load returns the settings, creating the row with defaults when it
	// does not exist yet.
	Load(ctx context.Context) (*ServiceSettings, error)
	Update(ctx context.Context, req UpdateRequest) (*ServiceSettings, error)
}

type UpdateRequest struct {
	BookingAdvanceNotice *int    `json:"booking_advance_notice"`
	DropOffStartTime     *string `json:"drop_off_start_time"`
	DropOffEndTime       *string `json:"drop_off_end_time"`
}

var (
	ErrNotFound             = errors.New("not_found")
	ErrInvalidAdvanceNotice = errors.New("invalid_advance_notice")
	ErrInvalidDropOffTime   = errors.New("invalid_drop_off_time")
	ErrInvalidDropOffWindow = errors.New("invalid_drop_off_window")
	ErrAlreadyExists        = errors.New("already_exists")
)
