package repository

import (
	"context"

	"github.com/allbikes/dealerdesk/internal/servicesettings/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Find(ctx context.Context, db *gorm.DB) (*domain.ServiceSettings, error) {
	var settings domain.ServiceSettings
	err := db.WithContext(ctx).Raw(
		`SELECT id, booking_advance_notice, drop_off_start_time, drop_off_end_time, created_at, updated_at
		 FROM service_settings WHERE id = ?`,
		domain.SettingsID,
	).Scan(&settings).Error
	if err != nil {
		return nil, err
	}
	if settings.ID == 0 {
		return nil, nil
	}
	return &settings, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, settings *domain.ServiceSettings) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}

	// Only one row may ever exist. The table's CHECK (id = 1) backs
	// this up at the database level.
	existing, err := r.Find(ctx, db)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrAlreadyExists
	}

	settings.ID = domain.SettingsID
	return db.WithContext(ctx).Exec(
		`INSERT INTO service_settings (id, booking_advance_notice, drop_off_start_time, drop_off_end_time, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		settings.ID,
		settings.BookingAdvanceNotice,
		settings.DropOffStartTime,
		settings.DropOffEndTime,
		settings.CreatedAt,
		settings.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, settings *domain.ServiceSettings) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE service_settings
		 SET booking_advance_notice = ?, drop_off_start_time = ?, drop_off_end_time = ?, updated_at = ?
		 WHERE id = ?`,
		settings.BookingAdvanceNotice,
		settings.DropOffStartTime,
		settings.DropOffEndTime,
		settings.UpdatedAt,
		domain.SettingsID,
	).Error
}
