package repository

import (
	"context"
	"strings"

	"github.com/allbikes/dealerdesk/internal/booking/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, log *domain.RequestLog) error {
	if log == nil {
		return nil
	}
	return db.WithContext(ctx).Exec(
		`INSERT INTO booking_request_logs (
			id, customer_name, customer_email, vehicle_registration,
			request_payload, response_status_code, response_body, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID,
		log.CustomerName,
		log.CustomerEmail,
		log.VehicleRegistration,
		log.RequestPayload,
		log.ResponseStatusCode,
		log.ResponseBody,
		log.Status,
		log.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]*domain.RequestLog, error) {
	var logs []*domain.RequestLog
	stmt := db.WithContext(ctx).Model(&domain.RequestLog{})

	if status := strings.TrimSpace(filter.Status); status != "" {
		stmt = stmt.Where("status = ?", status)
	}
	if email := strings.TrimSpace(filter.CustomerEmail); email != "" {
		stmt = stmt.Where("customer_email = ?", email)
	}
	if filter.Cursor != nil {
		stmt = stmt.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			filter.Cursor.CreatedAt,
			filter.Cursor.CreatedAt,
			filter.Cursor.ID,
		)
	}

	stmt = stmt.Order("created_at desc, id desc")
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit + 1)
	}

	if err := stmt.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
