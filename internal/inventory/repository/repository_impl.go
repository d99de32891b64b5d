package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/allbikes/dealerdesk/internal/inventory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, m *domain.Motorcycle) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO motorcycles (
			id, make, model, year, price_cents, condition, status, odometer,
			engine_size_cc, transmission, seats, description, youtube_link,
			rego, stock_number, is_featured, slug, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.Make,
		m.Model,
		m.Year,
		m.PriceCents,
		m.Condition,
		m.Status,
		m.Odometer,
		m.EngineSizeCC,
		m.Transmission,
		m.Seats,
		m.Description,
		m.YoutubeLink,
		m.Rego,
		m.StockNumber,
		m.Featured,
		m.Slug,
		m.CreatedAt,
		m.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Motorcycle, error) {
	var m domain.Motorcycle
	err := db.WithContext(ctx).
		Model(&domain.Motorcycle{}).
		Where("id = ?", id).
		Scan(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID == 0 {
		return nil, nil
	}
	return &m, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Motorcycle, error) {
	var m domain.Motorcycle
	err := db.WithContext(ctx).
		Model(&domain.Motorcycle{}).
		Where("slug = ?", slug).
		Scan(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID == 0 {
		return nil, nil
	}
	return &m, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]*domain.Motorcycle, error) {
	var items []*domain.Motorcycle
	stmt := db.WithContext(ctx).Model(&domain.Motorcycle{}).
		Where("status = ?", domain.StatusForSale)

	if condition := strings.TrimSpace(filter.Condition); condition != "" {
		stmt = stmt.Where("condition = ?", condition)
	}
	if filter.FeaturedOnly {
		stmt = stmt.Where("is_featured = ?", true)
	}
	if filter.MinPriceCents != nil {
		stmt = stmt.Where("price_cents >= ?", *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		stmt = stmt.Where("price_cents <= ?", *filter.MaxPriceCents)
	}
	if filter.MinYear != nil {
		stmt = stmt.Where("year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		stmt = stmt.Where("year <= ?", *filter.MaxYear)
	}
	if filter.MinEngineCC != nil {
		stmt = stmt.Where("engine_size_cc >= ?", *filter.MinEngineCC)
	}
	if filter.MaxEngineCC != nil {
		stmt = stmt.Where("engine_size_cc <= ?", *filter.MaxEngineCC)
	}

	if filter.OrderColumn != "" {
		direction := "asc"
		if filter.OrderDesc {
			direction = "desc"
		}
		stmt = stmt.Order(fmt.Sprintf("%s %s, id desc", filter.OrderColumn, direction))
	} else {
		if filter.Cursor != nil {
			stmt = stmt.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
				filter.Cursor.CreatedAt,
				filter.Cursor.CreatedAt,
				filter.Cursor.ID,
			)
		}
		stmt = stmt.Order("created_at desc, id desc")
	}

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit + 1)
	}

	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, m *domain.Motorcycle) error {
	if m == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE motorcycles
		 SET make = ?, model = ?, year = ?, price_cents = ?, condition = ?,
		     status = ?, odometer = ?, engine_size_cc = ?, transmission = ?,
		     seats = ?, description = ?, youtube_link = ?, rego = ?,
		     is_featured = ?, slug = ?, updated_at = ?
		 WHERE id = ?`,
		m.Make,
		m.Model,
		m.Year,
		m.PriceCents,
		m.Condition,
		m.Status,
		m.Odometer,
		m.EngineSizeCC,
		m.Transmission,
		m.Seats,
		m.Description,
		m.YoutubeLink,
		m.Rego,
		m.Featured,
		m.Slug,
		m.UpdatedAt,
		m.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM motorcycles WHERE id = ?`, id).Error
}
