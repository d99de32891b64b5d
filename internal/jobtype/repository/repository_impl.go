package repository

import (
	"context"

	"github.com/allbikes/dealerdesk/internal/jobtype/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, jobType *domain.JobType) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO job_types (id, name, description, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		jobType.ID,
		jobType.Name,
		jobType.Description,
		jobType.Active,
		jobType.CreatedAt,
		jobType.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.JobType, error) {
	var jt domain.JobType
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, description, is_active, created_at, updated_at
		 FROM job_types WHERE id = ?`,
		id,
	).Scan(&jt).Error
	if err != nil {
		return nil, err
	}
	if jt.ID == 0 {
		return nil, nil
	}
	return &jt, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.JobType, error) {
	var items []domain.JobType
	stmt := db.WithContext(ctx).Model(&domain.JobType{})
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}
	if err := stmt.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, jobType *domain.JobType) error {
	if jobType == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE job_types
		 SET name = ?, description = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		jobType.Name,
		jobType.Description,
		jobType.Active,
		jobType.UpdatedAt,
		jobType.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM job_types WHERE id = ?`, id).Error
}
