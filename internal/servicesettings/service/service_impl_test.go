package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/allbikes/dealerdesk/internal/servicesettings/domain"
	"github.com/allbikes/dealerdesk/internal/servicesettings/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func setupSettingsService(t *testing.T) (domain.Service, domain.Repository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE service_settings (
		id BIGINT PRIMARY KEY CHECK (id = 1),
		booking_advance_notice INTEGER NOT NULL DEFAULT 2,
		drop_off_start_time TEXT NOT NULL DEFAULT '09:00',
		drop_off_end_time TEXT NOT NULL DEFAULT '17:00',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`).Error)

	repo := repository.Provide()
	svc := New(Params{
		DB:   db,
		Log:  zaptest.NewLogger(t),
		Repo: repo,
	})
	return svc, repo, db
}

func TestSettingsLifecycle(t *testing.T) {
	svc, repo, db := setupSettingsService(t)
	ctx := context.Background()

	t.Run("get before load is not found", func(t *testing.T) {
		_, err := svc.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("load creates the row with defaults", func(t *testing.T) {
		settings, err := svc.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.SettingsID, settings.ID)
		assert.Equal(t, domain.DefaultAdvanceNoticeDays, settings.BookingAdvanceNotice)
		assert.Equal(t, "09:00", settings.DropOffStartTime)
		assert.Equal(t, "17:00", settings.DropOffEndTime)
	})

	t.Run("load again returns the same row", func(t *testing.T) {
		settings, err := svc.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.SettingsID, settings.ID)

		var count int64
		require.NoError(t, db.Model(&domain.ServiceSettings{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("repository rejects a second insert", func(t *testing.T) {
		now := time.Now().UTC()
		err := repo.Insert(ctx, db, &domain.ServiceSettings{
			BookingAdvanceNotice: 5,
			DropOffStartTime:     "08:00",
			DropOffEndTime:       "16:00",
			CreatedAt:            now,
			UpdatedAt:            now,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("update applies partial changes", func(t *testing.T) {
		notice := 5
		start := "08:30"
		settings, err := svc.Update(ctx, domain.UpdateRequest{
			BookingAdvanceNotice: &notice,
			DropOffStartTime:     &start,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, settings.BookingAdvanceNotice)
		assert.Equal(t, "08:30", settings.DropOffStartTime)
		assert.Equal(t, "17:00", settings.DropOffEndTime)
	})

	t.Run("negative advance notice is rejected", func(t *testing.T) {
		notice := -1
		_, err := svc.Update(ctx, domain.UpdateRequest{BookingAdvanceNotice: &notice})
		assert.ErrorIs(t, err, domain.ErrInvalidAdvanceNotice)
	})

	t.Run("malformed drop off time is rejected", func(t *testing.T) {
		bad := "9am"
		_, err := svc.Update(ctx, domain.UpdateRequest{DropOffStartTime: &bad})
		assert.ErrorIs(t, err, domain.ErrInvalidDropOffTime)
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		start := "18:00"
		_, err := svc.Update(ctx, domain.UpdateRequest{DropOffStartTime: &start})
		assert.ErrorIs(t, err, domain.ErrInvalidDropOffWindow)
	})
}
