package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/allbikes/dealerdesk/internal/jobtype/domain"
	"github.com/allbikes/dealerdesk/internal/jobtype/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func setupJobTypeService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE job_types (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`).Error)
	require.NoError(t, db.Exec(`CREATE UNIQUE INDEX ux_job_types_name ON job_types (name)`).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zaptest.NewLogger(t),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestJobTypeCRUD(t *testing.T) {
	svc := setupJobTypeService(t)
	ctx := context.Background()

	description := "Supply and fit tyres."
	created, err := svc.Create(ctx, domain.CreateRequest{
		Name:        "Tyre Fitting",
		Description: &description,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tyre Fitting", created.Name)
	assert.True(t, created.Active)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateRequest{Name: "Tyre Fitting"})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateRequest{Name: "   "})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("get round trips", func(t *testing.T) {
		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		require.NotNil(t, got.Description)
		assert.Equal(t, description, *got.Description)
	})

	t.Run("get with a bogus id", func(t *testing.T) {
		_, err := svc.Get(ctx, "not-a-snowflake")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("update deactivates and clears description", func(t *testing.T) {
		inactive := false
		blank := ""
		updated, err := svc.Update(ctx, domain.UpdateRequest{
			ID:          created.ID,
			Active:      &inactive,
			Description: &blank,
		})
		require.NoError(t, err)
		assert.False(t, updated.Active)
		assert.Nil(t, updated.Description)
	})

	t.Run("list active excludes deactivated rows", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateRequest{Name: "Major Service"})
		require.NoError(t, err)

		active, err := svc.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "Major Service", active[0].Name)
	})

	t.Run("list orders by name", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateRequest{Name: "Chain and Sprockets"})
		require.NoError(t, err)

		all, err := svc.List(ctx, domain.ListRequest{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Chain and Sprockets", all[0].Name)
		assert.Equal(t, "Major Service", all[1].Name)
		assert.Equal(t, "Tyre Fitting", all[2].Name)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))
		_, err := svc.Get(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		node, _ := snowflake.NewNode(2)
		err := svc.Delete(ctx, node.Generate().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
