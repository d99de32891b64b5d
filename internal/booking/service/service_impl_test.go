package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/allbikes/dealerdesk/internal/booking/domain"
	"github.com/allbikes/dealerdesk/internal/booking/repository"
	"github.com/allbikes/dealerdesk/internal/gateway/mechanicdesk"
	jobtypedomain "github.com/allbikes/dealerdesk/internal/jobtype/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type gatewayStub struct {
	jobTypesResp    any
	jobTypesErr     *mechanicdesk.ErrorDocument
	unavailableResp any
	unavailableErr  *mechanicdesk.ErrorDocument
	bookingResp     map[string]any
	bookingErr      *mechanicdesk.ErrorDocument

	bookingCalls int
	lastPayload  map[string]any
}

func (g *gatewayStub) JobTypes(ctx context.Context) (any, *mechanicdesk.ErrorDocument) {
	return g.jobTypesResp, g.jobTypesErr
}

func (g *gatewayStub) UnavailableDays(ctx context.Context, inDays int) (any, *mechanicdesk.ErrorDocument) {
	return g.unavailableResp, g.unavailableErr
}

func (g *gatewayStub) CreateBooking(ctx context.Context, payload map[string]any) (map[string]any, *mechanicdesk.ErrorDocument) {
	g.bookingCalls++
	g.lastPayload = payload
	return g.bookingResp, g.bookingErr
}

type jobTypeStub struct {
	active []jobtypedomain.JobType
	err    error
}

func (j *jobTypeStub) Create(ctx context.Context, req jobtypedomain.CreateRequest) (*jobtypedomain.Response, error) {
	return nil, j.err
}

func (j *jobTypeStub) List(ctx context.Context, req jobtypedomain.ListRequest) ([]jobtypedomain.Response, error) {
	return nil, j.err
}

func (j *jobTypeStub) ListActive(ctx context.Context) ([]jobtypedomain.JobType, error) {
	return j.active, j.err
}

func (j *jobTypeStub) Get(ctx context.Context, id string) (*jobtypedomain.Response, error) {
	return nil, j.err
}

func (j *jobTypeStub) Update(ctx context.Context, req jobtypedomain.UpdateRequest) (*jobtypedomain.Response, error) {
	return nil, j.err
}

func (j *jobTypeStub) Delete(ctx context.Context, id string) error {
	return j.err
}

func setupBookingService(t *testing.T, gw *gatewayStub, jobTypes *jobTypeStub) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE booking_request_logs (
		id BIGINT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		vehicle_registration TEXT,
		request_payload JSON NOT NULL DEFAULT '{}',
		response_status_code INTEGER NOT NULL,
		response_body JSON NOT NULL DEFAULT '{}',
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:       db,
		Log:      zaptest.NewLogger(t),
		GenID:    node,
		Repo:     repository.Provide(),
		Gateway:  gw,
		JobTypes: jobTypes,
		Metrics:  nil,
	})

	return svc, db
}

func validBookingRequest() domain.CreateBookingRequest {
	year := 2019
	return domain.CreateBookingRequest{
		FirstName:          "Alex",
		LastName:           "Chen",
		Phone:              "0411111111",
		Email:              "alex@example.com",
		RegistrationNumber: "XYZ789",
		Make:               "Honda",
		Model:              "CB500X",
		Year:               &year,
		DropOffTime:        "15/09/2026 08:45",
		JobTypeNames:       []string{"General Service"},
	}
}

func countLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&domain.RequestLog{}).Count(&count).Error)
	return count
}

func TestCreateBookingSuccess(t *testing.T) {
	gw := &gatewayStub{bookingResp: mechanicdesk.SuccessDocument()}
	svc, db := setupBookingService(t, gw, &jobTypeStub{})

	result, err := svc.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, result.Outcome)
	assert.Equal(t, "success", result.Response["status"])
	assert.Equal(t, 1, gw.bookingCalls)

	// The gateway received the normalized payload, not the raw request.
	assert.Equal(t, "Alex Chen", gw.lastPayload["name"])
	assert.Equal(t, "2019", gw.lastPayload["year"])
	assert.Equal(t, "false", gw.lastPayload["courtesy_vehicle_requested"])

	require.EqualValues(t, 1, countLogs(t, db))

	var entry domain.RequestLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, domain.StatusSuccess, entry.Status)
	assert.Equal(t, 200, entry.ResponseStatusCode)
	assert.Equal(t, "Alex Chen", entry.CustomerName)
	assert.Equal(t, "alex@example.com", entry.CustomerEmail)
	require.NotNil(t, entry.VehicleRegistration)
	assert.Equal(t, "XYZ789", *entry.VehicleRegistration)
}

func TestCreateBookingGatewayFailure(t *testing.T) {
	gw := &gatewayStub{bookingErr: &mechanicdesk.ErrorDocument{
		Message: "External service returned HTTP 503 Service Unavailable",
		Details: "maintenance window",
	}}
	svc, db := setupBookingService(t, gw, &jobTypeStub{})

	result, err := svc.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFailed, result.Outcome)
	assert.Equal(t, "External service returned HTTP 503 Service Unavailable", result.Response["error"])
	assert.Equal(t, "maintenance window", result.Response["details"])

	require.EqualValues(t, 1, countLogs(t, db))

	var entry domain.RequestLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, domain.StatusFailed, entry.Status)
	assert.Equal(t, 500, entry.ResponseStatusCode)
}

func TestCreateBookingValidationFailureLeavesNoTrace(t *testing.T) {
	gw := &gatewayStub{bookingResp: mechanicdesk.SuccessDocument()}
	svc, db := setupBookingService(t, gw, &jobTypeStub{})

	req := validBookingRequest()
	req.Email = "not-an-email"
	req.JobTypeNames = nil

	_, err := svc.Create(context.Background(), req)
	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)

	assert.Equal(t, 0, gw.bookingCalls)
	assert.EqualValues(t, 0, countLogs(t, db))
}

func TestCreateBookingErrorStatusBody(t *testing.T) {
	// A 2xx answer whose body says status=error still counts as failed.
	gw := &gatewayStub{bookingResp: map[string]any{"status": "error", "message": "slot taken"}}
	svc, db := setupBookingService(t, gw, &jobTypeStub{})

	result, err := svc.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, result.Outcome)

	var entry domain.RequestLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, domain.StatusFailed, entry.Status)
	assert.Equal(t, 500, entry.ResponseStatusCode)
}

func TestJobTypesEnrichment(t *testing.T) {
	description := "Scheduled service including oil and filter."
	jobTypes := &jobTypeStub{active: []jobtypedomain.JobType{
		{Name: "general service", Description: &description, Active: true},
	}}
	gw := &gatewayStub{jobTypesResp: map[string]any{
		"job_type_names": []any{"General Service", "Tyre Fitting"},
	}}
	svc, _ := setupBookingService(t, gw, jobTypes)

	enriched, err := svc.JobTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	// Matching is case-insensitive and the gateway order is preserved.
	assert.Equal(t, "General Service", enriched[0].Name)
	require.NotNil(t, enriched[0].Description)
	assert.Equal(t, description, *enriched[0].Description)

	assert.Equal(t, "Tyre Fitting", enriched[1].Name)
	assert.Nil(t, enriched[1].Description)
}

func TestJobTypesEnrichmentRepeatable(t *testing.T) {
	description := "Scheduled service including oil and filter."
	jobTypes := &jobTypeStub{active: []jobtypedomain.JobType{
		{Name: "General Service", Description: &description, Active: true},
	}}
	gw := &gatewayStub{jobTypesResp: map[string]any{
		"job_type_names": []any{"General Service", "Tyre Fitting", "Roadworthy Inspection"},
	}}
	svc, _ := setupBookingService(t, gw, jobTypes)

	first, err := svc.JobTypes(context.Background())
	require.NoError(t, err)
	second, err := svc.JobTypes(context.Background())
	require.NoError(t, err)

	// Same gateway list and descriptors give the same ordering and content.
	assert.Equal(t, first, second)
}

func TestJobTypesGatewayError(t *testing.T) {
	gw := &gatewayStub{jobTypesErr: &mechanicdesk.ErrorDocument{Message: "MechanicDesk API token is not configured."}}
	svc, _ := setupBookingService(t, gw, &jobTypeStub{})

	_, err := svc.JobTypes(context.Background())
	var doc *mechanicdesk.ErrorDocument
	require.ErrorAs(t, err, &doc)
	assert.Equal(t, "MechanicDesk API token is not configured.", doc.Message)
}

func TestJobTypesLocalLookupFailureDegrades(t *testing.T) {
	jobTypes := &jobTypeStub{err: fmt.Errorf("db down")}
	gw := &gatewayStub{jobTypesResp: map[string]any{"job_type_names": []any{"Tyre Fitting"}}}
	svc, _ := setupBookingService(t, gw, jobTypes)

	enriched, err := svc.JobTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Nil(t, enriched[0].Description)
}

func TestListLogs(t *testing.T) {
	gw := &gatewayStub{}
	svc, _ := setupBookingService(t, gw, &jobTypeStub{})

	gw.bookingResp = mechanicdesk.SuccessDocument()
	for i := 0; i < 3; i++ {
		req := validBookingRequest()
		req.Email = fmt.Sprintf("rider%d@example.com", i)
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}
	gw.bookingErr = &mechanicdesk.ErrorDocument{Message: "boom"}
	gw.bookingResp = nil
	_, err := svc.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)

	t.Run("filter by status", func(t *testing.T) {
		resp, err := svc.ListLogs(context.Background(), domain.ListLogsRequest{Status: "Failed"})
		require.NoError(t, err)
		require.Len(t, resp.Logs, 1)
		assert.Equal(t, domain.StatusFailed, resp.Logs[0].Status)
	})

	t.Run("filter by customer email", func(t *testing.T) {
		resp, err := svc.ListLogs(context.Background(), domain.ListLogsRequest{CustomerEmail: "rider1@example.com"})
		require.NoError(t, err)
		require.Len(t, resp.Logs, 1)
		assert.Equal(t, "rider1@example.com", resp.Logs[0].CustomerEmail)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := svc.ListLogs(context.Background(), domain.ListLogsRequest{Status: "Pending"})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("invalid page token is rejected", func(t *testing.T) {
		req := domain.ListLogsRequest{}
		req.PageToken = "!!not-base64!!"
		_, err := svc.ListLogs(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidPageToken)
	})

	t.Run("pages walk newest first", func(t *testing.T) {
		first := domain.ListLogsRequest{}
		first.PageSize = 3
		page1, err := svc.ListLogs(context.Background(), first)
		require.NoError(t, err)
		require.Len(t, page1.Logs, 3)
		assert.True(t, page1.HasMore)
		require.NotEmpty(t, page1.NextPageToken)

		next := domain.ListLogsRequest{}
		next.PageSize = 3
		next.PageToken = page1.NextPageToken
		page2, err := svc.ListLogs(context.Background(), next)
		require.NoError(t, err)
		require.Len(t, page2.Logs, 1)
		assert.False(t, page2.HasMore)

		assert.True(t, page1.Logs[0].CreatedAt.After(page2.Logs[0].CreatedAt) ||
			page1.Logs[0].CreatedAt.Equal(page2.Logs[0].CreatedAt))
	})
}
