package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/allbikes/dealerdesk/internal/booking/domain"
	jobtypedomain "github.com/allbikes/dealerdesk/internal/jobtype/domain"
	"github.com/allbikes/dealerdesk/internal/observability/metrics"
	"github.com/allbikes/dealerdesk/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Gateway  domain.Gateway
	JobTypes jobtypedomain.Service
	Metrics  *metrics.BookingMetrics
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	gateway  domain.Gateway
	jobTypes jobtypedomain.Service
	metrics  *metrics.BookingMetrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("booking.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		gateway:  p.Gateway,
		jobTypes: p.JobTypes,
		metrics:  p.Metrics,
	}
}

// Create validates the submission, forwards it to the gateway and
// records exactly one audit row for the attempt. Validation failures
// never reach the gateway and leave no audit trail.
func (s *Service) Create(ctx context.Context, req domain.CreateBookingRequest) (domain.CreateBookingResult, error) {
	payload, fieldErrs := req.Normalize()
	if fieldErrs != nil {
		return domain.CreateBookingResult{}, fieldErrs
	}

	resp, gatewayErr := s.gateway.CreateBooking(ctx, payload)

	status := domain.StatusSuccess
	statusCode := http.StatusOK
	var body map[string]any
	if gatewayErr != nil {
		status = domain.StatusFailed
		statusCode = http.StatusInternalServerError
		body = map[string]any{"error": gatewayErr.Message}
		if gatewayErr.Details != "" {
			body["details"] = gatewayErr.Details
		}
	} else {
		body = resp
		if outcome, ok := resp["status"].(string); ok && outcome == "error" {
			status = domain.StatusFailed
			statusCode = http.StatusInternalServerError
		}
	}

	entry := s.newLogEntry(req, payload, statusCode, body, status)
	if err := s.repo.Insert(ctx, s.db, entry); err != nil {
		s.log.Error("failed to write booking request log",
			zap.String("customer_email", req.Email),
			zap.Error(err),
		)
		if status == domain.StatusSuccess {
			// The booking went out but the audit write failed. Surface
			// the failure to the caller and record a best-effort Failed
			// row so the attempt is not invisible.
			failureBody := map[string]any{
				"error":   "An unexpected error occurred.",
				"details": err.Error(),
			}
			fallback := s.newLogEntry(req, payload, http.StatusInternalServerError, failureBody, domain.StatusFailed)
			if insertErr := s.repo.Insert(ctx, s.db, fallback); insertErr != nil {
				s.log.Error("failed to write fallback booking request log", zap.Error(insertErr))
			}
			s.metrics.RecordSubmission(string(domain.StatusFailed))
			return domain.CreateBookingResult{
				Outcome:  domain.StatusFailed,
				Response: failureBody,
			}, nil
		}
	}

	s.metrics.RecordSubmission(string(status))
	s.log.Info("booking submission recorded",
		zap.String("status", string(status)),
		zap.Int("response_status_code", statusCode),
	)

	return domain.CreateBookingResult{Outcome: status, Response: body}, nil
}

// JobTypes fetches the gateway's available job type names and pairs each
// with the description of the matching local job type, when one exists.
// Matching is case-insensitive on the trimmed name and the gateway's
// ordering is preserved.
func (s *Service) JobTypes(ctx context.Context) ([]domain.EnrichedJobType, error) {
	raw, gatewayErr := s.gateway.JobTypes(ctx)
	if gatewayErr != nil {
		return nil, gatewayErr
	}

	names := extractJobTypeNames(raw)

	local, err := s.jobTypes.ListActive(ctx)
	if err != nil {
		s.log.Warn("failed to load local job types, returning unenriched catalogue", zap.Error(err))
		local = nil
	}

	descriptions := make(map[string]*string, len(local))
	for i := range local {
		key := strings.ToLower(strings.TrimSpace(local[i].Name))
		if key == "" {
			continue
		}
		descriptions[key] = local[i].Description
	}

	enriched := make([]domain.EnrichedJobType, 0, len(names))
	for _, name := range names {
		enriched = append(enriched, domain.EnrichedJobType{
			Name:        name,
			Description: descriptions[strings.ToLower(strings.TrimSpace(name))],
		})
	}
	return enriched, nil
}

func (s *Service) UnavailableDays(ctx context.Context, inDays int) (any, error) {
	resp, gatewayErr := s.gateway.UnavailableDays(ctx, inDays)
	if gatewayErr != nil {
		return nil, gatewayErr
	}
	return resp, nil
}

func (s *Service) ListLogs(ctx context.Context, req domain.ListLogsRequest) (domain.ListLogsResponse, error) {
	status := strings.TrimSpace(req.Status)
	if status != "" && status != string(domain.StatusSuccess) && status != string(domain.StatusFailed) {
		return domain.ListLogsResponse{}, domain.ErrInvalidStatus
	}

	var cursor *domain.LogCursor
	if strings.TrimSpace(req.PageToken) != "" {
		decoded, err := pagination.DecodeCursor(req.PageToken)
		if err != nil {
			return domain.ListLogsResponse{}, domain.ErrInvalidPageToken
		}
		createdAt, err := time.Parse(time.RFC3339Nano, decoded.CreatedAt)
		if err != nil {
			return domain.ListLogsResponse{}, domain.ErrInvalidPageToken
		}
		id, err := snowflake.ParseString(strings.TrimSpace(decoded.ID))
		if err != nil || id == 0 {
			return domain.ListLogsResponse{}, domain.ErrInvalidPageToken
		}
		cursor = &domain.LogCursor{ID: id, CreatedAt: createdAt}
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > 250 {
		pageSize = 250
	}

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Status:        status,
		CustomerEmail: req.CustomerEmail,
		Cursor:        cursor,
		Limit:         pageSize,
	})
	if err != nil {
		return domain.ListLogsResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(item *domain.RequestLog) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        item.ID.String(),
			CreatedAt: item.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	logs := make([]domain.RequestLog, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		logs = append(logs, *item)
	}

	resp := domain.ListLogsResponse{Logs: logs}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) newLogEntry(req domain.CreateBookingRequest, payload map[string]any, statusCode int, body map[string]any, status domain.Status) *domain.RequestLog {
	name, _ := payload["name"].(string)

	entry := &domain.RequestLog{
		ID:                 s.genID.Generate(),
		CustomerName:       name,
		CustomerEmail:      strings.TrimSpace(req.Email),
		RequestPayload:     datatypes.JSONMap(payload),
		ResponseStatusCode: statusCode,
		ResponseBody:       datatypes.JSONMap(body),
		Status:             status,
		CreatedAt:          time.Now().UTC(),
	}
	if rego := strings.TrimSpace(req.RegistrationNumber); rego != "" {
		entry.VehicleRegistration = &rego
	}
	return entry
}

// extractJobTypeNames pulls the name list out of whatever shape the
// gateway returned. Known shapes are a bare array of strings and an
// object with a "job_type_names" array. Anything else yields an empty
// catalogue rather than an error.
func extractJobTypeNames(raw any) []string {
	collect := func(values []any) []string {
		names := make([]string, 0, len(values))
		for _, v := range values {
			if name, ok := v.(string); ok && strings.TrimSpace(name) != "" {
				names = append(names, name)
			}
		}
		return names
	}

	switch v := raw.(type) {
	case []any:
		return collect(v)
	case map[string]any:
		if values, ok := v["job_type_names"].([]any); ok {
			return collect(values)
		}
	}
	return nil
}
