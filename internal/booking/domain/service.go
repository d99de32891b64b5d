package domain

import (
	"context"
	"errors"

	"github.com/allbikes/dealerdesk/internal/gateway/mechanicdesk"
	"github.com/allbikes/dealerdesk/pkg/db/pagination"
)

// Gateway is the outbound MechanicDesk surface the orchestrator depends
// on. The concrete client lives in internal/gateway/mechanicdesk.
type Gateway interface {
	JobTypes(ctx context.Context) (any, *mechanicdesk.ErrorDocument)
	UnavailableDays(ctx context.Context, inDays int) (any, *mechanicdesk.ErrorDocument)
	CreateBooking(ctx context.Context, payload map[string]any) (map[string]any, *mechanicdesk.ErrorDocument)
}

// CreateBookingResult carries the document to return to the caller plus
// the interpreted outcome. A Failed outcome maps to HTTP 500 with the
// gateway's (or a locally built) error document as the body.
type CreateBookingResult struct {
	Outcome  Status
	Response map[string]any
}

// EnrichedJobType pairs a gateway-reported job type name with the locally
// curated description, when one matches.
type EnrichedJobType struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type ListLogsRequest struct {
	pagination.Pagination
	Status        string
	CustomerEmail string
}

type ListLogsResponse struct {
	pagination.PageInfo
	Logs []RequestLog `json:"logs"`
}

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (CreateBookingResult, error)
	JobTypes(ctx context.Context) ([]EnrichedJobType, error)
	UnavailableDays(ctx context.Context, inDays int) (any, error)
	ListLogs(ctx context.Context, req ListLogsRequest) (ListLogsResponse, error)
}

var (
	ErrInvalidPageToken = errors.New("invalid_page_token")
	ErrInvalidStatus    = errors.New("invalid_status")
)
