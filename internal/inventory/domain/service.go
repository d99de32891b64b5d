package domain

import (
	"context"
	"errors"

	"github.com/allbikes/dealerdesk/pkg/db/pagination"
)

type Service interface {
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*Motorcycle, error)
	Get(ctx context.Context, id string) (*Motorcycle, error)
	Create(ctx context.Context, req CreateRequest) (*Motorcycle, error)
	Update(ctx context.Context, req UpdateRequest) (*Motorcycle, error)
	Delete(ctx context.Context, id string) error
}

// ListRequest carries raw query values. Invalid filter or ordering
// values are ignored rather than rejected, so a bad querystring still
// returns the unfiltered listing.
type ListRequest struct {
	pagination.Pagination
	Condition    string
	FeaturedOnly bool
	MinPrice     string
	MaxPrice     string
	MinYear      string
	MaxYear      string
	MinEngineCC  string
	MaxEngineCC  string
	Ordering     string
}

type ListResponse struct {
	pagination.PageInfo
	Motorcycles []Motorcycle `json:"motorcycles"`
}

type CreateRequest struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	PriceCents   int64   `json:"price_cents"`
	Condition    string  `json:"condition"`
	Status       string  `json:"status"`
	Odometer     *int    `json:"odometer"`
	EngineSizeCC *int    `json:"engine_size_cc"`
	Transmission string  `json:"transmission"`
	Seats        *int    `json:"seats"`
	Description  *string `json:"description"`
	YoutubeLink  *string `json:"youtube_link"`
	Rego         *string `json:"rego"`
	StockNumber  string  `json:"stock_number"`
	Featured     *bool   `json:"is_featured"`
}

type UpdateRequest struct {
	ID           string  `json:"-"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	PriceCents   *int64  `json:"price_cents"`
	Condition    *string `json:"condition"`
	Status       *string `json:"status"`
	Odometer     *int    `json:"odometer"`
	EngineSizeCC *int    `json:"engine_size_cc"`
	Transmission *string `json:"transmission"`
	Seats        *int    `json:"seats"`
	Description  *string `json:"description"`
	YoutubeLink  *string `json:"youtube_link"`
	Rego         *string `json:"rego"`
	Featured     *bool   `json:"is_featured"`
}

var (
	ErrInvalidID           = errors.New("invalid_id")
	ErrInvalidMake         = errors.New("invalid_make")
	ErrInvalidModel        = errors.New("invalid_model")
	ErrInvalidYear         = errors.New("invalid_year")
	ErrInvalidPrice        = errors.New("invalid_price")
	ErrInvalidCondition    = errors.New("invalid_condition")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrInvalidTransmission = errors.New("invalid_transmission")
	ErrInvalidStockNumber  = errors.New("invalid_stock_number")
	ErrDuplicateStock      = errors.New("duplicate_stock_number")
	ErrNotFound            = errors.New("not_found")
	ErrInvalidPageToken    = errors.New("invalid_page_token")
)
