package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/allbikes/dealerdesk/internal/inventory/domain"
	"github.com/allbikes/dealerdesk/pkg/db"
	"github.com/allbikes/dealerdesk/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// orderColumns maps the public ordering keys onto columns. Keys not in
// the map are ignored, same as any other invalid filter value.
var orderColumns = map[string]string{
	"price":       "price_cents",
	"year":        "year",
	"engine_size": "engine_size_cc",
}

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("inventory.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	filter := domain.ListFilter{
		FeaturedOnly:  req.FeaturedOnly,
		MinPriceCents: parseInt64Filter(req.MinPrice),
		MaxPriceCents: parseInt64Filter(req.MaxPrice),
		MinYear:       parseIntFilter(req.MinYear),
		MaxYear:       parseIntFilter(req.MaxYear),
		MinEngineCC:   parseIntFilter(req.MinEngineCC),
		MaxEngineCC:   parseIntFilter(req.MaxEngineCC),
	}

	if condition := domain.Condition(strings.TrimSpace(req.Condition)); condition.Valid() {
		filter.Condition = string(condition)
	}

	ordering := strings.TrimSpace(req.Ordering)
	orderKey := strings.TrimPrefix(ordering, "-")
	if column, ok := orderColumns[orderKey]; ok {
		filter.OrderColumn = column
		filter.OrderDesc = strings.HasPrefix(ordering, "-")
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 250 {
		pageSize = 250
	}
	filter.Limit = pageSize

	// Page tokens only make sense on the stable default ordering.
	if filter.OrderColumn == "" && strings.TrimSpace(req.PageToken) != "" {
		decoded, err := pagination.DecodeCursor(req.PageToken)
		if err != nil {
			return domain.ListResponse{}, domain.ErrInvalidPageToken
		}
		createdAt, err := time.Parse(time.RFC3339Nano, decoded.CreatedAt)
		if err != nil {
			return domain.ListResponse{}, domain.ErrInvalidPageToken
		}
		id, err := snowflake.ParseString(strings.TrimSpace(decoded.ID))
		if err != nil || id == 0 {
			return domain.ListResponse{}, domain.ErrInvalidPageToken
		}
		filter.Cursor = &domain.ListCursor{ID: id.Int64(), CreatedAt: createdAt}
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return domain.ListResponse{}, err
	}

	var pageInfo *pagination.PageInfo
	if filter.OrderColumn == "" {
		pageInfo = pagination.BuildCursorPageInfo(items, pageSize, func(item *domain.Motorcycle) string {
			token, err := pagination.EncodeCursor(pagination.Cursor{
				ID:        snowflake.ID(item.ID).String(),
				CreatedAt: item.CreatedAt.Format(time.RFC3339Nano),
			})
			if err != nil {
				return ""
			}
			return token
		})
	}
	if len(items) > pageSize {
		items = items[:pageSize]
	}

	motorcycles := make([]domain.Motorcycle, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		motorcycles = append(motorcycles, *item)
	}

	resp := domain.ListResponse{Motorcycles: motorcycles}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) GetBySlug(ctx context.Context, slugValue string) (*domain.Motorcycle, error) {
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindBySlug(ctx, s.db, slugValue)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Motorcycle, error) {
	motorcycleID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, motorcycleID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Motorcycle, error) {
	make := strings.TrimSpace(req.Make)
	if make == "" {
		return nil, domain.ErrInvalidMake
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return nil, domain.ErrInvalidModel
	}
	if req.Year < 1900 || req.Year > time.Now().Year()+1 {
		return nil, domain.ErrInvalidYear
	}
	if req.PriceCents < 0 {
		return nil, domain.ErrInvalidPrice
	}
	condition := domain.Condition(strings.TrimSpace(req.Condition))
	if !condition.Valid() {
		return nil, domain.ErrInvalidCondition
	}
	status := domain.StatusForSale
	if value := strings.TrimSpace(req.Status); value != "" {
		status = domain.Status(value)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
	}
	transmission := domain.TransmissionManual
	if value := strings.TrimSpace(req.Transmission); value != "" {
		transmission = domain.Transmission(value)
		if !transmission.Valid() {
			return nil, domain.ErrInvalidTransmission
		}
	}
	stockNumber := strings.TrimSpace(req.StockNumber)
	if stockNumber == "" {
		return nil, domain.ErrInvalidStockNumber
	}

	now := time.Now().UTC()
	id := s.genID.Generate().Int64()
	m := &domain.Motorcycle{
		ID:           id,
		Make:         make,
		Model:        model,
		Year:         req.Year,
		PriceCents:   req.PriceCents,
		Condition:    condition,
		Status:       status,
		Odometer:     req.Odometer,
		EngineSizeCC: req.EngineSizeCC,
		Transmission: transmission,
		Seats:        req.Seats,
		Description:  normalizePointer(req.Description),
		YoutubeLink:  normalizePointer(req.YoutubeLink),
		Rego:         normalizePointer(req.Rego),
		StockNumber:  stockNumber,
		Slug:         buildSlug(req.Year, make, model, id),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Featured != nil {
		m.Featured = *req.Featured
	}

	if err := s.repo.Create(ctx, s.db, m); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateStock
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Motorcycle, error) {
	motorcycleID, err := parseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, motorcycleID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	identityChanged := false
	if req.Make != nil {
		make := strings.TrimSpace(*req.Make)
		if make == "" {
			return nil, domain.ErrInvalidMake
		}
		item.Make = make
		identityChanged = true
	}
	if req.Model != nil {
		model := strings.TrimSpace(*req.Model)
		if model == "" {
			return nil, domain.ErrInvalidModel
		}
		item.Model = model
		identityChanged = true
	}
	if req.Year != nil {
		if *req.Year < 1900 || *req.Year > time.Now().Year()+1 {
			return nil, domain.ErrInvalidYear
		}
		item.Year = *req.Year
		identityChanged = true
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, domain.ErrInvalidPrice
		}
		item.PriceCents = *req.PriceCents
	}
	if req.Condition != nil {
		condition := domain.Condition(strings.TrimSpace(*req.Condition))
		if !condition.Valid() {
			return nil, domain.ErrInvalidCondition
		}
		item.Condition = condition
	}
	if req.Status != nil {
		status := domain.Status(strings.TrimSpace(*req.Status))
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		item.Status = status
	}
	if req.Transmission != nil {
		transmission := domain.Transmission(strings.TrimSpace(*req.Transmission))
		if !transmission.Valid() {
			return nil, domain.ErrInvalidTransmission
		}
		item.Transmission = transmission
	}
	if req.Odometer != nil {
		item.Odometer = req.Odometer
	}
	if req.EngineSizeCC != nil {
		item.EngineSizeCC = req.EngineSizeCC
	}
	if req.Seats != nil {
		item.Seats = req.Seats
	}
	if req.Description != nil {
		item.Description = normalizePointer(req.Description)
	}
	if req.YoutubeLink != nil {
		item.YoutubeLink = normalizePointer(req.YoutubeLink)
	}
	if req.Rego != nil {
		item.Rego = normalizePointer(req.Rego)
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}

	if identityChanged {
		item.Slug = buildSlug(item.Year, item.Make, item.Model, item.ID)
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateStock
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	motorcycleID, err := parseID(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, motorcycleID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, motorcycleID)
}

// buildSlug derives a URL slug from the listing identity. The id suffix
// keeps slugs unique across identical year/make/model stock.
func buildSlug(year int, make, model string, id int64) string {
	base := slug.Make(fmt.Sprintf("%d %s %s", year, make, model))
	return fmt.Sprintf("%s-%d", base, id)
}

func parseID(id string) (int64, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return 0, err
	}
	return parsed.Int64(), nil
}

func parseIntFilter(value string) *int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed < 0 {
		return nil
	}
	return &parsed
}

func parseInt64Filter(value string) *int64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || parsed < 0 {
		return nil
	}
	return &parsed
}

func normalizePointer(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
