package service

import (
	"context"
	"strings"
	"time"

	"github.com/allbikes/dealerdesk/internal/servicesettings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DropOffTimeLayout is the HH:MM wall-clock format for the drop-off
// window bounds.
const DropOffTimeLayout = "15:04"

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("servicesettings.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.ServiceSettings, error) {
	settings, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return settings, nil
}

func (s *Service) Load(ctx context.Context) (*domain.ServiceSettings, error) {
	settings, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	now := time.Now().UTC()
	settings = &domain.ServiceSettings{
		ID:                   domain.SettingsID,
		BookingAdvanceNotice: domain.DefaultAdvanceNoticeDays,
		DropOffStartTime:     domain.DefaultDropOffStartTime,
		DropOffEndTime:       domain.DefaultDropOffEndTime,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.repo.Insert(ctx, s.db, settings); err != nil {
		// A concurrent Load may have created the row first.
		if err == domain.ErrAlreadyExists {
			return s.Get(ctx)
		}
		return nil, err
	}

	s.log.Info("created service settings with defaults")
	return settings, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.ServiceSettings, error) {
	settings, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if req.BookingAdvanceNotice != nil {
		if *req.BookingAdvanceNotice < 0 {
			return nil, domain.ErrInvalidAdvanceNotice
		}
		settings.BookingAdvanceNotice = *req.BookingAdvanceNotice
	}
	if req.DropOffStartTime != nil {
		start, err := parseWallClock(*req.DropOffStartTime)
		if err != nil {
			return nil, domain.ErrInvalidDropOffTime
		}
		settings.DropOffStartTime = start
	}
	if req.DropOffEndTime != nil {
		end, err := parseWallClock(*req.DropOffEndTime)
		if err != nil {
			return nil, domain.ErrInvalidDropOffTime
		}
		settings.DropOffEndTime = end
	}

	start, _ := time.Parse(DropOffTimeLayout, settings.DropOffStartTime)
	end, _ := time.Parse(DropOffTimeLayout, settings.DropOffEndTime)
	if !start.Before(end) {
		return nil, domain.ErrInvalidDropOffWindow
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func parseWallClock(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	parsed, err := time.Parse(DropOffTimeLayout, trimmed)
	if err != nil {
		return "", err
	}
	return parsed.Format(DropOffTimeLayout), nil
}
