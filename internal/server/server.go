package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/allbikes/dealerdesk/internal/auth"
	"github.com/allbikes/dealerdesk/internal/booking"
	bookingdomain "github.com/allbikes/dealerdesk/internal/booking/domain"
	"github.com/allbikes/dealerdesk/internal/config"
	"github.com/allbikes/dealerdesk/internal/gateway/mechanicdesk"
	"github.com/allbikes/dealerdesk/internal/inventory"
	inventorydomain "github.com/allbikes/dealerdesk/internal/inventory/domain"
	"github.com/allbikes/dealerdesk/internal/jobtype"
	jobtypedomain "github.com/allbikes/dealerdesk/internal/jobtype/domain"
	"github.com/allbikes/dealerdesk/internal/observability"
	obslogger "github.com/allbikes/dealerdesk/internal/observability/logger"
	obsmetrics "github.com/allbikes/dealerdesk/internal/observability/metrics"
	obstracing "github.com/allbikes/dealerdesk/internal/observability/tracing"
	"github.com/allbikes/dealerdesk/internal/servicesettings"
	settingsdomain "github.com/allbikes/dealerdesk/internal/servicesettings/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	mechanicdesk.Module,
	booking.Module,
	jobtype.Module,
	servicesettings.Module,
	inventory.Module,
	auth.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	bookingSvc   bookingdomain.Service
	jobTypeSvc   jobtypedomain.Service
	settingsSvc  settingsdomain.Service
	inventorySvc inventorydomain.Service
	authSvc      *auth.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	BookingSvc   bookingdomain.Service
	JobTypeSvc   jobtypedomain.Service
	SettingsSvc  settingsdomain.Service
	InventorySvc inventorydomain.Service
	AuthSvc      *auth.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		bookingSvc:   p.BookingSvc,
		jobTypeSvc:   p.JobTypeSvc,
		settingsSvc:  p.SettingsSvc,
		inventorySvc: p.InventorySvc,
		authSvc:      p.AuthSvc,
	}

	svc.registerAuthRoutes()
	svc.registerPublicRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) registerAuthRoutes() {
	s.engine.POST("/auth/login", s.Login)
}

func (s *Server) registerPublicRoutes() {
	service := s.engine.Group("/api/service")
	{
		service.POST("/booking", s.CreateBooking)
		service.GET("/booking/job-types", s.ListBookingJobTypes)
		service.GET("/booking/unavailable-days", s.ListUnavailableDays)
		service.GET("/booking/settings", s.PublicServiceSettings)
	}

	inventoryGroup := s.engine.Group("/api/inventory")
	{
		inventoryGroup.GET("/motorcycles", s.ListMotorcycles)
		inventoryGroup.GET("/motorcycles/:slug", s.GetMotorcycleBySlug)
	}
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/api/admin",
		auth.RequireAuth(s.cfg.AuthJWTSecret),
		auth.RequireAdmin(),
	)
	{
		admin.GET("/service/settings", s.AdminServiceSettings)
		admin.PUT("/service/settings", s.UpdateServiceSettings)
		admin.PATCH("/service/settings", s.UpdateServiceSettings)

		admin.GET("/service/job-types", s.ListJobTypes)
		admin.POST("/service/job-types", s.CreateJobType)
		admin.GET("/service/job-types/:id", s.GetJobTypeByID)
		admin.PUT("/service/job-types/:id", s.UpdateJobType)
		admin.DELETE("/service/job-types/:id", s.DeleteJobType)

		admin.GET("/service/booking-logs", s.ListBookingLogs)

		admin.POST("/inventory/motorcycles", s.CreateMotorcycle)
		admin.GET("/inventory/motorcycles/:id", s.GetMotorcycleByID)
		admin.PUT("/inventory/motorcycles/:id", s.UpdateMotorcycle)
		admin.DELETE("/inventory/motorcycles/:id", s.DeleteMotorcycle)
	}
}

func classifyErrorForLog(err error) (string, string) {
	switch {
	case err == nil:
		return "", ""
	case asValidationErrors(err) != nil, asFieldErrors(err) != nil, isValidationError(err):
		return "validation", "warn"
	case isNotFoundError(err):
		return "not_found", "warn"
	case isConflictError(err):
		return "conflict", "warn"
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return "unauthorized", "warn"
	default:
		return "internal", "error"
	}
}
