package migration

import (
	bookingdomain "github.com/allbikes/dealerdesk/internal/booking/domain"
	"github.com/allbikes/dealerdesk/internal/config"
	inventorydomain "github.com/allbikes/dealerdesk/internal/inventory/domain"
	jobtypedomain "github.com/allbikes/dealerdesk/internal/jobtype/domain"
	"github.com/allbikes/dealerdesk/internal/seed"
	settingsdomain "github.com/allbikes/dealerdesk/internal/servicesettings/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// golang-migrate only carries the postgres driver here;
			// sqlite and mysql development databases use gorm's
			// schema migration instead.
			if err := conn.AutoMigrate(
				&bookingdomain.RequestLog{},
				&jobtypedomain.JobType{},
				&settingsdomain.ServiceSettings{},
				&inventorydomain.Motorcycle{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDefaults {
			return seed.EnsureDefaults(conn)
		}
		return nil
	}),
)
