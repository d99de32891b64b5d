package seed

import (
	"context"
	"errors"
	"time"

	jobtypedomain "github.com/allbikes/dealerdesk/internal/jobtype/domain"
	settingsdomain "github.com/allbikes/dealerdesk/internal/servicesettings/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// defaultJobTypes are the workshop services offered out of the box.
// Names must match the gateway's job type names for enrichment to
// pick them up.
var defaultJobTypes = []struct {
	name        string
	description string
}{
	{"General Service", "Scheduled service including oil, filter and safety inspection."},
	{"Major Service", "Full service with valve clearance check, coolant and brake fluid."},
	{"Tyre Fitting", "Supply and fit front or rear tyres, including balancing."},
	{"Roadworthy Inspection", "Certificate inspection for registration or transfer."},
	{"Chain and Sprockets", "Replace chain and sprocket kit, adjust and lubricate."},
}

// EnsureDefaults seeds the service settings row and the default job
// types on a fresh database. Existing rows are left untouched.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureServiceSettings(ctx, tx); err != nil {
			return err
		}
		return ensureJobTypes(ctx, tx, node)
	})
}

func ensureServiceSettings(ctx context.Context, tx *gorm.DB) error {
	var count int64
	if err := tx.WithContext(ctx).
		Model(&settingsdomain.ServiceSettings{}).
		Where("id = ?", settingsdomain.SettingsID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	return tx.WithContext(ctx).Create(&settingsdomain.ServiceSettings{
		ID:                   settingsdomain.SettingsID,
		BookingAdvanceNotice: settingsdomain.DefaultAdvanceNoticeDays,
		DropOffStartTime:     settingsdomain.DefaultDropOffStartTime,
		DropOffEndTime:       settingsdomain.DefaultDropOffEndTime,
		CreatedAt:            now,
		UpdatedAt:            now,
	}).Error
}

func ensureJobTypes(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, jt := range defaultJobTypes {
		var count int64
		if err := tx.WithContext(ctx).
			Model(&jobtypedomain.JobType{}).
			Where("name = ?", jt.name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		description := jt.description
		now := time.Now().UTC()
		if err := tx.WithContext(ctx).Create(&jobtypedomain.JobType{
			ID:          node.Generate().Int64(),
			Name:        jt.name,
			Description: &description,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
