package jobs

import (
	"context"
	"fmt"
	"time"

	"brigadas_admin_go/config"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/api"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// snapshotTimeout bounds one nightly inventory export
const snapshotTimeout = 5 * time.Minute

// Deps are the collaborators the scheduled jobs need
type Deps struct {
	DB      *gorm.DB
	Drafts  *services.DraftStore
	Backend api.Backend
	Storage services.StorageProvider
}

// StartScheduler registers the enabled jobs and starts the cron runner.
// The caller stops it on shutdown.
func StartScheduler(cfg *config.Config, deps Deps) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.JobsTimezone)
	if err != nil {
		zap.L().Warn("unknown jobs timezone, using UTC", zap.String("timezone", cfg.JobsTimezone), zap.Error(err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	if cfg.DraftCleanupSchedule != "" {
		if _, err := c.AddFunc(cfg.DraftCleanupSchedule, func() {
			CleanupExpiredDrafts(deps.Drafts)
		}); err != nil {
			return nil, fmt.Errorf("schedule draft cleanup: %w", err)
		}
	}

	if cfg.InventorySnapshotSchedule != "" {
		if _, err := c.AddFunc(cfg.InventorySnapshotSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
			defer cancel()
			if _, err := ArchiveInventorySnapshot(ctx, deps); err != nil {
				zap.L().Error("inventory snapshot failed", zap.Error(err))
			}
		}); err != nil {
			return nil, fmt.Errorf("schedule inventory snapshot: %w", err)
		}
	}

	c.Start()
	zap.L().Info("job scheduler started",
		zap.Int("jobs", len(c.Entries())),
		zap.String("timezone", loc.String()))
	return c, nil
}

// CleanupExpiredDrafts removes wizard drafts past their expiry
func CleanupExpiredDrafts(drafts *services.DraftStore) int64 {
	removed, err := drafts.CleanupExpired()
	if err != nil {
		zap.L().Error("draft cleanup failed", zap.Error(err))
		return 0
	}
	if removed > 0 {
		zap.L().Info("expired drafts removed", zap.Int64("count", removed))
	}
	return removed
}

// ArchiveInventorySnapshot exports the full inventory workbook to report storage
func ArchiveInventorySnapshot(ctx context.Context, deps Deps) (*models.ReportArchive, error) {
	report, err := services.CollectInventoryReport(ctx, deps.Backend)
	if err != nil {
		return nil, err
	}
	buf, err := services.BuildInventoryWorkbook(ctx, report)
	if err != nil {
		return nil, err
	}
	archive, err := services.ArchiveReport(ctx, deps.DB, deps.Storage, models.ReportKindInventory, nil, buf.Bytes())
	if err != nil {
		return nil, err
	}
	zap.L().Info("inventory snapshot archived",
		zap.String("key", archive.Key),
		zap.Int("brigadas", len(report.Details)))
	return archive, nil
}
