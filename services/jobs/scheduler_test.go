package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"brigadas_admin_go/config"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/api/apitest"
	"brigadas_admin_go/services/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupJobsTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:mem_%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WizardDraft{}, &models.ReportArchive{}))
	return db
}

func TestCleanupExpiredDrafts(t *testing.T) {
	db := setupJobsTestDB(t)
	store := services.NewDraftStore(db, time.Hour)

	liveID, err := store.Create(wizard.NewFormState())
	require.NoError(t, err)
	staleID, err := store.Create(wizard.NewFormState())
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.WizardDraft{}).Where("id = ?", staleID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	assert.Equal(t, int64(1), CleanupExpiredDrafts(store))

	_, err = store.Load(liveID)
	assert.NoError(t, err)
	_, err = store.Load(staleID)
	assert.ErrorIs(t, err, services.ErrDraftNotFound)

	assert.Equal(t, int64(0), CleanupExpiredDrafts(store))
}

func TestArchiveInventorySnapshot(t *testing.T) {
	db := setupJobsTestDB(t)
	fake := apitest.New()
	fake.AddBrigada(models.Brigada{ID: 1, NombreBrigada: "Central", CantidadBomberosActivos: 10, Activo: true})
	fake.AddRopa(1, models.EquipamientoRopa{TipoRopaID: 1, TipoRopaNombre: "Camisa", CantidadM: 4})

	deps := Deps{
		DB:      db,
		Backend: fake,
		Storage: services.NewLocalStorage(t.TempDir()),
	}

	archive, err := ArchiveInventorySnapshot(context.Background(), deps)
	require.NoError(t, err)
	assert.Equal(t, models.ReportKindInventory, archive.Kind)
	assert.Nil(t, archive.BrigadaID)
	assert.Positive(t, archive.Size)

	var count int64
	db.Model(&models.ReportArchive{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestStartScheduler(t *testing.T) {
	db := setupJobsTestDB(t)
	cfg := &config.Config{
		JobsTimezone:              "Nowhere/Invalid",
		DraftCleanupSchedule:      "@hourly",
		InventorySnapshotSchedule: "0 3 * * *",
	}

	c, err := StartScheduler(cfg, Deps{DB: db, Drafts: services.NewDraftStore(db, time.Hour)})
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 2)

	cfg.DraftCleanupSchedule = "not a schedule"
	_, err = StartScheduler(cfg, Deps{DB: db})
	assert.Error(t, err)
}
