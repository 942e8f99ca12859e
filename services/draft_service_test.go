package services

import (
	"testing"
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewDraftStore(db, time.Hour)

	f := wizard.NewFormState()
	f.Brigada.NombreBrigada = "Brigada Norte"
	f.Ropa = []models.RopaRequest{{TipoRopaID: 2, CantidadL: 3}}
	f.ServiciosVehiculos = []models.GenericoRequest{{TipoID: 1, Cantidad: 1, MontoAproximado: 150.5}}

	id, err := store.Create(f)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	loaded.Step = wizard.StepGeneralEquipment
	loaded.BrigadaID = 9
	require.NoError(t, store.Save(id, loaded))

	var row models.WizardDraft
	require.NoError(t, db.First(&row, "id = ?", id).Error)
	assert.Equal(t, 3, row.Step)
	require.NotNil(t, row.BrigadaID)
	assert.Equal(t, 9, *row.BrigadaID)
	assert.True(t, row.IsEditing())

	again, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepGeneralEquipment, again.Step)
}

func TestDraftStore_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewDraftStore(db, time.Hour)

	_, err := store.Load("")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = store.Load("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	assert.ErrorIs(t, store.Save("missing", wizard.NewFormState()), ErrDraftNotFound)
	assert.NoError(t, store.Delete("missing"))
}

func TestDraftStore_Expiry(t *testing.T) {
	db := setupTestDB(t)
	store := NewDraftStore(db, time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }

	id, err := store.Create(wizard.NewFormState())
	require.NoError(t, err)

	store.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = store.Load(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	removed, err := store.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestDraftStore_Delete(t *testing.T) {
	db := setupTestDB(t)
	store := NewDraftStore(db, 0)
	assert.Equal(t, DefaultDraftTTL, store.ttl)

	id, err := store.Create(wizard.NewFormState())
	require.NoError(t, err)
	require.NoError(t, store.Delete(id))

	_, err = store.Load(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
