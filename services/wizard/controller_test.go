package wizard

import (
	"context"
	"errors"
	"testing"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"
	"brigadas_admin_go/services/api/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalStepForm() *FormState {
	f := NewFormState()
	f.Brigada = models.BrigadaRequest{NombreBrigada: "Brigada Central", CantidadBomberosActivos: 5}
	f.Step = StepGeneralEquipment
	return f
}

func TestNextAndBack(t *testing.T) {
	f := NewFormState()
	f.Brigada.NombreBrigada = "ab"

	err := Next(f)
	require.Error(t, err)
	assert.Equal(t, StepBrigadeInfo, f.Step)

	f.Brigada.NombreBrigada = "abc"
	require.NoError(t, Next(f))
	assert.Equal(t, StepPersonalEquipment, f.Step)
	require.NoError(t, Next(f))
	assert.Equal(t, StepGeneralEquipment, f.Step)
	require.NoError(t, Next(f))
	assert.Equal(t, StepGeneralEquipment, f.Step, "never beyond the last step")

	// Back ignores validation
	f.Ropa = []models.RopaRequest{{}}
	Back(f)
	assert.Equal(t, StepPersonalEquipment, f.Step)
	Back(f)
	Back(f)
	assert.Equal(t, StepBrigadeInfo, f.Step)
}

func TestRows(t *testing.T) {
	f := NewFormState()
	for _, cat := range models.AllCategorias {
		require.NotNil(t, f.Rows(cat), cat.Key())
		assert.True(t, f.AddRow(cat.Key()))
		assert.Len(t, *f.Rows(cat), 1)
	}
	assert.Nil(t, f.Rows(models.Categoria(99)))
	assert.False(t, f.AddRow("desconocido"))

	assert.True(t, f.AddRow(RopaKey))
	assert.True(t, f.AddRow(RopaKey))
	f.Ropa[1].CantidadS = 9
	assert.True(t, f.RemoveRow(RopaKey, 0))
	require.Len(t, f.Ropa, 1)
	assert.Equal(t, 9, f.Ropa[0].CantidadS)
	assert.False(t, f.RemoveRow(RopaKey, 5))
	assert.False(t, f.RemoveRow("epp", -1))
}

func TestSubmit_RequiresFinalStep(t *testing.T) {
	fake := apitest.New()
	f := finalStepForm()
	f.Step = StepPersonalEquipment

	_, err := NewSubmitter(fake, nil).Submit(context.Background(), f)
	assert.ErrorIs(t, err, ErrNotOnFinalStep)
	assert.Empty(t, fake.Calls())
}

func TestSubmit_RevalidatesEveryStep(t *testing.T) {
	fake := apitest.New()
	f := finalStepForm()
	f.Brigada.CantidadBomberosActivos = 0

	_, err := NewSubmitter(fake, nil).Submit(context.Background(), f)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, MsgCantidadBomberos, vErr.Message)
	assert.Empty(t, fake.Calls())
}

// A new brigade without equipment produces exactly one remote write
func TestSubmit_CreateWithoutEquipment(t *testing.T) {
	fake := apitest.New()
	f := finalStepForm()

	res, err := NewSubmitter(fake, nil).Submit(context.Background(), f)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, MsgCreatedComplete, res.Message)
	assert.Equal(t, 0, res.EquipmentCalls)

	assert.Len(t, fake.CallsWithPrefix("CreateBrigada"), 1)
	assert.Len(t, fake.Calls(), 1)
	assert.Empty(t, fake.CallsWithPrefix("Delete"))
}

// Editing brigade 7 with an all-zero clothing row cannot leave step 2
func TestEdit_AllZeroClothingRowBlocksStep2(t *testing.T) {
	fake := apitest.New()
	fake.AddBrigada(models.Brigada{ID: 7, NombreBrigada: "Brigada Siete", CantidadBomberosActivos: 4})
	fake.AddRopa(7, models.EquipamientoRopa{TipoRopaID: 1, CantidadM: 3})

	b, err := fake.GetBrigada(context.Background(), 7)
	require.NoError(t, err)
	inv := models.NewInventario()
	inv.Ropa, _ = fake.GetRopa(context.Background(), 7)

	f := FromInventario(b, inv)
	assert.True(t, f.IsEditing())
	require.NoError(t, Next(f))
	require.Equal(t, StepPersonalEquipment, f.Step)

	f.Ropa[0] = models.RopaRequest{TipoRopaID: 1}
	err = Next(f)
	msg := messageOf(t, err)
	assert.Contains(t, msg, "#1")
	assert.Equal(t, StepPersonalEquipment, f.Step)
}

func TestSubmit_GenericRowWithoutTypeRejected(t *testing.T) {
	fake := apitest.New()
	f := finalStepForm()
	f.EPP = []models.GenericoRequest{{TipoID: 0, Cantidad: 5}}

	_, err := NewSubmitter(fake, nil).Submit(context.Background(), f)
	assert.Contains(t, messageOf(t, err), "debe tener un tipo seleccionado")
	assert.Empty(t, fake.Calls())
}

// A failed delete during an edit is swallowed and creation still runs
func TestSubmit_EditDeleteFailureIsSwallowed(t *testing.T) {
	fake := apitest.New()
	fake.AddBrigada(models.Brigada{ID: 7, NombreBrigada: "Brigada Siete", CantidadBomberosActivos: 4})
	fake.FailOn("DeleteGenerico/medicamentos", errors.New("connection reset"))

	f := finalStepForm()
	f.BrigadaID = 7
	f.Ropa = []models.RopaRequest{{TipoRopaID: 1, CantidadL: 2}}
	f.Medicamentos = []models.GenericoRequest{{TipoID: 4, Cantidad: 10}}

	res, err := NewSubmitter(fake, nil).Submit(context.Background(), f)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, MsgUpdatedComplete, res.Message)
	assert.Equal(t, 1, res.DeleteFailures)
	assert.Equal(t, 2, res.EquipmentCalls)

	assert.Len(t, fake.CallsWithPrefix("UpdateBrigada"), 1)
	assert.Len(t, fake.CallsWithPrefix("Delete"), 12)
	assert.Len(t, fake.CallsWithPrefix("CreateRopa"), 1)
	assert.Len(t, fake.CallsWithPrefix("CreateGenerico/medicamentos"), 1)
}

func TestSubmit_CreateBrigadaFailure(t *testing.T) {
	fake := apitest.New()
	fake.FailOn("CreateBrigada", api.ErrUnsuccessful)
	f := finalStepForm()
	f.Ropa = []models.RopaRequest{{CantidadS: 1}}

	_, err := NewSubmitter(fake, nil).Submit(context.Background(), f)
	var sErr *SubmitError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, MsgCreateFailed, sErr.Message)
	assert.ErrorIs(t, err, api.ErrUnsuccessful)
	assert.Empty(t, fake.CallsWithPrefix("CreateRopa"))
}

func TestSubmit_EquipmentFailureAggregates(t *testing.T) {
	fake := apitest.New()
	fake.FailOn("CreateBotas", errors.New("timeout"))
	fake.FailOn("CreateGenerico/epp", errors.New("bad request"))

	f := finalStepForm()
	f.Botas = models.BotasRequest{Talla40: 3}
	f.EPP = []models.GenericoRequest{{TipoID: 1, Cantidad: 2}}
	f.Herramientas = []models.GenericoRequest{{TipoID: 2, Cantidad: 1}}

	res, err := NewSubmitter(fake, nil).Submit(context.Background(), f)
	var sErr *SubmitError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "Error al crear equipamiento: 2 de 3 registros fallaron", sErr.Message)
	assert.Contains(t, err.Error(), "Botas")
	assert.Contains(t, err.Error(), "EPP #1")

	// the brigade stays committed
	require.NotNil(t, res)
	assert.True(t, res.Created)
	assert.Len(t, fake.CallsWithPrefix("CreateGenerico/herramientas"), 1)
}

func TestBuildEquipmentCalls(t *testing.T) {
	f := finalStepForm()
	f.Ropa = []models.RopaRequest{{TipoRopaID: 1}, {TipoRopaID: 2, CantidadXS: 1}}
	f.Botas = models.BotasRequest{OtraTalla: "46", CantidadOtraTalla: 4}
	f.Guantes = models.GuantesRequest{TallaXXL: 2000000}
	f.EPP = []models.GenericoRequest{{TipoID: 1, Cantidad: 0}, {TipoID: 0, Cantidad: 2}, {TipoID: 3, Cantidad: 2}}

	calls := BuildEquipmentCalls(f)
	labels := make([]string, 0, len(calls))
	for _, c := range calls {
		labels = append(labels, c.Label)
	}
	// boots with only the "other size" set are not sent
	assert.Equal(t, []string{"Ropa #2", "Guantes", "EPP #3"}, labels)

	fake := apitest.New()
	for _, c := range calls {
		require.NoError(t, c.Do(context.Background(), fake, 9))
	}
	guantes := fake.CallsWithPrefix("CreateGuantes")
	require.Len(t, guantes, 1)
	assert.Equal(t, 999999, guantes[0].Body.(models.GuantesRequest).TallaXXL)
	assert.Equal(t, 9, guantes[0].BrigadaID)
}
